package pmsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowerBoundWorkload(t *testing.T) {
	// Two machines, four jobs of 4 with unit setups everywhere. Two
	// jobs are last on their machines and pay no outgoing setup, so the
	// mandatory setup floor is 2 and the workload bound is (16+2)/2 = 9.
	setup := NewSetupMatrix(4)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j {
				setup.Set(i, j, 1)
			}
		}
	}
	inst := mustInstance(t, 2,
		[]float64{4, 4, 4, 4},
		[]float64{0, 0, 0, 0},
		setup,
	)

	assert.InDelta(t, 9.0, LowerBound(inst), 1e-9)
}

func TestLowerBoundCriticalPath(t *testing.T) {
	// Job 1 releases late; its ready + processing + minimum outgoing
	// setup dominates the averaged workload.
	inst := mustInstance(t, 2,
		[]float64{2, 3},
		[]float64{0, 20},
		setupFromRows([][]float64{
			{-1, 1},
			{2, -1},
		}),
	)

	// workload: (5 + 0) / 2 = 2.5; critical: 20 + 3 + 2 = 25.
	assert.InDelta(t, 25.0, LowerBound(inst), 1e-9)
}

func TestLowerBoundDegenerate(t *testing.T) {
	t.Run("no jobs", func(t *testing.T) {
		inst := mustInstance(t, 3, nil, nil, NewSetupMatrix(0))
		assert.Equal(t, 0.0, LowerBound(inst))
	})

	t.Run("no defined setups", func(t *testing.T) {
		inst := mustInstance(t, 2, []float64{4, 6}, []float64{0, 0}, NewSetupMatrix(2))
		// Deltas fall back to 0: bound is max(10/2, 6) = 6.
		assert.InDelta(t, 6.0, LowerBound(inst), 1e-9)
	})

	t.Run("single job", func(t *testing.T) {
		inst := mustInstance(t, 1, []float64{7}, []float64{2}, NewSetupMatrix(1))
		assert.InDelta(t, 9.0, LowerBound(inst), 1e-9)
	})
}

// permutations invokes fn with every permutation of p (Heap's algorithm).
func permutations(p []int, fn func([]int)) {
	var generate func(k int)
	generate = func(k int) {
		if k == 1 {
			fn(p)
			return
		}
		for i := 0; i < k; i++ {
			generate(k - 1)
			if k%2 == 0 {
				p[i], p[k-1] = p[k-1], p[i]
			} else {
				p[0], p[k-1] = p[k-1], p[0]
			}
		}
	}
	generate(len(p))
}

func TestLowerBoundSoundness(t *testing.T) {
	// Exhaustively decode every ordering of a small instance; none may
	// beat the bound.
	for _, seed := range []int64{1, 2, 3} {
		inst := randomTestInstance(t, 6, 2, seed)
		eval, err := NewEvaluator(inst)
		require.NoError(t, err)

		bound := LowerBound(inst)
		order := make([]int, inst.Jobs)
		for i := range order {
			order[i] = i
		}
		permutations(order, func(p []int) {
			ms := eval.Makespan(p)
			assert.GreaterOrEqual(t, ms, bound-1e-9, "ordering %v beats the bound", p)
		})
	}
}
