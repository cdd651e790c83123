package genetic

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedkit/pmsp/internal/pmsp"
)

func TestOrderCrossoverProducesPermutations(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{2, 3, 5, 10, 25} {
		mark := make([]int, n)
		stamp := 0
		for trial := 0; trial < 50; trial++ {
			p1 := rng.Perm(n)
			p2 := rng.Perm(n)
			child := make([]int, n)
			orderCrossover(p1, p2, child, rng, mark, &stamp)
			require.NoError(t, pmsp.ValidatePermutation(child, n),
				"n=%d p1=%v p2=%v child=%v", n, p1, p2, child)
		}
	}
}

func TestOrderCrossoverDeterministic(t *testing.T) {
	p1 := []int{0, 1, 2, 3, 4, 5}
	p2 := []int{5, 4, 3, 2, 1, 0}

	run := func() []int {
		rng := rand.New(rand.NewSource(99))
		mark := make([]int, len(p1))
		stamp := 0
		child := make([]int, len(p1))
		orderCrossover(p1, p2, child, rng, mark, &stamp)
		return child
	}

	assert.Equal(t, run(), run())
}

func TestOrderCrossoverTwoJobs(t *testing.T) {
	// With two genes the only cut pair is (0,1): the child keeps p1's
	// first gene and takes the remaining gene from p2.
	rng := rand.New(rand.NewSource(1))
	mark := make([]int, 2)
	stamp := 0
	child := make([]int, 2)

	orderCrossover([]int{1, 0}, []int{0, 1}, child, rng, mark, &stamp)
	assert.Equal(t, []int{1, 0}, child)
}

func TestSwapMutate(t *testing.T) {
	rng := rand.New(rand.NewSource(21))

	t.Run("rate zero is a no-op", func(t *testing.T) {
		p := []int{3, 1, 4, 0, 2}
		swapMutate(p, 0, rng)
		assert.Equal(t, []int{3, 1, 4, 0, 2}, p)
	})

	t.Run("stays a permutation at rate one", func(t *testing.T) {
		for trial := 0; trial < 50; trial++ {
			p := rng.Perm(12)
			swapMutate(p, 1, rng)
			require.NoError(t, pmsp.ValidatePermutation(p, 12))
		}
	})

	t.Run("tiny orderings are safe", func(t *testing.T) {
		swapMutate(nil, 1, rng)
		p := []int{0}
		swapMutate(p, 1, rng)
		assert.Equal(t, []int{0}, p)
	})
}

func TestTournamentSelect(t *testing.T) {
	pop := []Individual{
		{Cost: 9}, {Cost: 3}, {Cost: 7}, {Cost: 1}, {Cost: 5},
	}
	rng := rand.New(rand.NewSource(31))
	idx := []int{0, 1, 2, 3, 4}

	t.Run("full tournament finds the global minimum", func(t *testing.T) {
		for trial := 0; trial < 20; trial++ {
			winner := tournamentSelect(pop, len(pop), rng, idx)
			assert.Equal(t, 3, winner)
		}
	})

	t.Run("winner is always a valid index", func(t *testing.T) {
		for trial := 0; trial < 100; trial++ {
			winner := tournamentSelect(pop, 2, rng, idx)
			assert.GreaterOrEqual(t, winner, 0)
			assert.Less(t, winner, len(pop))
		}
	})

	t.Run("idx buffer stays a permutation", func(t *testing.T) {
		require.NoError(t, pmsp.ValidatePermutation(idx, len(pop)))
	})
}
