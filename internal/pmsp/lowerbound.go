package pmsp

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// LowerBound computes a data-dependent lower bound (DDLB) on the
// makespan of any schedule for the instance. It is the maximum of two
// bounds:
//
//   - a workload bound: total processing time plus the minimum
//     mandatory setup, averaged over the machines. In any schedule
//     exactly one job per machine is last and pays no outgoing setup,
//     so the n_machines largest per-job minimum setups are forgiven;
//   - a critical-path bound: no job can finish before its own ready
//     time, processing time and minimum outgoing setup.
//
// Degenerate inputs get deterministic fallbacks: zero jobs yields 0,
// and a job with no defined outgoing setup contributes a delta of 0.
func LowerBound(inst *Instance) float64 {
	n := inst.Jobs
	if n == 0 {
		return 0
	}

	// delta[i] = minimum setup paid if job i is not last on its machine.
	deltas := make([]float64, n)
	for i := 0; i < n; i++ {
		best := math.Inf(1)
		found := false
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if s, ok := inst.Setup.At(i, j); ok && (!found || s < best) {
				best = s
				found = true
			}
		}
		if !found {
			best = 0
		}
		deltas[i] = best
	}

	forgiven := append([]float64(nil), deltas...)
	sort.Sort(sort.Reverse(sort.Float64Slice(forgiven)))
	k := inst.Machines
	if k > n {
		k = n
	}
	setupFloor := floats.Sum(deltas) - floats.Sum(forgiven[:k])

	workload := (floats.Sum(inst.ProcessingTimes) + setupFloor) / float64(inst.Machines)

	paths := make([]float64, n)
	for i := 0; i < n; i++ {
		paths[i] = inst.ReadyTimes[i] + inst.ProcessingTimes[i] + deltas[i]
	}
	critical := floats.Max(paths)

	return math.Max(workload, critical)
}
