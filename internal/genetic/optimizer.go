// Package genetic implements a genetic algorithm over job orderings for
// the parallel-machine scheduling problem. Fitness of an ordering is
// the makespan produced by the greedy schedule decoder.
package genetic

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/schedkit/pmsp/internal/pmsp"
)

// Solver runs the genetic search. A Solver holds its own random number
// generator, so independent solvers may run concurrently; a single
// Solver must not.
type Solver struct {
	cfg Config
	rng *rand.Rand
	log *zap.Logger
}

// New validates the configuration and returns a solver. A nil logger
// disables telemetry. Config.Seed 0 seeds from the clock; any other
// seed makes the run fully reproducible.
func New(cfg Config, logger *zap.Logger) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Solver{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		log: logger,
	}, nil
}

// Solve searches for a job ordering that minimizes the decoded
// makespan. The context is checked once per generation; on
// cancellation the incumbent best and the history so far are returned
// together with the context error.
func (s *Solver) Solve(ctx context.Context, inst *pmsp.Instance) (*Result, error) {
	start := time.Now()

	eval, err := pmsp.NewEvaluator(inst)
	if err != nil {
		return nil, err
	}

	n := inst.Jobs
	popSize := s.cfg.PopulationSize

	// Initial population: random permutations, decoded immediately.
	pop := make([]Individual, popSize)
	for i := range pop {
		order := make([]int, n)
		fillIdentity(order)
		s.rng.Shuffle(n, func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})
		pop[i] = Individual{Order: order, Cost: eval.Makespan(order)}
	}
	evaluations := popSize

	best := pop[minCostIndex(pop)].Clone()
	history := make([]float64, 0, s.cfg.Generations+1)
	history = append(history, best.Cost)

	// Scratch buffers shared across generations.
	mark := make([]int, n)
	stamp := 0
	idx := make([]int, popSize)
	fillIdentity(idx)
	costs := make([]float64, popSize)

	for gen := 0; gen < s.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			res := s.result(best, history, evaluations, gen, start)
			return res, err
		}

		newPop := make([]Individual, 0, popSize)

		// Elitism: the incumbent survives verbatim.
		elite := pop[minCostIndex(pop)]
		if elite.Cost < best.Cost {
			best = elite.Clone()
		}
		newPop = append(newPop, elite.Clone())

		for len(newPop) < popSize {
			p1 := pop[tournamentSelect(pop, s.cfg.TournamentK, s.rng, idx)].Order
			p2 := pop[tournamentSelect(pop, s.cfg.TournamentK, s.rng, idx)].Order

			child1 := make([]int, n)
			child2 := make([]int, n)
			if s.rng.Float64() < s.cfg.CrossoverRate && n >= 2 {
				orderCrossover(p1, p2, child1, s.rng, mark, &stamp)
				orderCrossover(p2, p1, child2, s.rng, mark, &stamp)
			} else {
				copy(child1, p1)
				copy(child2, p2)
			}
			swapMutate(child1, s.cfg.MutationRate, s.rng)
			swapMutate(child2, s.cfg.MutationRate, s.rng)

			ind1 := Individual{Order: child1, Cost: eval.Makespan(child1)}
			evaluations++
			if ind1.Cost < best.Cost {
				best = ind1.Clone()
			}
			newPop = append(newPop, ind1)

			// The final pair may only have room for one child.
			if len(newPop) < popSize {
				ind2 := Individual{Order: child2, Cost: eval.Makespan(child2)}
				evaluations++
				if ind2.Cost < best.Cost {
					best = ind2.Clone()
				}
				newPop = append(newPop, ind2)
			}
		}

		pop = newPop
		for i := range pop {
			costs[i] = pop[i].Cost
		}
		genBest := pop[minCostIndex(pop)].Cost
		history = append(history, genBest)

		s.log.Debug("generation complete",
			zap.Int("generation", gen+1),
			zap.Float64("generation_best", genBest),
			zap.Float64("best_makespan", best.Cost),
			zap.Float64("mean_makespan", stat.Mean(costs, nil)),
		)
	}

	return s.result(best, history, evaluations, s.cfg.Generations, start), nil
}

func (s *Solver) result(best Individual, history []float64, evaluations, generations int, start time.Time) *Result {
	return &Result{
		Best:        best,
		History:     history,
		Evaluations: evaluations,
		Generations: generations,
		Duration:    time.Since(start),
	}
}

func minCostIndex(pop []Individual) int {
	best := 0
	for i := 1; i < len(pop); i++ {
		if pop[i].Cost < pop[best].Cost {
			best = i
		}
	}
	return best
}
