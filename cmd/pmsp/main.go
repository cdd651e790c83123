// Command pmsp solves a scheduling instance file with the genetic
// solver and prints the resulting schedule, the DDLB lower bound and
// quality metrics.
//
// Usage:
//
//	pmsp [-config solver.yaml] [-seed N] [flags] instance.json
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/schedkit/pmsp/internal/genetic"
	"github.com/schedkit/pmsp/internal/logging"
	"github.com/schedkit/pmsp/internal/pmsp"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML solver configuration file")
	pop := flag.Int("pop", 0, "population size (overrides config)")
	generations := flag.Int("generations", 0, "number of generations (overrides config)")
	crossover := flag.Float64("crossover", -1, "crossover rate (overrides config)")
	mutation := flag.Float64("mutation", -1, "per-gene mutation rate (overrides config)")
	tournament := flag.Int("tournament", 0, "tournament size (overrides config)")
	seed := flag.Int64("seed", 0, "random seed; 0 seeds from the clock")
	verbose := flag.Bool("v", false, "enable per-generation debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pmsp [flags] instance.json")
		os.Exit(2)
	}

	level := "info"
	if *verbose {
		level = "debug"
	}
	logger, err := logging.New(&logging.Config{Level: level, Format: "console", Output: "stderr"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := genetic.DefaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			logger.Fatal("could not read solver config", zap.Error(err))
		}
		if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
			logger.Fatal("could not parse solver config", zap.Error(err))
		}
	}
	applyFlagOverrides(&cfg, *pop, *generations, *crossover, *mutation, *tournament, *seed)

	instancePath := flag.Arg(0)
	inst, err := pmsp.Load(instancePath)
	if err != nil {
		logger.Fatal("could not load instance", zap.String("path", instancePath), zap.Error(err))
	}
	logger.Info("instance loaded",
		zap.String("path", instancePath),
		zap.Int("jobs", inst.Jobs),
		zap.Int("machines", inst.Machines),
	)

	solver, err := genetic.New(cfg, logger)
	if err != nil {
		logger.Fatal("invalid solver configuration", zap.Error(err))
	}

	res, err := solver.Solve(context.Background(), inst)
	if err != nil {
		logger.Fatal("solve failed", zap.Error(err))
	}

	sched, err := pmsp.Decode(inst, res.Best.Order)
	if err != nil {
		logger.Fatal("decoding best ordering failed", zap.Error(err))
	}
	bound := pmsp.LowerBound(inst)

	printReport(res, sched, bound)
}

func applyFlagOverrides(cfg *genetic.Config, pop, generations int, crossover, mutation float64, tournament int, seed int64) {
	if pop > 0 {
		cfg.PopulationSize = pop
	}
	if generations > 0 {
		cfg.Generations = generations
	}
	if crossover >= 0 {
		cfg.CrossoverRate = crossover
	}
	if mutation >= 0 {
		cfg.MutationRate = mutation
	}
	if tournament > 0 {
		cfg.TournamentK = tournament
	}
	if seed != 0 {
		cfg.Seed = seed
	}
}

func printReport(res *genetic.Result, sched *pmsp.Schedule, bound float64) {
	fmt.Println("--- Genetic solver schedule ---")
	for m, slots := range sched.Machines {
		seq := make([]int, len(slots))
		finish := 0.0
		for i, slot := range slots {
			seq[i] = slot.Job
			finish = slot.End
		}
		fmt.Printf("Machine %d: seq=%v, finish=%.0f\n", m+1, seq, finish)
	}

	initial := res.History[0]
	fmt.Println("\n--- Quality metrics ---")
	fmt.Printf("Final makespan (MS):      %.2f\n", res.Best.Cost)
	fmt.Printf("Lower bound (DDLB):       %.2f\n", bound)
	if bound > 0 {
		fmt.Printf("MS/DDLB ratio:            %.4f\n", res.Best.Cost/bound)
	} else {
		fmt.Printf("MS/DDLB ratio:            n/a\n")
	}
	fmt.Printf("Improvement over initial: %.2f\n", initial-res.Best.Cost)
	fmt.Printf("Generations:              %d\n", res.Generations)
	fmt.Printf("Decoder evaluations:      %d\n", res.Evaluations)
	fmt.Printf("Solver time:              %.2f ms\n", float64(res.Duration.Microseconds())/1000.0)
}
