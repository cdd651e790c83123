package genetic

import "github.com/schedkit/pmsp/internal/errors"

// Config holds the search parameters of the genetic solver. The yaml
// tags let scenario files override individual fields.
type Config struct {
	// PopulationSize is the fixed number of individuals per generation.
	PopulationSize int `yaml:"population_size"`
	// Generations is the number of generation steps after the initial
	// population; it is the only knob bounding run time.
	Generations int `yaml:"generations"`
	// CrossoverRate is the probability that a selected parent pair is
	// recombined instead of copied.
	CrossoverRate float64 `yaml:"crossover_rate"`
	// MutationRate is the per-gene swap probability.
	MutationRate float64 `yaml:"mutation_rate"`
	// TournamentK is the number of distinct individuals sampled per
	// tournament. Must be smaller than PopulationSize.
	TournamentK int `yaml:"tournament_k"`
	// Seed makes runs reproducible. Seed 0 derives a seed from the
	// clock; any other value yields identical results across runs with
	// the same instance and configuration.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the standard solver parameters.
func DefaultConfig() Config {
	return Config{
		PopulationSize: 50,
		Generations:    200,
		CrossoverRate:  0.9,
		MutationRate:   0.02,
		TournamentK:    3,
		Seed:           0,
	}
}

// Validate rejects configurations before the search loop starts.
func (c Config) Validate() error {
	if c.PopulationSize <= 0 {
		return errors.Ef(errors.KindConfiguration,
			"population size must be > 0 (got %d)", c.PopulationSize)
	}
	if c.Generations <= 0 {
		return errors.Ef(errors.KindConfiguration,
			"generations must be > 0 (got %d)", c.Generations)
	}
	if c.CrossoverRate < 0 || c.CrossoverRate > 1 {
		return errors.Ef(errors.KindConfiguration,
			"crossover rate must be in [0,1] (got %g)", c.CrossoverRate)
	}
	if c.MutationRate < 0 || c.MutationRate > 1 {
		return errors.Ef(errors.KindConfiguration,
			"mutation rate must be in [0,1] (got %g)", c.MutationRate)
	}
	if c.TournamentK < 1 {
		return errors.Ef(errors.KindConfiguration,
			"tournament size must be >= 1 (got %d)", c.TournamentK)
	}
	if c.TournamentK >= c.PopulationSize {
		return errors.Ef(errors.KindConfiguration,
			"tournament size must be < population size (got %d >= %d)", c.TournamentK, c.PopulationSize)
	}
	return nil
}
