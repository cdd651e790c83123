// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config is the configuration for the pmsp service.
type Config struct {
	Environment string `env:"ENV" envDefault:"development"`
	HTTP        struct {
		Port            int           `env:"HTTP_PORT" envDefault:"8080"`
		ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
		WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"120s"`
		IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
		ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	}
	Logging struct {
		Level  string `env:"LOG_LEVEL" envDefault:"info"`
		Format string `env:"LOG_FORMAT" envDefault:"json"`
		Output string `env:"LOG_OUTPUT" envDefault:"stderr"`
	}
	// Solver holds the default search parameters; individual solve
	// requests may override them.
	Solver struct {
		PopulationSize int     `env:"GA_POPULATION" envDefault:"50"`
		Generations    int     `env:"GA_GENERATIONS" envDefault:"200"`
		CrossoverRate  float64 `env:"GA_CROSSOVER_RATE" envDefault:"0.9"`
		MutationRate   float64 `env:"GA_MUTATION_RATE" envDefault:"0.02"`
		TournamentK    int     `env:"GA_TOURNAMENT_K" envDefault:"3"`
		Seed           int64   `env:"GA_SEED" envDefault:"0"`
	}
}

// Load parses the configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.Environment == "development" && cfg.Logging.Format == "json" {
		cfg.Logging.Format = "console"
	}

	return cfg, nil
}
