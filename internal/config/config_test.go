package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 50, cfg.Solver.PopulationSize)
	assert.Equal(t, 200, cfg.Solver.Generations)
	assert.Equal(t, 0.9, cfg.Solver.CrossoverRate)
	assert.Equal(t, 0.02, cfg.Solver.MutationRate)
	assert.Equal(t, 3, cfg.Solver.TournamentK)
	assert.Equal(t, int64(0), cfg.Solver.Seed)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("GA_POPULATION", "120")
	t.Setenv("GA_SEED", "77")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, 120, cfg.Solver.PopulationSize)
	assert.Equal(t, int64(77), cfg.Solver.Seed)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadDevelopmentUsesConsoleLogs(t *testing.T) {
	t.Setenv("ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Logging.Format)
}
