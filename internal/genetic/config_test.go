package genetic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 50, cfg.PopulationSize)
	assert.Equal(t, 200, cfg.Generations)
	assert.Equal(t, 0.9, cfg.CrossoverRate)
	assert.Equal(t, 0.02, cfg.MutationRate)
	assert.Equal(t, 3, cfg.TournamentK)
}

func TestConfigYAMLOverrides(t *testing.T) {
	cfg := DefaultConfig()
	data := []byte("population_size: 80\nseed: 1234\n")

	require.NoError(t, yaml.UnmarshalStrict(data, &cfg))

	assert.Equal(t, 80, cfg.PopulationSize)
	assert.Equal(t, int64(1234), cfg.Seed)
	// Untouched fields keep their defaults.
	assert.Equal(t, 200, cfg.Generations)
	assert.Equal(t, 0.9, cfg.CrossoverRate)

	assert.Error(t, yaml.UnmarshalStrict([]byte("unknown_field: 1\n"), &cfg))
}
