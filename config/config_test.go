package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 100, cfg.Trials)
	assert.Equal(t, 1_000_000, cfg.VectorSize)
	assert.Equal(t, 10000, cfg.KSSampleSize)
	assert.Equal(t, 100_000, cfg.ThroughputSamples)
	assert.Equal(t, 5, cfg.PreviewSamples)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"one trial", func(c *Config) { c.Trials = 1 }, "Trials"},
		{"empty vector", func(c *Config) { c.VectorSize = 0 }, "VectorSize"},
		{"inverted range", func(c *Config) { c.RangeMin, c.RangeMax = 1, 0 }, "RangeMax"},
		{"nan range", func(c *Config) { c.RangeMin = float32(math.NaN()) }, "RangeMin"},
		{"infinite range", func(c *Config) { c.RangeMax = float32(math.Inf(1)) }, "RangeMax"},
		{"no ks trials", func(c *Config) { c.KSTrials = 0 }, "KSTrials"},
		{"empty ks batch", func(c *Config) { c.KSSampleSize = 0 }, "KSSampleSize"},
		{"zero coefficient", func(c *Config) { c.KSCoefficient = 0 }, "KSCoefficient"},
		{"no throughput batch", func(c *Config) { c.ThroughputSamples = 0 }, "ThroughputSamples"},
		{"negative preview", func(c *Config) { c.PreviewSamples = -1 }, "PreviewSamples"},
		{"negative variance", func(c *Config) { c.PreviewVariance = -1 }, "PreviewVariance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.Equal(t, tt.field, verrs[0].Field())
		})
	}
}

func TestValidateDegenerateRange(t *testing.T) {
	cfg := Default()
	cfg.RangeMin, cfg.RangeMax = 2, 2
	assert.NoError(t, cfg.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
trials = 10
vector_size = 5000
range_min = -1.0
range_max = 1.0
seed = 7
ks_trials = 50
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Trials)
	assert.Equal(t, 5000, cfg.VectorSize)
	assert.Equal(t, float32(-1), cfg.RangeMin)
	assert.Equal(t, float32(1), cfg.RangeMax)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 50, cfg.KSTrials)
	// Untouched keys keep their defaults.
	assert.Equal(t, 10000, cfg.KSSampleSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "run.yaml", `
trials: 3
vector_size: 100
ks_sample_size: 2000
preview_mean: 10
preview_variance: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Trials)
	assert.Equal(t, 100, cfg.VectorSize)
	assert.Equal(t, 2000, cfg.KSSampleSize)
	assert.Equal(t, 10.0, cfg.PreviewMean)
	assert.Equal(t, 4.0, cfg.PreviewVariance)
	assert.Equal(t, float32(1), cfg.RangeMax)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, "empty.yml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeFile(t, "bad.toml", "trails = 3\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "trails: 3\n"))
	assert.Error(t, err)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, "run.json", "{}"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "broken.toml", "trials = = 3"))
	assert.Error(t, err)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
