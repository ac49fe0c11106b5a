// Package config holds the tunables of a numbench run and loads them from TOML or
// YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned by Load for files that are neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// Config controls both experiments.
type Config struct {
	// Trials is the number of summation trials. At least two are needed for a
	// standard deviation.
	Trials int `toml:"trials" yaml:"trials" validate:"min=2"`

	// VectorSize is the number of values summed per trial.
	VectorSize int `toml:"vector_size" yaml:"vector_size" validate:"min=1"`

	// RangeMin and RangeMax bound the uniformly drawn values.
	RangeMin float32 `toml:"range_min" yaml:"range_min" validate:"finite"`
	RangeMax float32 `toml:"range_max" yaml:"range_max" validate:"finite,gtefield=RangeMin"`

	// Seed seeds the generator that hands out per-trial seeds.
	Seed int64 `toml:"seed" yaml:"seed"`

	// KSTrials is the number of repeated goodness-of-fit tests per sampler.
	KSTrials int `toml:"ks_trials" yaml:"ks_trials" validate:"min=1"`

	// KSSampleSize is the batch size of a single goodness-of-fit test.
	KSSampleSize int `toml:"ks_sample_size" yaml:"ks_sample_size" validate:"min=1"`

	// KSCoefficient scales the critical value coefficient/√KSSampleSize.
	KSCoefficient float64 `toml:"ks_coefficient" yaml:"ks_coefficient" validate:"finite,gt=0"`

	// ThroughputSamples is the batch size of the throughput measurement.
	ThroughputSamples int `toml:"throughput_samples" yaml:"throughput_samples" validate:"min=1"`

	// PreviewSamples values are printed per sampler, drawn from
	// N(PreviewMean, PreviewVariance).
	PreviewSamples  int     `toml:"preview_samples" yaml:"preview_samples" validate:"min=0"`
	PreviewMean     float64 `toml:"preview_mean" yaml:"preview_mean" validate:"finite"`
	PreviewVariance float64 `toml:"preview_variance" yaml:"preview_variance" validate:"finite,gte=0"`
}

// Default returns the configuration of the reference experiments.
func Default() Config {
	return Config{
		Trials:            100,
		VectorSize:        1_000_000,
		RangeMin:          0,
		RangeMax:          1,
		Seed:              1,
		KSTrials:          1000,
		KSSampleSize:      10000,
		KSCoefficient:     1.63,
		ThroughputSamples: 100_000,
		PreviewSamples:    5,
		PreviewMean:       0,
		PreviewVariance:   1,
	}
}

var validate = sync.OnceValue(func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("finite", isFinite); err != nil {
		panic(err)
	}
	return v
})

func isFinite(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Float32, reflect.Float64:
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return true
	}
}

// Validate checks every field against its constraints. The returned error is a
// validator.ValidationErrors when a constraint fails.
func (c Config) Validate() error {
	return validate().Struct(c)
}

// Load reads path over the defaults. The format is chosen by extension:
// .toml, .yaml or .yml. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return cfg, fmt.Errorf("unknown keys in config %s: %v", path, undecoded)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("failed to decode config %s: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return cfg, nil
}
