package numbench

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/hupe1980/numbench/normal"
)

var (
	// ErrInvalidSize is returned when an experiment would run on an empty sample.
	ErrInvalidSize = errors.New("sample size must be at least 1")

	// ErrTooFewTrials is returned when fewer than two trials are requested, which
	// leaves the sample standard deviation undefined.
	ErrTooFewTrials = errors.New("at least two trials are required")

	// ErrInvalidRange is returned when the value range is not finite or inverted.
	ErrInvalidRange = errors.New("value range must be finite with min <= max")

	// ErrNonFinite is returned when a sum overflows or turns NaN. The trial is
	// aborted before it reaches the statistics.
	ErrNonFinite = errors.New("non-finite result")

	// ErrInvalidVariance is returned when the preview variance is negative or not finite.
	ErrInvalidVariance = normal.ErrInvalidVariance
)

// ErrInvalidConfig indicates a configuration field that failed validation.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidConfig struct {
	Field string
	Rule  string
	cause error
}

func (e *ErrInvalidConfig) Error() string {
	return fmt.Sprintf("invalid config: %s violates %q", e.Field, e.Rule)
}

func (e *ErrInvalidConfig) Unwrap() error { return e.cause }

// ErrBucketMismatch is returned when a trial does not carry exactly one result per
// candidate strategy.
type ErrBucketMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrBucketMismatch) Error() string {
	return fmt.Sprintf("trial result mismatch: expected %d results, got %d", e.Expected, e.Actual)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	invalid := &ErrInvalidConfig{Field: fe.Field(), Rule: fe.Tag(), cause: err}

	switch fe.Field() {
	case "Trials":
		return fmt.Errorf("%w: %w", ErrTooFewTrials, invalid)
	case "VectorSize", "KSSampleSize", "ThroughputSamples":
		return fmt.Errorf("%w: %w", ErrInvalidSize, invalid)
	case "RangeMin", "RangeMax":
		return fmt.Errorf("%w: %w", ErrInvalidRange, invalid)
	case "PreviewVariance":
		return fmt.Errorf("%w: %w", ErrInvalidVariance, invalid)
	}

	return invalid
}
