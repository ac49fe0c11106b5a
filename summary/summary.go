// Package summary computes mean and sample standard deviation over error values
// and timing durations.
//
// The standard deviation always uses the unbiased N−1 denominator, so at least two
// values are required. Callers render ErrNoData as "n/a".
package summary

import (
	"errors"
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/hupe1980/numbench/internal/timing"
)

var (
	// ErrNoData is returned when a collection is empty.
	ErrNoData = errors.New("no data")

	// ErrTooFewSamples is returned when a sample standard deviation is requested
	// for fewer than two values.
	ErrTooFewSamples = errors.New("sample standard deviation needs at least two values")
)

// Summary describes a collection of values.
type Summary struct {
	N      int
	Mean   float64
	StdDev float64
}

// String formats the summary as "<mean> +/- <stddev>".
func (s Summary) String() string {
	return fmt.Sprintf("%g +/- %g", s.Mean, s.StdDev)
}

// Summarize returns the mean and sample standard deviation of xs.
func Summarize(xs []float64) (Summary, error) {
	switch len(xs) {
	case 0:
		return Summary{}, ErrNoData
	case 1:
		return Summary{N: 1, Mean: xs[0]}, fmt.Errorf("%w: got 1", ErrTooFewSamples)
	}

	mean, std := stat.MeanStdDev(xs, nil)

	return Summary{N: len(xs), Mean: mean, StdDev: std}, nil
}

// Durations summarizes ds in microseconds.
func Durations(ds []time.Duration) (Summary, error) {
	us := make([]float64, len(ds))
	for i, d := range ds {
		us[i] = timing.Microseconds(d)
	}

	return Summarize(us)
}
