package summation

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/hupe1980/numbench/internal/timing"
)

// Algorithm reduces a sequence of float32 values to a sum.
//
// Candidates accumulate in float32 and widen the final result to float64
// without changing its value.
type Algorithm interface {
	// Name returns the label used in reports.
	Name() string
	// Sum returns the sum of xs. Implementations must not modify xs.
	Sum(xs []float32) float64
}

// Reference accumulates in float64, left to right.
type Reference struct{}

// Name implements Algorithm.
func (Reference) Name() string { return "reference" }

// Sum implements Algorithm.
func (Reference) Sum(xs []float32) float64 {
	var sum float64
	for _, x := range xs {
		sum += float64(x)
	}

	return sum
}

// Naive accumulates in float32, left to right.
type Naive struct{}

// Name implements Algorithm.
func (Naive) Name() string { return "naive" }

// Sum implements Algorithm.
func (Naive) Sum(xs []float32) float64 {
	return float64(naive(xs))
}

func naive(xs []float32) float32 {
	var sum float32
	for _, x := range xs {
		sum += x
	}

	return sum
}

// Compensated accumulates in float32 while carrying the rounding error of each
// addition in a correction term that is subtracted from the next input.
type Compensated struct{}

// Name implements Algorithm.
func (Compensated) Name() string { return "compensated" }

// Sum implements Algorithm.
func (Compensated) Sum(xs []float32) float64 {
	var sum, c float32
	for _, x := range xs {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return float64(sum)
}

// Sorted sums an ascending copy of the input in float32.
type Sorted struct{}

// Name implements Algorithm.
func (Sorted) Name() string { return "sorted" }

// Sum implements Algorithm.
func (Sorted) Sum(xs []float32) float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	return float64(naive(sorted))
}

// Candidates returns the strategies that are scored against Reference.
func Candidates() []Algorithm {
	return []Algorithm{Naive{}, Compensated{}, Sorted{}}
}

// Parse resolves a strategy by its report name (case-insensitive).
func Parse(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "reference", "ref":
		return Reference{}, nil
	case "naive", "plain":
		return Naive{}, nil
	case "compensated", "kahan":
		return Compensated{}, nil
	case "sorted":
		return Sorted{}, nil
	default:
		return nil, fmt.Errorf("unknown summation algorithm %q", name)
	}
}

// Timed runs alg over xs and returns the sum and the time spent in Sum.
func Timed(alg Algorithm, xs []float32) (float64, time.Duration) {
	return timing.MeasureValue(func() float64 {
		return alg.Sum(xs)
	})
}

// AbsError returns the absolute difference between a candidate sum and the reference sum.
func AbsError(candidate, reference float64) float64 {
	return math.Abs(candidate - reference)
}
