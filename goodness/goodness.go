package goodness

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/hupe1980/numbench/normal"
	"github.com/hupe1980/numbench/rng"
)

const (
	// DefaultSampleSize is the batch size the default critical value is tabulated for.
	DefaultSampleSize = 10000

	// DefaultCoefficient yields the 99% confidence critical value.
	DefaultCoefficient = 1.63
)

var (
	// ErrInvalidSampleSize is returned when the batch size is not positive.
	ErrInvalidSampleSize = errors.New("sample size must be positive")

	// ErrInvalidTrials is returned when the trial count is not positive.
	ErrInvalidTrials = errors.New("trial count must be positive")
)

// Statistic returns the KS statistic D of xs against the standard normal CDF.
// xs is not modified. An empty sample yields 0.
func Statistic(xs []float64) float64 {
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	n := float64(len(sorted))

	var d float64
	for i, x := range sorted {
		if dev := math.Abs(distuv.UnitNormal.CDF(x) - float64(i)/n); dev > d {
			d = dev
		}
	}

	return d
}

// CriticalValue returns coefficient/√n.
func CriticalValue(n int, coefficient float64) float64 {
	return coefficient / math.Sqrt(float64(n))
}

// Outcome is the result of one KS test.
type Outcome struct {
	D        float64
	Critical float64
	Fits     bool
}

// Validator runs KS tests with a fixed batch size.
type Validator struct {
	SampleSize  int
	Coefficient float64

	// OnTrial, if set, is called after every trial of PassRate.
	OnTrial func(trial int, o Outcome)
}

// NewValidator returns a Validator with the default batch size and coefficient.
func NewValidator() *Validator {
	return &Validator{
		SampleSize:  DefaultSampleSize,
		Coefficient: DefaultCoefficient,
	}
}

// Test draws one batch from s and compares its statistic with the critical value.
func (v *Validator) Test(s normal.Sampler, r *rng.RNG) (Outcome, error) {
	if v.SampleSize <= 0 {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidSampleSize, v.SampleSize)
	}

	coefficient := v.Coefficient
	if coefficient <= 0 {
		coefficient = DefaultCoefficient
	}

	d := Statistic(s.Sample(r, v.SampleSize))
	crit := CriticalValue(v.SampleSize, coefficient)

	return Outcome{D: d, Critical: crit, Fits: d < crit}, nil
}

// PassRate runs trials independent tests, each on a generator seeded from seeds.
func (v *Validator) PassRate(s normal.Sampler, seeds *rng.RNG, trials int) (*Result, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}

	res := &Result{
		Sampler: s.Name(),
		Trials:  trials,
		passed:  roaring.New(),
	}

	for i := range trials {
		o, err := v.Test(s, rng.NewRNG(seeds.NextSeed()))
		if err != nil {
			return nil, err
		}

		if o.Fits {
			res.passed.Add(uint32(i))
		}
		res.MaxD = max(res.MaxD, o.D)

		if v.OnTrial != nil {
			v.OnTrial(i, o)
		}
	}

	return res, nil
}

// Result aggregates the outcomes of repeated tests for one sampler.
type Result struct {
	Sampler string
	Trials  int
	MaxD    float64

	passed *roaring.Bitmap
}

// Passed returns the number of trials that fit.
func (r *Result) Passed() int {
	return int(r.passed.GetCardinality())
}

// Rate returns the fraction of trials that fit.
func (r *Result) Rate() float64 {
	return float64(r.Passed()) / float64(r.Trials)
}

// Fits reports whether the given trial passed.
func (r *Result) Fits(trial int) bool {
	return trial >= 0 && r.passed.Contains(uint32(trial))
}

// Failed returns the indices of the trials that did not fit, in ascending order.
func (r *Result) Failed() []int {
	failed := roaring.Flip(r.passed, 0, uint64(r.Trials))

	out := make([]int, 0, failed.GetCardinality())
	it := failed.Iterator()
	for it.HasNext() {
		out = append(out, int(it.Next()))
	}

	return out
}
