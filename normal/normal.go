package normal

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/hupe1980/numbench/internal/timing"
	"github.com/hupe1980/numbench/rng"
)

// ErrInvalidVariance is returned when a variance is negative or not finite.
var ErrInvalidVariance = errors.New("variance must be finite and non-negative")

// Sampler draws standard-normal values (mean 0, variance 1).
type Sampler interface {
	// Name returns the label used in reports.
	Name() string
	// Sample returns exactly n values drawn from r. n <= 0 yields an empty slice.
	Sample(r *rng.RNG, n int) []float64
}

// BoxMuller maps uniform pairs (u1, u2) in (0, 1) to
// sqrt(-2 ln u1)·cos(2π u2) and sqrt(-2 ln u2)·cos(2π u1).
type BoxMuller struct{}

// Name implements Sampler.
func (BoxMuller) Name() string { return "box-muller" }

// Sample implements Sampler.
func (BoxMuller) Sample(r *rng.RNG, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}

	pairs := (n + 1) / 2
	u := make([]float64, 2*pairs)
	r.FillOpen(u)

	out := make([]float64, 0, 2*pairs)
	for i := 0; i < len(u); i += 2 {
		u1, u2 := u[i], u[i+1]
		out = append(out,
			math.Sqrt(-2*math.Log(u1))*math.Cos(2*math.Pi*u2),
			math.Sqrt(-2*math.Log(u2))*math.Cos(2*math.Pi*u1),
		)
	}

	return out[:n]
}

// Polar is Marsaglia's polar method. Candidate points (v1, v2) are drawn from
// [-1, 1]² and kept only when 0 < v1²+v2² < 1.
type Polar struct{}

// Name implements Sampler.
func (Polar) Name() string { return "polar" }

// Sample implements Sampler.
func (Polar) Sample(r *rng.RNG, n int) []float64 {
	return polar(r, n, nil)
}

// polar runs the rejection loop, reporting every accepted point to visit when
// it is non-nil.
func polar(r *rng.RNG, n int, visit func(v1, v2 float64)) []float64 {
	if n <= 0 {
		return []float64{}
	}

	out := make([]float64, 0, n+1)
	for len(out) < n {
		v1 := 2*r.Float64Open() - 1
		v2 := 2*r.Float64Open() - 1

		w, ok := accept(v1, v2)
		if !ok {
			continue
		}

		if visit != nil {
			visit(v1, v2)
		}

		s := math.Sqrt(-2 * math.Log(w) / w)
		out = append(out, s*v1, s*v2)
	}

	return out[:n]
}

// accept reports whether (v1, v2) lies strictly inside the unit circle and off
// the origin, where log(w)/w is undefined.
func accept(v1, v2 float64) (float64, bool) {
	w := v1*v1 + v2*v2
	if w >= 1 || w == 0 {
		return w, false
	}

	return w, true
}

// Samplers returns every supported sampler.
func Samplers() []Sampler {
	return []Sampler{BoxMuller{}, Polar{}}
}

// Parse resolves a sampler by its report name (case-insensitive).
func Parse(name string) (Sampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "box-muller", "boxmuller", "bm":
		return BoxMuller{}, nil
	case "polar", "marsaglia", "pm":
		return Polar{}, nil
	default:
		return nil, fmt.Errorf("unknown normal sampler %q", name)
	}
}

// Scale maps standard-normal values in place to sqrt(variance)·x + mean.
func Scale(xs []float64, mean, variance float64) error {
	if variance < 0 || math.IsNaN(variance) || math.IsInf(variance, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidVariance, variance)
	}

	scale := math.Sqrt(variance)
	for i := range xs {
		xs[i] = scale*xs[i] + mean
	}

	return nil
}

// Generate draws n values from s and scales them to the given mean and variance.
func Generate(s Sampler, r *rng.RNG, n int, mean, variance float64) ([]float64, error) {
	xs := s.Sample(r, n)
	if err := Scale(xs, mean, variance); err != nil {
		return nil, err
	}

	return xs, nil
}

// Throughput draws one batch of n values and returns the rate in samples per
// microsecond together with the time the batch took.
func Throughput(s Sampler, r *rng.RNG, n int) (float64, time.Duration) {
	elapsed := timing.Measure(func() {
		_ = s.Sample(r, n)
	})

	us := timing.Microseconds(elapsed)
	if us == 0 {
		return math.Inf(1), elapsed
	}

	return float64(n) / us, elapsed
}
