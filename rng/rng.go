package rng

import (
	"math/rand"
	"sync"
)

// RNG encapsulates a pseudo-random generator and the seed it was created with.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset rewinds the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// NextSeed draws a non-negative seed for a child generator.
func (r *RNG) NextSeed() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Int63()
}

// Float64Open returns a pseudo-random number in the open interval (0, 1).
// Zero is redrawn so callers can take its logarithm.
func (r *RNG) Float64Open() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.float64OpenLocked()
}

// FillOpen fills dst with values in (0, 1).
// Locks only once per call (preferred over calling Float64Open in a loop).
func (r *RNG) FillOpen(dst []float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = r.float64OpenLocked()
	}
}

func (r *RNG) float64OpenLocked() float64 {
	for {
		if u := r.rand.Float64(); u > 0 {
			return u
		}
	}
}

// Uniform32 returns n values drawn uniformly from [lo, hi].
// n <= 0 yields an empty slice.
func (r *RNG) Uniform32(n int, lo, hi float32) []float32 {
	if n <= 0 {
		return []float32{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// The width of a finite range can exceed the largest float32.
	span := float64(hi) - float64(lo)
	dst := make([]float32, n)
	for i := range dst {
		x := float32(float64(lo) + float64(r.rand.Float32())*span)
		dst[i] = min(max(x, lo), hi)
	}

	return dst
}

// UniformSequence returns n values drawn uniformly from [lo, hi] by a generator
// seeded with seed. The same arguments always produce the same sequence.
func UniformSequence(n int, lo, hi float32, seed int64) []float32 {
	return NewRNG(seed).Uniform32(n, lo, hi)
}
