package rng

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformSequenceReproducible(t *testing.T) {
	a := UniformSequence(1000, 0, 1, 4711)
	b := UniformSequence(1000, 0, 1, 4711)
	c := UniformSequence(1000, 0, 1, 4712)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestUniform32Range(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi float32
	}{
		{"unit", 0, 1},
		{"negative", -5, -1},
		{"straddling", -1, 1},
		{"degenerate", 3, 3},
		{"near float32 limits", -3e38, 3e38},
		{"full float32 range", -math.MaxFloat32, math.MaxFloat32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xs := NewRNG(42).Uniform32(10000, tt.lo, tt.hi)
			require.Len(t, xs, 10000)
			for _, x := range xs {
				assert.GreaterOrEqual(t, x, tt.lo)
				assert.LessOrEqual(t, x, tt.hi)
				assert.False(t, math.IsInf(float64(x), 0))
			}
		})
	}
}

func TestUniform32WideRangeIsSpread(t *testing.T) {
	xs := UniformSequence(1000, -3e38, 3e38, 42)

	var neg, pos int
	for _, x := range xs {
		if x < 0 {
			neg++
		} else {
			pos++
		}
	}

	assert.Greater(t, neg, 400)
	assert.Greater(t, pos, 400)
}

func TestUniform32UnitRangeMatchesRawDraws(t *testing.T) {
	r := NewRNG(7)
	xs := r.Uniform32(100, 0, 1)

	r.Reset()
	for i, x := range xs {
		assert.Equal(t, r.rand.Float32(), x, i)
	}
}

func TestUniform32Empty(t *testing.T) {
	xs := NewRNG(42).Uniform32(0, 0, 1)
	assert.NotNil(t, xs)
	assert.Empty(t, xs)
}

func TestReset(t *testing.T) {
	r := NewRNG(4711)
	v1 := r.Uniform32(10, 0, 1)

	r.Reset()
	v2 := r.Uniform32(10, 0, 1)

	assert.Equal(t, v1, v2)
	assert.Equal(t, int64(4711), r.Seed())
}

func TestNextSeed(t *testing.T) {
	a := NewRNG(42)
	b := NewRNG(42)

	for range 100 {
		s := a.NextSeed()
		assert.GreaterOrEqual(t, s, int64(0))
		assert.Equal(t, s, b.NextSeed())
	}
}

func TestFloat64Open(t *testing.T) {
	r := NewRNG(42)

	dst := make([]float64, 10000)
	r.FillOpen(dst)
	for _, u := range dst {
		assert.Greater(t, u, 0.0)
		assert.Less(t, u, 1.0)
	}

	u := r.Float64Open()
	assert.Greater(t, u, 0.0)
	assert.Less(t, u, 1.0)
}
