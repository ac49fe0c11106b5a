package summation

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/numbench/rng"
)

func TestSmallVector(t *testing.T) {
	xs := rng.UniformSequence(6, 0, 1, 42)
	require.Len(t, xs, 6)

	ref := Reference{}.Sum(xs)
	assert.Equal(t, ref, Reference{}.Sum(rng.UniformSequence(6, 0, 1, 42)))

	for _, alg := range Candidates() {
		t.Run(alg.Name(), func(t *testing.T) {
			assert.InEpsilon(t, ref, alg.Sum(xs), 1e-5)
		})
	}

	naiveErr := AbsError(Naive{}.Sum(xs), ref)
	compErr := AbsError(Compensated{}.Sum(xs), ref)

	assert.LessOrEqual(t, compErr, naiveErr)
}

func TestKnownSums(t *testing.T) {
	tests := []struct {
		name string
		xs   []float32
		want float64
	}{
		{"empty", nil, 0},
		{"single", []float32{1.5}, 1.5},
		{"integers", []float32{1, 2, 3, 4}, 10},
		{"mixed sign", []float32{-2, 0.5, 1.5}, 0},
	}

	algs := append([]Algorithm{Reference{}}, Candidates()...)
	for _, tt := range tests {
		for _, alg := range algs {
			t.Run(tt.name+"/"+alg.Name(), func(t *testing.T) {
				assert.Equal(t, tt.want, alg.Sum(tt.xs))
			})
		}
	}
}

func TestCompensatedBeatsNaive(t *testing.T) {
	const (
		trials = 10
		n      = 100_000
	)

	master := rng.NewRNG(4711)

	var naiveErr, compErr float64
	for range trials {
		xs := rng.UniformSequence(n, 0, 1, master.NextSeed())
		ref := Reference{}.Sum(xs)
		naiveErr += AbsError(Naive{}.Sum(xs), ref)
		compErr += AbsError(Compensated{}.Sum(xs), ref)
	}

	assert.Less(t, compErr/trials, naiveErr/trials)
}

func TestCompensatedRecoversLostLowBits(t *testing.T) {
	// 2^24 absorbs every following 1 in float32 naive accumulation.
	xs := []float32{1 << 24}
	for range 16 {
		xs = append(xs, 1)
	}

	ref := Reference{}.Sum(xs)
	assert.Equal(t, float64(1<<24+16), ref)
	assert.Equal(t, float64(1<<24), Naive{}.Sum(xs))
	assert.Equal(t, ref, Compensated{}.Sum(xs))
	assert.Equal(t, ref, Sorted{}.Sum(xs))
}

func TestSortedIsPermutationInvariant(t *testing.T) {
	xs := rng.UniformSequence(10_000, 0, 1000, 42)
	want := Sorted{}.Sum(xs)

	r := rand.New(rand.NewSource(7)) // nolint gosec
	for range 10 {
		perm := slices.Clone(xs)
		r.Shuffle(len(perm), func(i, j int) { perm[i], perm[j] = perm[j], perm[i] })
		assert.Equal(t, want, Sorted{}.Sum(perm))
	}
}

func TestNaiveIsOrderDependent(t *testing.T) {
	a := []float32{1e8, 1, -1e8}
	b := []float32{1e8, -1e8, 1}

	assert.Equal(t, 0.0, Naive{}.Sum(a))
	assert.Equal(t, 1.0, Naive{}.Sum(b))
	assert.Equal(t, Sorted{}.Sum(a), Sorted{}.Sum(b))
}

func TestSortedDoesNotMutateInput(t *testing.T) {
	xs := []float32{3, 1, 2}
	_ = Sorted{}.Sum(xs)
	assert.Equal(t, []float32{3, 1, 2}, xs)
}

func TestAbsErrorNonNegative(t *testing.T) {
	assert.Equal(t, 0.5, AbsError(1, 1.5))
	assert.Equal(t, 0.5, AbsError(1.5, 1))
	assert.Equal(t, 0.0, AbsError(2, 2))
}

func TestParse(t *testing.T) {
	for _, name := range []string{"reference", "naive", "compensated", "sorted"} {
		alg, err := Parse(name)
		require.NoError(t, err)
		assert.Equal(t, name, alg.Name())
	}

	alg, err := Parse(" Kahan ")
	require.NoError(t, err)
	assert.Equal(t, Compensated{}, alg)

	_, err = Parse("pairwise")
	assert.Error(t, err)
}

func TestTimed(t *testing.T) {
	xs := rng.UniformSequence(1000, 0, 1, 1)
	sum, elapsed := Timed(Reference{}, xs)

	assert.Equal(t, Reference{}.Sum(xs), sum)
	assert.GreaterOrEqual(t, elapsed.Nanoseconds(), int64(0))
}

func BenchmarkAlgorithms(b *testing.B) {
	xs := rng.UniformSequence(1<<16, 0, 1, 42)
	algs := append([]Algorithm{Reference{}}, Candidates()...)

	for _, alg := range algs {
		b.Run(alg.Name(), func(b *testing.B) {
			b.SetBytes(int64(len(xs) * 4))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_ = alg.Sum(xs)
			}
		})
	}
}
