package hostinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestISAString(t *testing.T) {
	tests := []struct {
		isa  ISA
		want string
	}{
		{Generic, "generic"},
		{NEON, "neon"},
		{SVE2, "sve2"},
		{AVX2, "avx2"},
		{AVX512, "avx512"},
		{ISA(99), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.isa.String())
	}
}

func TestDetect(t *testing.T) {
	h := Detect()

	assert.Equal(t, runtime.GOOS, h.GOOS)
	assert.Equal(t, runtime.GOARCH, h.GOARCH)
	assert.Positive(t, h.CPUs)
	assert.True(t, strings.HasPrefix(h.String(), runtime.GOOS+"/"+runtime.GOARCH))
}

func TestHostString(t *testing.T) {
	h := Host{GOOS: "linux", GOARCH: "amd64", CPUs: 8, ISA: AVX2, FMA: true}
	assert.Equal(t, "linux/amd64, 8 cpus, isa=avx2, fma", h.String())

	h.FMA = false
	h.ISA = Generic
	assert.Equal(t, "linux/amd64, 8 cpus, isa=generic", h.String())
}
