// Package hostinfo describes the machine an experiment ran on so timing numbers
// can be compared across hosts.
package hostinfo

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// ISA represents the widest vector instruction set the CPU offers.
type ISA uint8

const (
	// Generic means no vector extension was detected.
	Generic ISA = iota
	// NEON represents ARM64 NEON (ASIMD).
	NEON
	// SVE2 represents ARM64 SVE2.
	SVE2
	// AVX2 represents x86-64 AVX2 with FMA.
	AVX2
	// AVX512 represents x86-64 AVX-512 (F+BW).
	AVX512
)

// String returns the string representation of an ISA.
func (i ISA) String() string {
	switch i {
	case Generic:
		return "generic"
	case NEON:
		return "neon"
	case SVE2:
		return "sve2"
	case AVX2:
		return "avx2"
	case AVX512:
		return "avx512"
	default:
		return "unknown"
	}
}

// Host summarizes the runtime environment.
type Host struct {
	GOOS   string
	GOARCH string
	CPUs   int
	ISA    ISA
	// FMA reports whether fused multiply-add is available. The Go compiler may fuse
	// x*y+z on such hosts, which changes float rounding.
	FMA bool
}

// Detect inspects the current process.
func Detect() Host {
	h := Host{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		CPUs:   runtime.NumCPU(),
	}

	switch runtime.GOARCH {
	case "amd64":
		h.FMA = cpu.X86.HasFMA
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW:
			h.ISA = AVX512
		case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
			h.ISA = AVX2
		}
	case "arm64":
		// FMA is part of the ARMv8 base ISA.
		h.FMA = true
		switch {
		case cpu.ARM64.HasSVE2:
			h.ISA = SVE2
		case cpu.ARM64.HasASIMD:
			h.ISA = NEON
		}
	}

	return h
}

// String formats the host as a single report line.
func (h Host) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s, %d cpus, isa=%s", h.GOOS, h.GOARCH, h.CPUs, h.ISA)
	if h.FMA {
		b.WriteString(", fma")
	}
	return b.String()
}
