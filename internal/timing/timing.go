// Package timing measures wall-clock spans around a single call.
package timing

import "time"

// Measure returns the elapsed monotonic time of fn.
func Measure(fn func()) time.Duration {
	start := time.Now()
	fn()
	return time.Since(start)
}

// MeasureValue calls fn and returns its result together with the elapsed time.
func MeasureValue[T any](fn func() T) (T, time.Duration) {
	start := time.Now()
	v := fn()
	return v, time.Since(start)
}

// Microseconds converts d to fractional microseconds.
func Microseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Microsecond)
}
