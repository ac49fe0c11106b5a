package timing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	d := Measure(func() { time.Sleep(2 * time.Millisecond) })
	assert.GreaterOrEqual(t, d, 2*time.Millisecond)
}

func TestMeasureValue(t *testing.T) {
	v, d := MeasureValue(func() int { return 42 })
	assert.Equal(t, 42, v)
	assert.GreaterOrEqual(t, d, time.Duration(0))
}

func TestMicroseconds(t *testing.T) {
	assert.InDelta(t, 1.5, Microseconds(1500*time.Nanosecond), 1e-12)
	assert.InDelta(t, 2000.0, Microseconds(2*time.Millisecond), 1e-12)
}
