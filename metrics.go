package numbench

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting experiment metrics.
// Implement this interface to feed a monitoring or plotting system.
type MetricsCollector interface {
	// RecordReference is called after each timed reference summation.
	RecordReference(duration time.Duration)

	// RecordSummation is called after each timed candidate summation with its
	// absolute error against the reference.
	RecordSummation(strategy string, absErr float64, duration time.Duration)

	// RecordFit is called after each goodness-of-fit trial.
	RecordFit(sampler string, statistic float64, fits bool)

	// RecordThroughput is called after each throughput batch.
	RecordThroughput(sampler string, samples int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordReference(time.Duration)                  {}
func (NoopMetricsCollector) RecordSummation(string, float64, time.Duration) {}
func (NoopMetricsCollector) RecordFit(string, float64, bool)                {}
func (NoopMetricsCollector) RecordThroughput(string, int, time.Duration)    {}

// BasicMetricsCollector provides simple in-memory counters.
// Useful for debugging and tests without external dependencies.
type BasicMetricsCollector struct {
	ReferenceCount      atomic.Int64
	ReferenceTotalNanos atomic.Int64
	SummationCount      atomic.Int64
	SummationTotalNanos atomic.Int64
	FitCount            atomic.Int64
	FitPassed           atomic.Int64
	SampleCount         atomic.Int64
	SampleTotalNanos    atomic.Int64
}

// RecordReference implements MetricsCollector.
func (b *BasicMetricsCollector) RecordReference(duration time.Duration) {
	b.ReferenceCount.Add(1)
	b.ReferenceTotalNanos.Add(duration.Nanoseconds())
}

// RecordSummation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSummation(_ string, _ float64, duration time.Duration) {
	b.SummationCount.Add(1)
	b.SummationTotalNanos.Add(duration.Nanoseconds())
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(_ string, _ float64, fits bool) {
	b.FitCount.Add(1)
	if fits {
		b.FitPassed.Add(1)
	}
}

// RecordThroughput implements MetricsCollector.
func (b *BasicMetricsCollector) RecordThroughput(_ string, samples int, duration time.Duration) {
	b.SampleCount.Add(int64(samples))
	b.SampleTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReferenceCount:    b.ReferenceCount.Load(),
		ReferenceAvgNanos: avg(b.ReferenceTotalNanos.Load(), b.ReferenceCount.Load()),
		SummationCount:    b.SummationCount.Load(),
		SummationAvgNanos: avg(b.SummationTotalNanos.Load(), b.SummationCount.Load()),
		FitCount:          b.FitCount.Load(),
		FitPassed:         b.FitPassed.Load(),
		SampleCount:       b.SampleCount.Load(),
		SampleTotalNanos:  b.SampleTotalNanos.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReferenceCount    int64
	ReferenceAvgNanos int64
	SummationCount    int64
	SummationAvgNanos int64
	FitCount          int64
	FitPassed         int64
	SampleCount       int64
	SampleTotalNanos  int64
}
