package numbench

import (
	"log/slog"

	"github.com/hupe1980/numbench/normal"
	"github.com/hupe1980/numbench/summation"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	algorithms       []summation.Algorithm
	samplers         []normal.Sampler
	hostInfo         bool
}

// Option configures a Harness.
type Option func(*options)

// WithMetricsCollector configures a metrics collector that observes every timed
// summation, goodness-of-fit trial and throughput batch.
//
// Example:
//
//	metrics := &numbench.BasicMetricsCollector{}
//	h, _ := numbench.New(config.Default(), numbench.WithMetricsCollector(metrics))
//	_, _ = h.RunSummation(os.Stdout)
//	stats := metrics.GetStats()
//	fmt.Printf("Summations: %d, Avg: %dns\n", stats.SummationCount, stats.SummationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for experiment progress.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := numbench.NewJSONLogger(slog.LevelInfo)
//	h, _ := numbench.New(cfg, numbench.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithAlgorithms replaces the candidate summation strategies scored against the
// reference. Defaults to summation.Candidates().
func WithAlgorithms(algs ...summation.Algorithm) Option {
	return func(o *options) {
		o.algorithms = algs
	}
}

// WithSamplers replaces the normal samplers under validation.
// Defaults to normal.Samplers().
func WithSamplers(samplers ...normal.Sampler) Option {
	return func(o *options) {
		o.samplers = samplers
	}
}

// WithoutHostInfo suppresses the host line at the top of each report.
func WithoutHostInfo() Option {
	return func(o *options) {
		o.hostInfo = false
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		algorithms:       summation.Candidates(),
		samplers:         normal.Samplers(),
		hostInfo:         true,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
