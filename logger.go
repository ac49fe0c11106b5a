package numbench

import (
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with numbench-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithExperiment adds an experiment field to the logger.
func (l *Logger) WithExperiment(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("experiment", name),
	}
}

// WithSampler adds a sampler field to the logger.
func (l *Logger) WithSampler(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("sampler", name),
	}
}

// LogTrial logs progress through a trial loop.
func (l *Logger) LogTrial(trial, total int, seed int64) {
	l.Debug("trial completed",
		"trial", trial,
		"total", total,
		"seed", seed,
	)
}

// LogProgress logs progress through a loop without a per-iteration seed.
func (l *Logger) LogProgress(done, total int) {
	l.Debug("progress",
		"done", done,
		"total", total,
	)
}

// LogExperiment logs the end of an experiment run.
func (l *Logger) LogExperiment(trials int, elapsed time.Duration, err error) {
	if err != nil {
		l.Error("experiment failed",
			"trials", trials,
			"elapsed", elapsed,
			"error", err,
		)
	} else {
		l.Info("experiment completed",
			"trials", trials,
			"elapsed", elapsed,
		)
	}
}

// LogFit logs the pass rate of a sampler.
func (l *Logger) LogFit(passed, trials int, maxD, critical float64) {
	if passed < trials {
		l.Info("goodness-of-fit trials rejected",
			"passed", passed,
			"rejected", trials-passed,
			"max_d", maxD,
			"critical", critical,
		)
	} else {
		l.Info("goodness-of-fit trials passed",
			"passed", passed,
			"max_d", maxD,
			"critical", critical,
		)
	}
}
