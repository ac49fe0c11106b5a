// Package numbench is a harness for numerical experiments on floating-point
// summation and normal sampling.
//
// numbench runs two experiments that share one shape: generate data from an
// explicitly seeded generator, run several interchangeable algorithms over it,
// measure error and time, and aggregate statistics across repeated trials.
//
// # Quick Start
//
//	h, err := numbench.New(config.Default())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := h.Run(os.Stdout); err != nil {
//	    log.Fatal(err)
//	}
//
// # Summation
//
// Every trial draws a fresh seed, generates a float32 vector and sums it with the
// float64 Reference plus each candidate (Naive, Compensated, Sorted), each on its
// own copy of the data. A candidate's error is |candidate − reference|. After the
// last trial every strategy is reported as
//
//	<label> (N=<trials>) | ERR: <mean> +/- <stddev> | TIME: <mean> +/- <stddev> us
//
// with "n/a" for the reference error. Standard deviations use the N−1 denominator,
// so at least two trials are required (ErrTooFewTrials).
//
// # Normal Sampling
//
// Box–Muller and Marsaglia's polar method are each validated with repeated
// one-sample Kolmogorov–Smirnov tests (package goodness), timed over a fixed
// batch, and previewed with a few values scaled to the configured mean and variance.
//
// # Observability
//
// Reports go to the writer passed to Run. Progress and completion logs go through
// a slog-based Logger (WithLogger) and per-measurement callbacks through a
// MetricsCollector (WithMetricsCollector).
package numbench
