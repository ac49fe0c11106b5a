// Package goodness validates normal samplers with a one-sample
// Kolmogorov–Smirnov test against the standard normal CDF.
//
// A single Test draws one batch, computes
//
//	D = max_i |Φ(x_i) − i/N|     (x sorted ascending, i = 0..N−1)
//
// and accepts the batch when D < Coefficient/√N. With the default coefficient of
// 1.63 this is the 99% confidence level, so a correct sampler is expected to pass
// about 99% of repeated trials. PassRate estimates that fraction.
package goodness
