// Package report renders experiment results as console text.
//
// Printer keeps the first write error and turns later writes into no-ops, so
// callers check Err once after printing.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/numbench/summary"
)

// Separator is printed between summation trials.
const Separator = "------------------------------"

// Printer writes report lines to an io.Writer.
type Printer struct {
	w   io.Writer
	err error
}

// New returns a Printer writing to w.
func New(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Host prints the machine description.
func (p *Printer) Host(desc string) {
	p.printf("host: %s\n", desc)
}

// Blank prints an empty line between report sections.
func (p *Printer) Blank() {
	p.printf("\n")
}

// Header announces a summation run.
func (p *Printer) Header(trials, size int, lo, hi float32) {
	p.printf("running %d experiments, with vectors of size %d, chosen from the interval [%g, %g]\n",
		trials, size, lo, hi)
}

// Footer repeats the run parameters after the last trial.
func (p *Printer) Footer(trials, size int, lo, hi float32) {
	p.printf("%s\n", Separator)
	p.printf("ran %d experiments, with vectors of size %d, chosen from the interval [%g, %g]\n",
		trials, size, lo, hi)
}

// TrialStart opens the block of one trial.
func (p *Printer) TrialStart(trial int, seed int64) {
	p.printf("%s\n", Separator)
	p.printf("running experiment %d (seed: %d)\n", trial, seed)
}

// ReferenceSum prints the ground-truth sum of a trial.
func (p *Printer) ReferenceSum(sum float64) {
	p.printf("reference sum: %s\n", formatFloat(sum))
}

// CandidateSum prints a candidate's sum and its absolute error.
func (p *Printer) CandidateSum(name string, sum, absErr float64) {
	p.printf("%s sum: %s, err: %g\n", name, formatFloat(sum), absErr)
}

// StrategySummary prints the aggregate line of one strategy. A nil errs prints
// "n/a" for the error part, likewise for times.
func (p *Printer) StrategySummary(name string, trials int, errs, times *summary.Summary) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (N=%d) | ERR: ", name, trials)
	if errs != nil {
		fmt.Fprintf(&b, "%g +/- %g", errs.Mean, errs.StdDev)
	} else {
		b.WriteString("n/a")
	}

	b.WriteString(" | TIME: ")
	if times != nil {
		fmt.Fprintf(&b, "%.1f +/- %.1f us", times.Mean, times.StdDev)
	} else {
		b.WriteString("n/a")
	}

	p.printf("%s\n", b.String())
}

// PassRate prints the fraction of goodness-of-fit trials whose statistic stayed
// below the critical value.
func (p *Printer) PassRate(sampler string, critical, rate float64) {
	p.printf("fraction good fits, D < %.4f (%s): %g\n", critical, sampler, rate)
}

// Throughput prints a sampler's generation rate.
func (p *Printer) Throughput(sampler string, perMicrosecond float64) {
	p.printf("samples/us (%s): %.3f\n", sampler, perMicrosecond)
}

// Preview prints a few values as a space-separated sequence.
func (p *Printer) Preview(sampler string, xs []float64) {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x)
	}
	p.printf("%d-sample (%s): %s\n", len(xs), sampler, strings.Join(parts, " "))
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', 9, 64)
}
