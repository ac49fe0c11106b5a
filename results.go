package numbench

import (
	"time"

	"github.com/hupe1980/numbench/summary"
)

// TrialResult is the outcome of one candidate strategy on one trial.
type TrialResult struct {
	Sum      float64
	Error    float64
	Duration time.Duration
}

// Bucket collects the per-trial results of one strategy. Errors is nil for the
// reference strategy, which is not scored.
type Bucket struct {
	Name      string
	Errors    []float64
	Durations []time.Duration
}

// StrategySummary aggregates a bucket. A nil field means the statistic is not
// applicable (no data, or fewer than two values).
type StrategySummary struct {
	Name   string
	Trials int
	Errors *summary.Summary
	Times  *summary.Summary
}

// SummationResults accumulates trial results of a summation experiment.
// Every bucket grows by exactly one entry per inserted trial.
type SummationResults struct {
	Reference  Bucket
	Candidates []Bucket
}

// NewSummationResults returns an empty accumulator for the named candidates.
func NewSummationResults(candidates []string, capacity int) *SummationResults {
	r := &SummationResults{
		Reference: Bucket{
			Name:      "reference",
			Durations: make([]time.Duration, 0, capacity),
		},
		Candidates: make([]Bucket, len(candidates)),
	}

	for i, name := range candidates {
		r.Candidates[i] = Bucket{
			Name:      name,
			Errors:    make([]float64, 0, capacity),
			Durations: make([]time.Duration, 0, capacity),
		}
	}

	return r
}

// Insert appends one trial: the reference duration and one result per candidate,
// in candidate order. Nothing is appended when the count does not match.
func (r *SummationResults) Insert(ref time.Duration, trial []TrialResult) error {
	if len(trial) != len(r.Candidates) {
		return &ErrBucketMismatch{Expected: len(r.Candidates), Actual: len(trial)}
	}

	r.Reference.Durations = append(r.Reference.Durations, ref)
	for i, res := range trial {
		b := &r.Candidates[i]
		b.Errors = append(b.Errors, res.Error)
		b.Durations = append(b.Durations, res.Duration)
	}

	return nil
}

// Trials returns the number of inserted trials.
func (r *SummationResults) Trials() int {
	return len(r.Reference.Durations)
}

// Bucket returns the bucket of the named strategy.
func (r *SummationResults) Bucket(name string) (Bucket, bool) {
	if name == r.Reference.Name {
		return r.Reference, true
	}
	for _, b := range r.Candidates {
		if b.Name == name {
			return b, true
		}
	}
	return Bucket{}, false
}

// Summaries returns one summary per strategy, reference first.
func (r *SummationResults) Summaries() []StrategySummary {
	out := make([]StrategySummary, 0, 1+len(r.Candidates))
	out = append(out, summarizeBucket(r.Reference))
	for _, b := range r.Candidates {
		out = append(out, summarizeBucket(b))
	}
	return out
}

func summarizeBucket(b Bucket) StrategySummary {
	s := StrategySummary{Name: b.Name, Trials: len(b.Durations)}

	if errs, err := summary.Summarize(b.Errors); err == nil {
		s.Errors = &errs
	}
	if times, err := summary.Durations(b.Durations); err == nil {
		s.Times = &times
	}

	return s
}
