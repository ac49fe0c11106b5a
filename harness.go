package numbench

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/numbench/config"
	"github.com/hupe1980/numbench/goodness"
	"github.com/hupe1980/numbench/internal/hostinfo"
	"github.com/hupe1980/numbench/normal"
	"github.com/hupe1980/numbench/report"
	"github.com/hupe1980/numbench/rng"
	"github.com/hupe1980/numbench/summation"
)

// ErrNoStrategies is returned when a harness has no summation candidates or no
// samplers to run.
var ErrNoStrategies = errors.New("no strategies configured")

// progressInterval throttles per-trial progress logs.
const progressInterval = time.Second

// Harness runs the summation and normal-sampling experiments for one configuration.
//
// Each Run method derives its trial seeds from a generator seeded with
// config.Seed, so runs are reproducible and independent of each other.
type Harness struct {
	cfg     config.Config
	opts    options
	logger  *Logger
	metrics MetricsCollector
}

// New validates cfg and returns a Harness.
func New(cfg config.Config, optFns ...Option) (*Harness, error) {
	if err := cfg.Validate(); err != nil {
		return nil, translateError(err)
	}

	opts := applyOptions(optFns)
	if len(opts.algorithms) == 0 || len(opts.samplers) == 0 {
		return nil, ErrNoStrategies
	}

	return &Harness{
		cfg:     cfg,
		opts:    opts,
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}, nil
}

// Config returns the configuration the harness was created with.
func (h *Harness) Config() config.Config {
	return h.cfg
}

// Run executes the summation experiment followed by the normal-sampling validation.
func (h *Harness) Run(w io.Writer) error {
	p := h.newPrinter(w)

	if _, err := h.summationExperiment(p); err != nil {
		return err
	}

	p.Blank()

	_, err := h.normalExperiment(p)

	return err
}

func (h *Harness) newPrinter(w io.Writer) *report.Printer {
	p := report.New(w)
	if h.opts.hostInfo {
		p.Host(hostinfo.Detect().String())
	}
	return p
}

// RunSummation runs config.Trials summation trials and writes the per-trial lines
// and the per-strategy summary to w. Console output happens outside timed spans.
func (h *Harness) RunSummation(w io.Writer) (*SummationResults, error) {
	return h.summationExperiment(h.newPrinter(w))
}

func (h *Harness) summationExperiment(p *report.Printer) (*SummationResults, error) {
	log := h.logger.WithExperiment("summation")
	start := time.Now()

	res, err := h.runSummation(p, log)
	log.LogExperiment(h.cfg.Trials, time.Since(start), err)

	return res, err
}

func (h *Harness) runSummation(p *report.Printer, log *Logger) (*SummationResults, error) {
	cfg := h.cfg
	algs := h.opts.algorithms

	names := make([]string, len(algs))
	for i, alg := range algs {
		names[i] = alg.Name()
	}

	p.Header(cfg.Trials, cfg.VectorSize, cfg.RangeMin, cfg.RangeMax)

	seeds := rng.NewRNG(cfg.Seed)
	results := NewSummationResults(names, cfg.Trials)
	progress := rate.Sometimes{First: 1, Interval: progressInterval}

	for i := range cfg.Trials {
		seed := seeds.NextSeed()
		xs := rng.UniformSequence(cfg.VectorSize, cfg.RangeMin, cfg.RangeMax, seed)

		ref, refTime := summation.Timed(summation.Reference{}, xs)

		trial := make([]TrialResult, len(algs))
		for j, alg := range algs {
			sum, elapsed := summation.Timed(alg, slices.Clone(xs))
			trial[j] = TrialResult{
				Sum:      sum,
				Error:    summation.AbsError(sum, ref),
				Duration: elapsed,
			}
		}

		if err := checkFinite(i, seed, "reference", ref); err != nil {
			return nil, err
		}
		for j, r := range trial {
			if err := checkFinite(i, seed, names[j], r.Sum); err != nil {
				return nil, err
			}
		}

		if err := results.Insert(refTime, trial); err != nil {
			return nil, err
		}

		h.metrics.RecordReference(refTime)
		p.TrialStart(i, seed)
		p.ReferenceSum(ref)
		for j, r := range trial {
			h.metrics.RecordSummation(names[j], r.Error, r.Duration)
			p.CandidateSum(names[j], r.Sum, r.Error)
		}

		if err := p.Err(); err != nil {
			return nil, fmt.Errorf("failed to write report: %w", err)
		}

		progress.Do(func() { log.LogTrial(i+1, cfg.Trials, seed) })
	}

	p.Footer(cfg.Trials, cfg.VectorSize, cfg.RangeMin, cfg.RangeMax)
	for _, s := range results.Summaries() {
		p.StrategySummary(s.Name, s.Trials, s.Errors, s.Times)
	}

	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return results, nil
}

func checkFinite(trial int, seed int64, name string, sum float64) error {
	if math.IsNaN(sum) || math.IsInf(sum, 0) {
		return fmt.Errorf("experiment %d (seed: %d): %s sum is %g: %w", trial, seed, name, sum, ErrNonFinite)
	}
	return nil
}

// SamplerResult holds the validation results of one normal sampler.
type SamplerResult struct {
	Name string
	// Fit is the outcome of the repeated goodness-of-fit trials.
	Fit *goodness.Result
	// Throughput is in samples per microsecond.
	Throughput float64
	// Preview holds config.PreviewSamples values scaled to the preview mean and variance.
	Preview []float64
}

// NormalResults holds the validation results of every sampler.
type NormalResults struct {
	Critical float64
	Samplers []SamplerResult
}

// RunNormal validates every sampler with repeated Kolmogorov–Smirnov tests,
// measures its throughput and draws a short preview, writing one line per
// sampler and measurement to w.
func (h *Harness) RunNormal(w io.Writer) (*NormalResults, error) {
	return h.normalExperiment(h.newPrinter(w))
}

func (h *Harness) normalExperiment(p *report.Printer) (*NormalResults, error) {
	log := h.logger.WithExperiment("normal")
	start := time.Now()

	res, err := h.runNormal(p, log)
	log.LogExperiment(h.cfg.KSTrials, time.Since(start), err)

	return res, err
}

func (h *Harness) runNormal(p *report.Printer, log *Logger) (*NormalResults, error) {
	cfg := h.cfg
	samplers := h.opts.samplers

	seeds := rng.NewRNG(cfg.Seed)
	results := &NormalResults{
		Critical: goodness.CriticalValue(cfg.KSSampleSize, cfg.KSCoefficient),
		Samplers: make([]SamplerResult, len(samplers)),
	}

	for i, s := range samplers {
		samplerLog := log.WithSampler(s.Name())
		progress := rate.Sometimes{First: 1, Interval: progressInterval}

		v := &goodness.Validator{
			SampleSize:  cfg.KSSampleSize,
			Coefficient: cfg.KSCoefficient,
			OnTrial: func(trial int, o goodness.Outcome) {
				h.metrics.RecordFit(s.Name(), o.D, o.Fits)
				progress.Do(func() { samplerLog.LogProgress(trial+1, cfg.KSTrials) })
			},
		}

		fit, err := v.PassRate(s, seeds, cfg.KSTrials)
		if err != nil {
			return nil, fmt.Errorf("goodness of fit for %s: %w", s.Name(), err)
		}

		samplerLog.LogFit(fit.Passed(), fit.Trials, fit.MaxD, results.Critical)
		results.Samplers[i] = SamplerResult{Name: s.Name(), Fit: fit}
		p.PassRate(s.Name(), results.Critical, fit.Rate())
	}

	for i, s := range samplers {
		perUs, elapsed := normal.Throughput(s, rng.NewRNG(seeds.NextSeed()), cfg.ThroughputSamples)
		h.metrics.RecordThroughput(s.Name(), cfg.ThroughputSamples, elapsed)
		results.Samplers[i].Throughput = perUs
		p.Throughput(s.Name(), perUs)
	}

	if cfg.PreviewSamples > 0 {
		for i, s := range samplers {
			xs, err := normal.Generate(s, rng.NewRNG(seeds.NextSeed()), cfg.PreviewSamples, cfg.PreviewMean, cfg.PreviewVariance)
			if err != nil {
				return nil, err
			}
			results.Samplers[i].Preview = xs
			p.Preview(s.Name(), xs)
		}
	}

	if err := p.Err(); err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}

	return results, nil
}
