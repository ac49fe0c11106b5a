// Command numbench runs the summation accuracy experiment and the normal-sampler
// validation and prints their reports.
//
// Usage:
//
//	numbench                      # both experiments with the reference configuration
//	numbench sum --trials 20      # summation only
//	numbench normal --ks-trials 200
//	numbench --config run.toml --log-level debug
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hupe1980/numbench"
	"github.com/hupe1980/numbench/config"
	"github.com/hupe1980/numbench/normal"
	"github.com/hupe1980/numbench/summation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	configPath string
	seed       int64
	logLevel   string
	logFormat  string
	noHost     bool
	algorithms []string
	samplers   []string
}

func newRootCmd() *cobra.Command {
	var (
		g globalFlags
		s summationFlags
		n normalFlags
	)

	rootCmd := &cobra.Command{
		Use:           "numbench",
		Short:         "Floating-point summation and normal-sampling experiments",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newHarness(cmd, &g, s.apply, n.apply)
			if err != nil {
				return err
			}
			return h.Run(cmd.OutOrStdout())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&g.configPath, "config", "c", "", "config file (.toml, .yaml or .yml)")
	pf.Int64Var(&g.seed, "seed", 0, "seed of the per-trial seed generator")
	pf.StringVar(&g.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")
	pf.BoolVar(&g.noHost, "no-host", false, "omit the host line from reports")
	pf.StringSliceVar(&g.algorithms, "algorithms", nil, "summation strategies to score (naive, compensated, sorted)")
	pf.StringSliceVar(&g.samplers, "samplers", nil, "normal samplers to validate (box-muller, polar)")

	s.register(rootCmd)
	n.register(rootCmd)

	rootCmd.AddCommand(newAllCmd(&g), newSumCmd(&g), newNormalCmd(&g))

	return rootCmd
}

func newAllCmd(g *globalFlags) *cobra.Command {
	var (
		s summationFlags
		n normalFlags
	)

	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run the summation experiment followed by the normal-sampler validation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newHarness(cmd, g, s.apply, n.apply)
			if err != nil {
				return err
			}
			return h.Run(cmd.OutOrStdout())
		},
	}
	s.register(cmd)
	n.register(cmd)

	return cmd
}

func newSumCmd(g *globalFlags) *cobra.Command {
	var s summationFlags

	cmd := &cobra.Command{
		Use:   "sum",
		Short: "Compare naive, compensated and sorted float32 summation against a float64 reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newHarness(cmd, g, s.apply)
			if err != nil {
				return err
			}
			_, err = h.RunSummation(cmd.OutOrStdout())
			return err
		},
	}
	s.register(cmd)

	return cmd
}

func newNormalCmd(g *globalFlags) *cobra.Command {
	var n normalFlags

	cmd := &cobra.Command{
		Use:   "normal",
		Short: "Validate Box-Muller and polar normal samplers with Kolmogorov-Smirnov tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := newHarness(cmd, g, n.apply)
			if err != nil {
				return err
			}
			_, err = h.RunNormal(cmd.OutOrStdout())
			return err
		},
	}
	n.register(cmd)

	return cmd
}

type summationFlags struct {
	trials   int
	size     int
	rangeMin float32
	rangeMax float32
}

func (f *summationFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.trials, "trials", 0, "number of summation trials (>= 2)")
	fs.IntVar(&f.size, "size", 0, "values per trial")
	fs.Float32Var(&f.rangeMin, "min", 0, "lower bound of the value range")
	fs.Float32Var(&f.rangeMax, "max", 0, "upper bound of the value range")
}

func (f *summationFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("trials") {
		cfg.Trials = f.trials
	}
	if fs.Changed("size") {
		cfg.VectorSize = f.size
	}
	if fs.Changed("min") {
		cfg.RangeMin = f.rangeMin
	}
	if fs.Changed("max") {
		cfg.RangeMax = f.rangeMax
	}
}

type normalFlags struct {
	ksTrials    int
	ksSize      int
	ksCoeff     float64
	throughput  int
	preview     int
	previewMean float64
	previewVar  float64
}

func (f *normalFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.IntVar(&f.ksTrials, "ks-trials", 0, "goodness-of-fit trials per sampler")
	fs.IntVar(&f.ksSize, "ks-size", 0, "samples per goodness-of-fit trial")
	fs.Float64Var(&f.ksCoeff, "ks-coefficient", 0, "critical value coefficient (1.63 = 99%)")
	fs.IntVar(&f.throughput, "throughput-samples", 0, "batch size of the throughput measurement")
	fs.IntVar(&f.preview, "preview", 0, "number of preview values per sampler")
	fs.Float64Var(&f.previewMean, "mean", 0, "mean of the preview values")
	fs.Float64Var(&f.previewVar, "variance", 0, "variance of the preview values")
}

func (f *normalFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("ks-trials") {
		cfg.KSTrials = f.ksTrials
	}
	if fs.Changed("ks-size") {
		cfg.KSSampleSize = f.ksSize
	}
	if fs.Changed("ks-coefficient") {
		cfg.KSCoefficient = f.ksCoeff
	}
	if fs.Changed("throughput-samples") {
		cfg.ThroughputSamples = f.throughput
	}
	if fs.Changed("preview") {
		cfg.PreviewSamples = f.preview
	}
	if fs.Changed("mean") {
		cfg.PreviewMean = f.previewMean
	}
	if fs.Changed("variance") {
		cfg.PreviewVariance = f.previewVar
	}
}

type applyFunc func(cmd *cobra.Command, cfg *config.Config)

func newHarness(cmd *cobra.Command, g *globalFlags, appliers ...applyFunc) (*numbench.Harness, error) {
	cfg := config.Default()
	if g.configPath != "" {
		loaded, err := config.Load(g.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = g.seed
	}
	for _, apply := range appliers {
		apply(cmd, &cfg)
	}

	logger, err := newLogger(cmd.ErrOrStderr(), g.logLevel, g.logFormat)
	if err != nil {
		return nil, err
	}

	opts := []numbench.Option{numbench.WithLogger(logger)}
	if g.noHost {
		opts = append(opts, numbench.WithoutHostInfo())
	}

	if len(g.algorithms) > 0 {
		algs := make([]summation.Algorithm, 0, len(g.algorithms))
		for _, name := range g.algorithms {
			alg, err := summation.Parse(name)
			if err != nil {
				return nil, err
			}
			algs = append(algs, alg)
		}
		opts = append(opts, numbench.WithAlgorithms(algs...))
	}

	if len(g.samplers) > 0 {
		samplers := make([]normal.Sampler, 0, len(g.samplers))
		for _, name := range g.samplers {
			s, err := normal.Parse(name)
			if err != nil {
				return nil, err
			}
			samplers = append(samplers, s)
		}
		opts = append(opts, numbench.WithSamplers(samplers...))
	}

	return numbench.New(cfg, opts...)
}

func newLogger(w io.Writer, level, format string) (*numbench.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return numbench.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return numbench.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
