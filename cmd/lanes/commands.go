package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/internal/config"
	"github.com/ajroetker/go-lanes/internal/logging"
	"github.com/ajroetker/go-lanes/internal/verify"
	"github.com/ajroetker/go-lanes/internal/workerpool"
	"github.com/ajroetker/go-lanes/lanes"
	"github.com/ajroetker/go-lanes/lanes/features"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lanes",
		Short:        "Portable vector backends: build info, CPU features and verification",
		SilenceUsage: true,
	}
	root.AddCommand(newInfoCmd(), newFeaturesCmd(), newVerifyCmd())
	return root
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the backend this binary was built with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printInfo(cmd.OutOrStdout())
		},
	}
}

func printInfo(out io.Writer) error {
	g := lanes.Geometry()
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "backend\t%s\n", lanes.CurrentName())
	fmt.Fprintf(w, "register\t%d bits, %d bytes\n", g.Bits, g.Bytes)
	fmt.Fprintf(w, "lanes\t8-bit %d, 16-bit %d, 32-bit %d, 64-bit %d\n", g.Lanes8, g.Lanes16, g.Lanes32, g.Lanes64)
	fmt.Fprintf(w, "alignment\t%d\n", g.Alignment)
	fmt.Fprintf(w, "fused multiply-add\t%t\n", g.FusedMulAdd)
	fmt.Fprintf(w, "native 64-bit multiply\t%t\n", g.NativeMul64)
	fmt.Fprintf(w, "native u64 to float\t%t\n", g.NativeU64Float)
	fmt.Fprintf(w, "exact unsigned 16-bit widening\t%t\n", g.ExactWidenU16)
	fmt.Fprintf(w, "host supported\t%t\n", lanes.HostSupported())
	return w.Flush()
}

func newFeaturesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "features",
		Short: "Show the CPU features detected on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFeatures(cmd.OutOrStdout(), features.Detect())
		},
	}
}

func printFeatures(out io.Writer, s features.Set) error {
	supported := lo.Filter(features.Levels, func(level string, _ int) bool { return s.Supports(level) })
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "arch\t%s\n", s.Arch)
	fmt.Fprintf(w, "vendor\t%s\n", lo.Ternary(s.Vendor == "", "unknown", s.Vendor))
	fmt.Fprintf(w, "cache line\t%d\n", s.CacheLine)
	fmt.Fprintf(w, "extensions\t%s\n", strings.Join(s.Names(), " "))
	fmt.Fprintf(w, "runnable backends\t%s\n", strings.Join(supported, " "))
	fmt.Fprintf(w, "best backend\t%s\n", s.Best())
	return w.Flush()
}

func newVerifyCmd() *cobra.Command {
	var (
		configPath string
		iterations int
		seed       int64
		workers    int
		backends   string
		logLevel   string
		logFormat  string
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every backend against the reference and against each other",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("iterations") {
				cfg.Verify.Iterations = iterations
			}
			if flags.Changed("seed") {
				cfg.Verify.Seed = seed
			}
			if flags.Changed("workers") {
				cfg.Verify.Workers = workers
			}
			if flags.Changed("backends") {
				cfg.Verify.Backends = config.SplitList(backends)
			}
			if flags.Changed("log-level") {
				cfg.Log.Level = logLevel
			}
			if flags.Changed("log-format") {
				cfg.Log.Format = logFormat
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return runVerify(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg)
		},
	}
	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "YAML configuration file")
	f.IntVar(&iterations, "iterations", 0, "random inputs per conformance case")
	f.Int64Var(&seed, "seed", 0, "random seed")
	f.IntVar(&workers, "workers", 0, "worker goroutines (0 = GOMAXPROCS)")
	f.StringVar(&backends, "backends", "", "comma separated backends to verify (default all)")
	f.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&logFormat, "log-format", "", "log format: console or json")
	return cmd
}

func runVerify(ctx context.Context, out, errOut io.Writer, cfg config.Config) error {
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, errOut)
	if err != nil {
		return err
	}
	log = logging.Component(log, "verify")

	pool := workerpool.New(cfg.Verify.Workers)
	defer pool.Close()
	reg := prometheus.NewRegistry()
	runner := verify.NewRunner(pool, verify.NewMetrics(reg), log)

	log.Info().
		Strs("backends", lo.Ternary(len(cfg.Verify.Backends) == 0, features.Levels, cfg.Verify.Backends)).
		Int("iterations", cfg.Verify.Iterations).
		Int64("seed", cfg.Verify.Seed).
		Int("workers", pool.NumWorkers()).
		Msg("starting verification")

	report, err := runner.Run(ctx, verify.Options{
		Iterations:    cfg.Verify.Iterations,
		Seed:          cfg.Verify.Seed,
		Backends:      cfg.Verify.Backends,
		StreamLengths: cfg.Verify.StreamLengths,
	})
	if err != nil {
		log.Error().Err(err).Msg("verification aborted")
		return err
	}

	if err := printReport(out, report); err != nil {
		return err
	}
	if err := printMetrics(out, reg); err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		log.Error().Err(err).Msg("verification failed")
		return err
	}
	log.Info().Msg("all backends agree")
	return nil
}

func printReport(out io.Writer, report verify.Report) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "BACKEND\tCASES\tCHECKS\tFAILURES\tTIME")
	for _, r := range report.Results {
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", r.Backend, r.Cases, r.Checks, len(r.Failures), r.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(w, "crosscheck\t-\t%d\t%d\t-\n", report.Streams, lo.Ternary(report.Crosscheck == nil, 0, 1))
	return w.Flush()
}

// printMetrics writes every counter sample, sorted.
func printMetrics(out io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	var lines []string
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if m.GetCounter() == nil {
				continue
			}
			var labels []string
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			lines = append(lines, fmt.Sprintf("%s{%s} %g", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue()))
		}
	}
	sort.Strings(lines)
	for _, l := range lines {
		if _, err := fmt.Fprintln(out, l); err != nil {
			return err
		}
	}
	return nil
}
