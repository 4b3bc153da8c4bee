// Package verify runs the conformance suite and the cross-backend stream
// comparison for a set of backends and reports per-backend results.
package verify

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-lanes/internal/conformance"
	"github.com/ajroetker/go-lanes/internal/crosscheck"
	"github.com/ajroetker/go-lanes/internal/workerpool"
)

// ErrMismatch is returned when any backend disagrees with the reference or
// with another backend.
var ErrMismatch = errors.New("verify: mismatch")

// ErrNoBackends is returned when the selection matches no backend.
var ErrNoBackends = errors.New("verify: no backends selected")

// Options selects what to run.
type Options struct {
	Iterations    int
	Seed          int64
	Backends      []string
	StreamLengths []int
}

// Result is the outcome of one backend's conformance run.
type Result struct {
	Backend  string
	Cases    int
	Checks   int
	Failures []error
	Duration time.Duration
}

// OK reports whether the backend passed every case.
func (r Result) OK() bool { return len(r.Failures) == 0 }

// Report is the outcome of a full run.
type Report struct {
	Results    []Result
	Streams    int
	Crosscheck error
}

// Err returns nil when everything passed, or every failure joined and
// wrapped in ErrMismatch.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		for _, err := range res.Failures {
			errs = append(errs, fmt.Errorf("%s: %w", res.Backend, err))
		}
	}
	if r.Crosscheck != nil {
		errs = append(errs, r.Crosscheck)
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrMismatch, errors.Join(errs...))
}

// Runner executes verification on a shared worker pool.
type Runner struct {
	pool     *workerpool.Pool
	metrics  *Metrics
	log      zerolog.Logger
	backends []crosscheck.Backend
}

// NewRunner returns a runner over every backend.
func NewRunner(pool *workerpool.Pool, metrics *Metrics, log zerolog.Logger) *Runner {
	return &Runner{pool: pool, metrics: metrics, log: log, backends: crosscheck.Backends()}
}

// Select returns the backends named in names, or all of them when names is
// empty, in narrowest-first order.
func (r *Runner) Select(names []string) ([]crosscheck.Backend, error) {
	if len(names) == 0 {
		return r.backends, nil
	}
	selected := lo.Filter(r.backends, func(b crosscheck.Backend, _ int) bool {
		return lo.Contains(names, b.Name)
	})
	if len(selected) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoBackends, names)
	}
	return selected, nil
}

// Run verifies every selected backend concurrently, then crosschecks them.
// Mismatches are reported in the Report; the returned error is only set
// when the run could not complete.
func (r *Runner) Run(ctx context.Context, opts Options) (Report, error) {
	backends, err := r.Select(opts.Backends)
	if err != nil {
		return Report{}, err
	}

	report := Report{Results: make([]Result, len(backends))}
	g, gctx := errgroup.WithContext(ctx)
	for i, b := range backends {
		g.Go(func() error {
			res, err := r.conformance(gctx, b, opts)
			report.Results[i] = res
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return report, err
	}

	report.Streams = len(opts.StreamLengths)
	if len(backends) > 1 {
		if err := r.crosscheck(ctx, backends, opts, &report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (r *Runner) conformance(ctx context.Context, b crosscheck.Backend, opts Options) (Result, error) {
	start := time.Now()
	cases := b.Cases()
	failures := make([]error, len(cases))
	base := opts.Seed ^ nameSeed(b.Name)

	err := r.pool.ParallelForAtomic(ctx, len(cases), func(i int) error {
		rng := rand.New(rand.NewSource(base + int64(i)))
		if err := conformance.RunCase(cases[i], rng, opts.Iterations); err != nil {
			failures[i] = err
			r.metrics.Failures.WithLabelValues(b.Name, StageConformance).Inc()
			r.log.Error().Err(err).Str("backend", b.Name).Str("case", cases[i].Name).Msg("conformance mismatch")
		}
		r.metrics.Checks.WithLabelValues(b.Name, StageConformance).Add(float64(opts.Iterations))
		return nil
	})

	res := Result{
		Backend:  b.Name,
		Cases:    len(cases),
		Checks:   len(cases) * opts.Iterations,
		Failures: lo.Compact(failures),
		Duration: time.Since(start),
	}
	r.metrics.Duration.WithLabelValues(b.Name, StageConformance).Observe(res.Duration.Seconds())
	r.log.Debug().Str("backend", b.Name).Int("cases", res.Cases).Dur("took", res.Duration).Bool("ok", res.OK()).Msg("conformance done")
	return res, err
}

// crosscheck records divergences in report.Crosscheck.
func (r *Runner) crosscheck(ctx context.Context, backends []crosscheck.Backend, opts Options, report *Report) error {
	start := time.Now()
	names := lo.Map(backends, func(b crosscheck.Backend, _ int) string { return b.Name })
	label := lo.Reduce(names[1:], func(acc, n string, _ int) string { return acc + "+" + n }, names[0])
	failures := make([]error, len(opts.StreamLengths))

	err := r.pool.ParallelFor(ctx, len(opts.StreamLengths), func(start, end int) error {
		for i := start; i < end; i++ {
			in := crosscheck.NewInput(rand.New(rand.NewSource(opts.Seed+int64(i))), opts.StreamLengths[i])
			if err := crosscheck.Check(backends, in); err != nil {
				failures[i] = err
				r.metrics.Failures.WithLabelValues(label, StageCrosscheck).Inc()
				r.log.Error().Err(err).Int("length", opts.StreamLengths[i]).Msg("backends diverged")
			}
			r.metrics.Checks.WithLabelValues(label, StageCrosscheck).Inc()
		}
		return nil
	})
	r.metrics.Duration.WithLabelValues(label, StageCrosscheck).Observe(time.Since(start).Seconds())
	if err != nil {
		return err
	}
	if failed := lo.Compact(failures); len(failed) > 0 {
		report.Crosscheck = errors.Join(failed...)
	}
	return nil
}

// nameSeed gives every backend its own random stream for the same seed.
func nameSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return int64(h.Sum64())
}
