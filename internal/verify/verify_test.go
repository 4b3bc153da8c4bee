package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanes/internal/crosscheck"
	"github.com/ajroetker/go-lanes/internal/workerpool"
)

func newRunner(t *testing.T) (*Runner, *Metrics) {
	t.Helper()
	pool := workerpool.New(4)
	t.Cleanup(pool.Close)
	metrics := NewMetrics(prometheus.NewRegistry())
	return NewRunner(pool, metrics, zerolog.Nop()), metrics
}

func TestRunAllBackends(t *testing.T) {
	r, metrics := newRunner(t)
	report, err := r.Run(context.Background(), Options{
		Iterations:    20,
		Seed:          3,
		StreamLengths: []int{1, 17, 130},
	})
	require.NoError(t, err)
	require.NoError(t, report.Err())

	require.Len(t, report.Results, 5)
	for _, res := range report.Results {
		assert.True(t, res.OK(), res.Backend)
		assert.Equal(t, res.Cases*20, res.Checks)
		assert.Equal(t, float64(res.Checks), testutil.ToFloat64(metrics.Checks.WithLabelValues(res.Backend, StageConformance)))
		assert.Zero(t, testutil.ToFloat64(metrics.Failures.WithLabelValues(res.Backend, StageConformance)))
	}
	assert.Equal(t, 3, report.Streams)
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.Checks.WithLabelValues("scalar+mmx+sse4+avx2+avx512", StageCrosscheck)))
}

func TestSelect(t *testing.T) {
	r, _ := newRunner(t)

	bs, err := r.Select([]string{"avx512", "sse4"})
	require.NoError(t, err)
	names := []string{bs[0].Name, bs[1].Name}
	assert.Equal(t, []string{"sse4", "avx512"}, names, "selection keeps width order")

	_, err = r.Select([]string{"neon"})
	assert.ErrorIs(t, err, ErrNoBackends)
}

func TestSingleBackendSkipsCrosscheck(t *testing.T) {
	r, metrics := newRunner(t)
	report, err := r.Run(context.Background(), Options{Iterations: 5, Backends: []string{"mmx"}, StreamLengths: []int{4}})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.NoError(t, report.Err())
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Checks), "only the mmx conformance series")
}

func TestReportErr(t *testing.T) {
	bad := errors.New("lane 3 differs")
	report := Report{Results: []Result{{Backend: "sse4", Failures: []error{bad}}}}
	err := report.Err()
	assert.ErrorIs(t, err, ErrMismatch)
	assert.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), "sse4")

	report = Report{Crosscheck: crosscheck.ErrDiverged}
	assert.ErrorIs(t, report.Err(), crosscheck.ErrDiverged)
}

func TestCanceled(t *testing.T) {
	r, _ := newRunner(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.Run(ctx, Options{Iterations: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
