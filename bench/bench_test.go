package bench

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pengdafu/chaindict/dict"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.MaxElements = 3000
	cfg.Step = 1000
	cfg.Seed = 1
	cfg.Clock = ClockWall
	return cfg
}

func newRunner(t *testing.T, cfg Config) *Runner {
	t.Helper()
	r, err := NewRunner(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close(context.Background()) })
	return r
}

func TestCapacity(t *testing.T) {
	require.Equal(t, int64(100001), Capacity(50000, 0.5))
	require.Equal(t, int64(2), Capacity(1, 1))
	require.Equal(t, int64(1), Capacity(0, 0.5))
}

func TestRunStep(t *testing.T) {
	for _, hash := range []string{HashDJB2, HashSipHash, HashMapHash} {
		t.Run(hash, func(t *testing.T) {
			cfg := smallConfig()
			cfg.Hash = hash
			r := newRunner(t, cfg)
			res, err := r.RunStep(context.Background(), 1000)
			require.NoError(t, err)

			require.Equal(t, 1000, res.N)
			require.Equal(t, int64(2001), res.Capacity)
			require.False(t, res.Baseline)
			require.Equal(t, 1000, res.Hits+res.Misses)
			require.GreaterOrEqual(t, res.Hits, 900)
			require.Equal(t, res.Entries, int64(res.Removed))
			require.GreaterOrEqual(t, res.MaxChain, 1)
		})
	}
}

func TestRunBaselineStep(t *testing.T) {
	r := newRunner(t, smallConfig())
	res, err := r.RunBaselineStep(context.Background(), 1000)
	require.NoError(t, err)
	require.True(t, res.Baseline)
	require.Equal(t, 1000, res.Hits+res.Misses)
	require.GreaterOrEqual(t, res.Hits, 900)
	require.Equal(t, res.Entries, int64(res.Removed))
}

func TestRun(t *testing.T) {
	cfg := smallConfig()
	cfg.Baseline = true
	r := newRunner(t, cfg)

	var sizes []int
	var baselines int
	err := r.Run(context.Background(), func(res Result) error {
		if res.Baseline {
			baselines++
		} else {
			sizes = append(sizes, res.N)
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []int{1000, 2000, 3000}, sizes)
	require.Equal(t, 3, baselines)
}

func TestRunStopsOnCallbackError(t *testing.T) {
	r := newRunner(t, smallConfig())
	stop := errors.New("stop")
	calls := 0
	err := r.Run(context.Background(), func(Result) error {
		calls++
		return stop
	})
	require.ErrorIs(t, err, stop)
	require.Equal(t, 1, calls)
}

func TestRunCancelled(t *testing.T) {
	r := newRunner(t, smallConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := r.Run(ctx, func(Result) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunStepOutOfMemory(t *testing.T) {
	cfg := smallConfig()
	cfg.EntryLimit = 10
	r := newRunner(t, cfg)
	_, err := r.RunStep(context.Background(), 1000)
	require.ErrorIs(t, err, dict.ErrOutOfMemory)
}

func TestPopulate(t *testing.T) {
	r := newRunner(t, smallConfig())
	d, keys, err := r.Populate(context.Background(), 50)
	require.NoError(t, err)
	defer d.Release()
	require.Len(t, keys, 50)
	require.Equal(t, Capacity(50, 0.5), d.Cap())
	for _, key := range keys {
		require.Len(t, key, 9)
		_, ok := d.Search(key)
		require.True(t, ok)
	}
}

func TestNewRunnerRejectsBadConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Step = 0
	_, err := NewRunner(context.Background(), cfg)
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Report(&buf, Result{N: 50000}))
	want := "\n------ TEST WITH 50000 ELEMENTS ------\n" +
		"Insert time: 0.000000 s\n" +
		"Search time: 0.000000 s\n" +
		"Remove time: 0.000000 s\n"
	require.Equal(t, want, buf.String())

	buf.Reset()
	require.NoError(t, ReportVerbose(&buf, Result{N: 10, Baseline: true, Entries: 10, Removed: 10}))
	require.True(t, strings.Contains(buf.String(), "(go map)"))
	require.True(t, strings.HasSuffix(buf.String(), "entries: 10, hits: 0, misses: 0, removed: 10\n"))
}
