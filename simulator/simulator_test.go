package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bellrunner/core"
	"github.com/hupe1980/bellrunner/internal/testutil"
)

// Interface compliance (compile-time assertions)
var (
	_ core.Simulator = (*Simulator)(nil)
	_ core.Simulator = (*Estimator)(nil)
	_ core.Handle    = (*Handle)(nil)
	_ core.Trial     = BellTest{}
)

func withSeed(seed int64) func(o *Options) {
	return func(o *Options) { o.Seed = seed }
}

func runBatch(t *testing.T, sim *Simulator, trials int, initial core.Configuration) core.Outcome {
	t.Helper()
	h, err := sim.Open(context.Background())
	require.NoError(t, err)
	defer func() { require.NoError(t, h.Close()) }()

	out, err := BellTest{}.Execute(context.Background(), h, trials, initial)
	require.NoError(t, err)
	return out
}

func TestBellTest_CountsInvariant(t *testing.T) {
	sim := New(withSeed(7))
	for _, n := range []int{1, 2, 1000, 10000} {
		for _, initial := range core.Initials {
			out := runBatch(t, sim, n, initial)
			assert.Equal(t, n, out.Zeros+out.Ones, "n=%d initial=%s", n, initial)
			assert.Equal(t, n, out.Agree, "noise free pairs always agree")
			assert.NoError(t, out.Check(n))
		}
	}
}

func TestBellTest_RoughlyBalanced(t *testing.T) {
	out := runBatch(t, New(withSeed(42)), 10000, core.Zero)
	// A fair coin over 10000 draws stays far inside this band.
	assert.InDelta(t, 5000, out.Zeros, 500)
	assert.InDelta(t, 5000, out.Ones, 500)
}

func TestBellTest_SeedIsDeterministic(t *testing.T) {
	a := runBatch(t, New(withSeed(99)), 5000, core.One)
	b := runBatch(t, New(withSeed(99)), 5000, core.One)
	assert.Equal(t, a, b)
}

func TestBellTest_FullNoiseNeverAgrees(t *testing.T) {
	sim := New(withSeed(3), func(o *Options) { o.Noise = 1 })
	out := runBatch(t, sim, 500, core.Zero)
	assert.Equal(t, 0, out.Agree)
	assert.Equal(t, 500, out.Total())
}

func TestBellTest_InvalidInput(t *testing.T) {
	sim := New(withSeed(1))
	h, err := sim.Open(context.Background())
	require.NoError(t, err)
	defer h.Close()

	_, err = BellTest{}.Execute(context.Background(), h, 0, core.Zero)
	assert.ErrorIs(t, err, core.ErrInvalidTrialCount)

	_, err = BellTest{}.Execute(context.Background(), h, 10, core.Configuration(5))
	assert.ErrorContains(t, err, "unknown initial configuration")

	stub, err := (&testutil.StubSimulator{}).Open(context.Background())
	require.NoError(t, err)
	_, err = BellTest{}.Execute(context.Background(), stub, 10, core.Zero)
	assert.ErrorContains(t, err, "unsupported handle type")
}

func TestBellTest_ClosedHandle(t *testing.T) {
	sim := New(withSeed(1))
	h, err := sim.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, h.Close())

	_, err = BellTest{}.Execute(context.Background(), h, 10, core.Zero)
	assert.ErrorIs(t, err, core.ErrHandleClosed)
}

func TestBellTest_Cancelled(t *testing.T) {
	sim := New(withSeed(1))
	h, err := sim.Open(context.Background())
	require.NoError(t, err)
	defer h.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = BellTest{}.Execute(ctx, h, 10, core.Zero)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulator_ExclusiveHandle(t *testing.T) {
	sim := New(withSeed(1))

	h, err := sim.Open(context.Background())
	require.NoError(t, err)

	_, err = sim.Open(context.Background())
	assert.ErrorIs(t, err, core.ErrResourceUnavailable)
	assert.ErrorIs(t, err, ErrBusy)

	require.NoError(t, h.Close())
	assert.ErrorIs(t, h.Close(), core.ErrHandleClosed)

	h2, err := sim.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, h2.Close())
}

func TestSimulator_OpenFailures(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New().Open(ctx)
	assert.ErrorIs(t, err, core.ErrResourceUnavailable)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = New(func(o *Options) { o.Noise = 1.5 }).Open(context.Background())
	assert.ErrorIs(t, err, core.ErrResourceUnavailable)
	assert.ErrorContains(t, err, "noise")
}

func TestSimulator_NilLoggerFallsBack(t *testing.T) {
	sim := New(func(o *Options) { o.Logger = nil })
	h, err := sim.Open(context.Background())
	require.NoError(t, err)
	require.NoError(t, h.Close())
}
