package simulator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bellrunner/core"
	"github.com/hupe1980/bellrunner/experiment"
	"github.com/hupe1980/bellrunner/internal/testutil"
)

func TestEstimator_CountsExperiment(t *testing.T) {
	est := NewEstimator(New(withSeed(11)))

	r := experiment.New(est, est.Trial(BellTest{}), func(o *experiment.Options) { o.TrialCount = 1000 })
	reports, err := r.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, Metrics{Opens: 1, Batches: 2, Trials: 2000}, est.Metrics())
	assert.Equal(t, "Metric\tSum\nOpens\t1\nBatches\t2\nTrials\t2000\nFailures\t0\n", est.TSV())
}

func TestEstimator_CountsFailures(t *testing.T) {
	boom := errors.New("boom")
	est := NewEstimator(&testutil.StubSimulator{})
	trial := est.Trial(testutil.NewScriptedTrial().Fails(core.One, boom))

	_, err := experiment.New(est, trial, func(o *experiment.Options) { o.TrialCount = 10 }).Run(context.Background())
	require.ErrorIs(t, err, boom)

	assert.Equal(t, Metrics{Opens: 1, Batches: 2, Trials: 10, Failures: 1}, est.Metrics())
}

func TestEstimator_OpenFailureNotCounted(t *testing.T) {
	est := NewEstimator(&testutil.StubSimulator{OpenErr: errors.New("down")})

	_, err := est.Open(context.Background())
	require.Error(t, err)
	assert.Equal(t, Metrics{}, est.Metrics())
}
