package experiment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/bellrunner/core"
	"github.com/hupe1980/bellrunner/internal/util"
	"github.com/hupe1980/bellrunner/logging"
)

// DefaultTrialCount is the number of trials run per configuration.
const DefaultTrialCount = 10000

// Options holds configuration overrides passed to New().
type Options struct {
	// TrialCount is the number of trials executed per configuration.
	TrialCount int
	// Logger receives run lifecycle entries.
	Logger logging.Logger
}

// Runner drives the experiment: it owns the simulation handle for the whole
// run and executes one trial batch per configuration, strictly sequentially.
// A Runner may be reused for several runs but not concurrently.
type Runner struct {
	simulator  core.Simulator
	trial      core.Trial
	trialCount int
	logger     logging.Logger
}

// New constructs a Runner with optional overrides.
func New(sim core.Simulator, trial core.Trial, optFns ...func(o *Options)) *Runner {
	opts := Options{
		TrialCount: DefaultTrialCount,
		Logger:     logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Runner{
		simulator:  sim,
		trial:      trial,
		trialCount: opts.TrialCount,
		logger:     opts.Logger,
	}
}

// TrialCount returns the number of trials executed per configuration.
func (r *Runner) TrialCount() int { return r.trialCount }

// Run executes the experiment and returns one report per configuration in
// core.Initials order. On failure it returns the reports of the
// configurations that completed before the failure together with the error.
func (r *Runner) Run(ctx context.Context) ([]core.Report, error) {
	if r.trialCount <= 0 {
		return nil, fmt.Errorf("%w: got %d", core.ErrInvalidTrialCount, r.trialCount)
	}

	logger := logging.With(r.logger, "run_id", util.NewID())
	start := time.Now()

	h, err := r.open(ctx)
	if err != nil {
		logger.Error("Experiment failed", "error", err, "duration", time.Since(start))
		return nil, err
	}

	defer func() {
		if err := h.Close(); err != nil {
			logger.Warn("error closing simulation handle", "error", err)
		}
	}()

	logger.Debug("Simulation handle acquired", "trials", r.trialCount)

	reports := make([]core.Report, 0, len(core.Initials))

	for _, initial := range core.Initials {
		outcome, err := r.runBatch(ctx, logger, h, initial)
		if err != nil {
			logger.Error("Experiment failed", "error", err, "completed", len(reports), "duration", time.Since(start))
			return reports, err
		}

		reports = append(reports, core.Report{Configuration: initial, Outcome: outcome})
	}

	logger.Info("Experiment completed", "configurations", len(reports), "duration", time.Since(start))

	return reports, nil
}

func (r *Runner) open(ctx context.Context) (core.Handle, error) {
	h, err := r.simulator.Open(ctx)
	if err != nil {
		if errors.Is(err, core.ErrResourceUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", core.ErrResourceUnavailable, err)
	}

	if h == nil {
		return nil, fmt.Errorf("%w: simulator returned no handle", core.ErrResourceUnavailable)
	}

	return h, nil
}

func (r *Runner) runBatch(ctx context.Context, logger logging.Logger, h core.Handle, initial core.Configuration) (core.Outcome, error) {
	start := time.Now()

	outcome, err := r.trial.Execute(ctx, h, r.trialCount, initial)
	if err == nil {
		err = outcome.Check(r.trialCount)
	}

	if err != nil {
		if !errors.Is(err, core.ErrTrialExecution) {
			err = fmt.Errorf("%w: initial %s: %w", core.ErrTrialExecution, initial, err)
		}
		logger.Error("Trial batch failed", "initial", initial.String(), "trials", r.trialCount, "error", err)
		return core.Outcome{}, err
	}

	logger.Info("Trial batch completed",
		"initial", initial.String(),
		"trials", r.trialCount,
		"zeros", outcome.Zeros,
		"ones", outcome.Ones,
		"agree", outcome.Agree,
		"duration", time.Since(start),
	)

	return outcome, nil
}
