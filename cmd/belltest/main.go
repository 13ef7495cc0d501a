package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hupe1980/bellrunner/config"
	"github.com/hupe1980/bellrunner/core"
	"github.com/hupe1980/bellrunner/experiment"
	"github.com/hupe1980/bellrunner/logging"
	"github.com/hupe1980/bellrunner/simulator"
)

// belltest runs the Bell test for both initial configurations and prints one
// line of counts per configuration. It takes no arguments; settings come from
// the environment or a .env file.
func main() {
	if err := run(context.Background(), os.Stdout, os.Stderr, os.Stdin); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, errW io.Writer, in io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	return execute(ctx, cfg, outW, errW, in)
}

func execute(ctx context.Context, cfg *config.Config, outW, errW io.Writer, in io.Reader) error {
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:     cfg.LogLevel,
		Format:    cfg.LogFormat,
		Output:    errW,
		Component: "belltest",
	})

	sim := simulator.New(func(o *simulator.Options) {
		o.Seed = cfg.Seed
		o.Noise = cfg.Noise
		o.Logger = logger.WithComponent("simulator")
	})

	var (
		source    core.Simulator = sim
		trial     core.Trial     = simulator.BellTest{}
		estimator *simulator.Estimator
	)

	if cfg.Estimate {
		estimator = simulator.NewEstimator(sim)
		source = estimator
		trial = estimator.Trial(trial)
	}

	r := experiment.New(source, trial, func(o *experiment.Options) {
		o.TrialCount = cfg.TrialCount
		o.Logger = logger.WithComponent("runner")
	})

	reports, err := r.Run(ctx)
	if werr := experiment.WriteReports(outW, reports); werr != nil {
		return errors.Join(err, werr)
	}
	if err != nil {
		return err
	}

	if estimator != nil {
		if _, err := io.WriteString(outW, estimator.TSV()); err != nil {
			return err
		}
	}

	if cfg.Pause {
		fmt.Fprintln(outW, "Press any key to continue...")
		if _, err := bufio.NewReader(in).ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}

	return nil
}
