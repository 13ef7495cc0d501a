package simulator

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/hupe1980/bellrunner/core"
)

// Metrics are the counters collected by an Estimator.
type Metrics struct {
	Opens    int
	Batches  int
	Trials   int
	Failures int
}

// Estimator wraps a simulator and a trial function and counts the resources
// an experiment consumes. It is safe for concurrent use.
type Estimator struct {
	sim core.Simulator

	mu      sync.Mutex
	metrics Metrics
}

// NewEstimator returns an Estimator around sim.
func NewEstimator(sim core.Simulator) *Estimator {
	return &Estimator{sim: sim}
}

// Open opens the wrapped simulator and counts successful acquisitions.
func (e *Estimator) Open(ctx context.Context) (core.Handle, error) {
	h, err := e.sim.Open(ctx)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.metrics.Opens++
	e.mu.Unlock()

	return h, nil
}

// Trial returns t instrumented to count batches, trials and failures.
func (e *Estimator) Trial(t core.Trial) core.Trial {
	return core.TrialFunc(func(ctx context.Context, h core.Handle, trials int, initial core.Configuration) (core.Outcome, error) {
		out, err := t.Execute(ctx, h, trials, initial)

		e.mu.Lock()
		defer e.mu.Unlock()

		e.metrics.Batches++
		if err != nil {
			e.metrics.Failures++
			return out, err
		}
		e.metrics.Trials += out.Total()

		return out, nil
	})
}

// Metrics returns a snapshot of the counters.
func (e *Estimator) Metrics() Metrics {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.metrics
}

// TSV renders the counters as tab separated "Metric\tSum" lines with a header.
func (e *Estimator) TSV() string {
	m := e.Metrics()

	var sb strings.Builder

	sb.WriteString("Metric\tSum\n")
	fmt.Fprintf(&sb, "Opens\t%d\n", m.Opens)
	fmt.Fprintf(&sb, "Batches\t%d\n", m.Batches)
	fmt.Fprintf(&sb, "Trials\t%d\n", m.Trials)
	fmt.Fprintf(&sb, "Failures\t%d\n", m.Failures)

	return sb.String()
}
