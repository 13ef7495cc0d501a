package core

import "context"

// Handle is an acquired simulation resource. It is exclusively owned by the
// caller that opened it until Close is called.
type Handle interface {
	Close() error
}

// Simulator acquires simulation resources. Implementations should wrap
// acquisition failures so that callers can distinguish them from trial
// failures.
type Simulator interface {
	Open(ctx context.Context) (Handle, error)
}

// Trial executes a batch of probabilistic trials against an open handle and
// returns the aggregated counts. What happens inside a trial is opaque to the
// caller.
type Trial interface {
	Execute(ctx context.Context, h Handle, trials int, initial Configuration) (Outcome, error)
}

// TrialFunc adapts an ordinary function to the Trial interface.
type TrialFunc func(ctx context.Context, h Handle, trials int, initial Configuration) (Outcome, error)

// Execute calls f(ctx, h, trials, initial).
func (f TrialFunc) Execute(ctx context.Context, h Handle, trials int, initial Configuration) (Outcome, error) {
	return f(ctx, h, trials, initial)
}
