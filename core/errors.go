package core

import "errors"

var (
	// ErrResourceUnavailable is returned when the simulation resource cannot
	// be acquired. No trial is executed in that case.
	ErrResourceUnavailable = errors.New("simulation resource unavailable")

	// ErrTrialExecution is returned when a trial invocation fails or yields an
	// outcome that violates the counting invariants.
	ErrTrialExecution = errors.New("trial execution failed")

	// ErrInvalidTrialCount is returned for a non-positive trial count.
	ErrInvalidTrialCount = errors.New("trial count must be positive")

	// ErrHandleClosed is returned when a handle is used or closed after it
	// has already been released.
	ErrHandleClosed = errors.New("simulation handle closed")
)
