// Package experiment implements the experiment runner for bellrunner.
//
// The Runner acquires a simulation handle once, runs the trial function for
// each initial configuration in core.Initials (in order), collects the
// aggregated outcomes and releases the handle on every exit path.
//
// # Responsibilities
//   - Scoped acquisition and release of the simulation resource
//   - Sequential execution of one trial batch per configuration
//   - Invariant checks on every outcome (counts sum to the trial count)
//   - Error classification (core.ErrResourceUnavailable, core.ErrTrialExecution)
//
// Failures are terminal: there is no retry, and reports already collected
// for completed configurations are returned alongside the error.
package experiment
