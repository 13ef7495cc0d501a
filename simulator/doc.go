// Package simulator contains a local stand-in for the external simulation
// resource consumed by the experiment runner, together with the Bell trial
// function and a resource estimator.
//
// The stand-in does not simulate quantum state. It reproduces the observable
// statistics of the Bell test: the first measurement of each trial is
// uniformly random whatever the initial configuration, and the partner
// measurement agrees with it (optionally disturbed by readout noise).
//
// Callers should depend on core.Simulator and core.Trial rather than the
// concrete types so the backend can be swapped without touching the runner.
package simulator
