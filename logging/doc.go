// Package logging provides a minimal logging interface and adapters for bellrunner.
//
// The Logger interface defines the leveled logging methods (Debug, Info, Warn, Error)
// that the experiment runner and simulator use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - ExperimentLogger with run-scoped context and trial/experiment helpers
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	r := experiment.New(sim, trial, func(o *experiment.Options) { o.Logger = logger })
//
// Arguments after the message are slog key/value pairs.
package logging
