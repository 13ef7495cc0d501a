// Package core provides the foundational domain types and collaborator
// contracts used by bellrunner. It defines:
//
//   - Configuration (the initial state seeded into a batch of trials)
//   - Outcome and Report (aggregated counts for one configuration)
//   - Simulator / Handle (the scoped simulation resource)
//   - Trial (the opaque probabilistic experiment run against a handle)
//
// The package keeps implementation concerns (the simulator backend, the
// experiment loop, presentation) out of scope, exposing small interfaces so
// alternative backends and test doubles can be substituted freely.
package core
