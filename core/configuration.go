package core

import "fmt"

// Configuration is the initial state fed into a batch of trials.
type Configuration int

const (
	// Zero seeds the trials with the |0> state.
	Zero Configuration = iota
	// One seeds the trials with the |1> state.
	One
)

// Initials is the fixed, ordered set of configurations an experiment runs.
// The order only matters for output reproducibility.
var Initials = []Configuration{Zero, One}

// String returns the display label of the configuration.
func (c Configuration) String() string {
	switch c {
	case Zero:
		return "Zero"
	case One:
		return "One"
	default:
		return fmt.Sprintf("Configuration(%d)", int(c))
	}
}

// Valid reports whether c is one of the declared configurations.
func (c Configuration) Valid() bool {
	return c == Zero || c == One
}
