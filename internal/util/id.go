package util

import "github.com/google/uuid"

// NewID returns a random identifier used to correlate log entries of one run.
func NewID() string { return uuid.NewString() }
