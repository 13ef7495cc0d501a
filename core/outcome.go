package core

import "fmt"

// Outcome aggregates the results of running a trial N times under one
// configuration. Zeros and Ones count the two measurement categories; Agree
// counts the trials that met the trial's own consistency criterion.
type Outcome struct {
	Zeros int
	Ones  int
	Agree int
}

// Total returns the number of classified trials.
func (o Outcome) Total() int { return o.Zeros + o.Ones }

// Check verifies the counting invariants for a batch of n trials: every trial
// is classified exactly once and the agreement count lies within [0, n].
func (o Outcome) Check(n int) error {
	if o.Zeros < 0 || o.Ones < 0 {
		return fmt.Errorf("negative category count (zeros=%d ones=%d)", o.Zeros, o.Ones)
	}
	if o.Total() != n {
		return fmt.Errorf("classified %d of %d trials", o.Total(), n)
	}
	if o.Agree < 0 || o.Agree > n {
		return fmt.Errorf("agreement count %d outside [0, %d]", o.Agree, n)
	}
	return nil
}

// Report pairs a configuration with the outcome it produced.
type Report struct {
	Configuration Configuration
	Outcome       Outcome
}

// String renders the report as a single display line with left-aligned,
// minimum-width fields.
func (r Report) String() string {
	return fmt.Sprintf("Init:%-4s 0s=%-4d 1s=%-4d agree=%-4d",
		r.Configuration, r.Outcome.Zeros, r.Outcome.Ones, r.Outcome.Agree)
}
