package testutil

import (
	"context"
	"sync"

	"github.com/hupe1980/bellrunner/core"
)

// StubSimulator is a core.Simulator that counts opens and closes.
// Set OpenErr to make every Open fail.
type StubSimulator struct {
	OpenErr  error
	CloseErr error

	mu     sync.Mutex
	opens  int
	closes int
}

// Open returns a new StubHandle or OpenErr.
func (s *StubSimulator) Open(context.Context) (core.Handle, error) {
	if s.OpenErr != nil {
		return nil, s.OpenErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opens++
	return &StubHandle{sim: s}, nil
}

// Opens returns how many handles were handed out.
func (s *StubSimulator) Opens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opens
}

// Closes returns how many Close calls were made on handed out handles.
func (s *StubSimulator) Closes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closes
}

// StubHandle is the handle returned by StubSimulator.
type StubHandle struct {
	sim    *StubSimulator
	closed bool
}

// Closed reports whether Close has been called.
func (h *StubHandle) Closed() bool {
	h.sim.mu.Lock()
	defer h.sim.mu.Unlock()
	return h.closed
}

// Close records the release and returns the simulator's CloseErr.
func (h *StubHandle) Close() error {
	h.sim.mu.Lock()
	defer h.sim.mu.Unlock()
	h.closed = true
	h.sim.closes++
	return h.sim.CloseErr
}

// TrialCall records one Execute invocation.
type TrialCall struct {
	Trials       int
	Initial      core.Configuration
	HandleClosed bool
}

// ScriptedTrial is a core.Trial replaying canned outcomes per configuration.
// Example:
//
//	trial := NewScriptedTrial().
//		Returns(core.Zero, core.Outcome{Zeros: 6, Ones: 4, Agree: 10}).
//		Fails(core.One, errBoom)
type ScriptedTrial struct {
	mu       sync.Mutex
	outcomes map[core.Configuration]core.Outcome
	errs     map[core.Configuration]error
	calls    []TrialCall
}

// NewScriptedTrial creates an empty script. Unscripted configurations return
// an outcome with every trial counted as zero and agreeing.
func NewScriptedTrial() *ScriptedTrial {
	return &ScriptedTrial{
		outcomes: make(map[core.Configuration]core.Outcome),
		errs:     make(map[core.Configuration]error),
	}
}

// Returns scripts the outcome for initial.
func (s *ScriptedTrial) Returns(initial core.Configuration, out core.Outcome) *ScriptedTrial {
	s.outcomes[initial] = out
	return s
}

// Fails scripts an error for initial.
func (s *ScriptedTrial) Fails(initial core.Configuration, err error) *ScriptedTrial {
	s.errs[initial] = err
	return s
}

// Execute implements core.Trial.
func (s *ScriptedTrial) Execute(_ context.Context, h core.Handle, trials int, initial core.Configuration) (core.Outcome, error) {
	call := TrialCall{Trials: trials, Initial: initial}
	if sh, ok := h.(*StubHandle); ok {
		call.HandleClosed = sh.Closed()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, call)

	if err, ok := s.errs[initial]; ok {
		return core.Outcome{}, err
	}
	if out, ok := s.outcomes[initial]; ok {
		return out, nil
	}
	return core.Outcome{Zeros: trials, Agree: trials}, nil
}

// Calls returns a copy of the recorded invocations in order.
func (s *ScriptedTrial) Calls() []TrialCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]TrialCall, len(s.calls))
	copy(out, s.calls)
	return out
}
