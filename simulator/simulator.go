package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/hupe1980/bellrunner/core"
	"github.com/hupe1980/bellrunner/logging"
)

// ErrBusy is returned by Open while a previously opened handle is still held.
// The simulator is not reentrant.
var ErrBusy = errors.New("simulator already in use")

// Options configures a Simulator.
type Options struct {
	// Seed seeds the random stream of every handle. Zero selects a time based seed.
	Seed int64
	// Noise is the probability in [0, 1] that the partner measurement of a
	// trial disagrees with the first one.
	Noise float64
	// Logger receives resource lifecycle entries.
	Logger logging.Logger
}

// Simulator is an in-process simulation resource. At most one handle can be
// open at a time.
type Simulator struct {
	seed   int64
	noise  float64
	logger logging.Logger

	mu    sync.Mutex
	inUse bool
}

// New returns a Simulator with optional overrides.
func New(optFns ...func(o *Options)) *Simulator {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Simulator{
		seed:   opts.Seed,
		noise:  opts.Noise,
		logger: opts.Logger,
	}
}

// Open acquires the simulator. The returned handle must be closed to make the
// simulator available again.
func (s *Simulator) Open(ctx context.Context) (core.Handle, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrResourceUnavailable, err)
	}

	if s.noise < 0 || s.noise > 1 {
		return nil, fmt.Errorf("%w: noise %v outside [0, 1]", core.ErrResourceUnavailable, s.noise)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inUse {
		return nil, fmt.Errorf("%w: %w", core.ErrResourceUnavailable, ErrBusy)
	}

	seed := s.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s.inUse = true
	s.logger.Debug("Simulator opened", "seed", seed)

	return &Handle{sim: s, rng: rand.New(rand.NewSource(seed)), noise: s.noise}, nil
}

func (s *Simulator) release() {
	s.mu.Lock()
	s.inUse = false
	s.mu.Unlock()
	s.logger.Debug("Simulator released")
}

// Handle is an open simulator session. It is not safe for concurrent use.
type Handle struct {
	sim    *Simulator
	rng    *rand.Rand
	noise  float64
	closed bool
}

// Close releases the simulator. Closing twice returns core.ErrHandleClosed.
func (h *Handle) Close() error {
	if h.closed {
		return core.ErrHandleClosed
	}
	h.closed = true
	h.sim.release()
	return nil
}

// measurePair returns the two measurement results of one prepared pair.
func (h *Handle) measurePair() (core.Configuration, core.Configuration) {
	first := core.Zero
	if h.rng.Intn(2) == 1 {
		first = core.One
	}

	second := first
	if h.noise > 0 && h.rng.Float64() < h.noise {
		second = 1 - first
	}

	return first, second
}
