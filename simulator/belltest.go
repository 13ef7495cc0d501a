package simulator

import (
	"context"
	"fmt"

	"github.com/hupe1980/bellrunner/core"
)

// cancelCheckInterval is how many trials run between context checks.
const cancelCheckInterval = 1024

// BellTest is the Bell trial function. Each trial prepares a pair from the
// initial configuration, measures both members and records the first result
// and whether the two results agree.
type BellTest struct{}

// Execute runs trials Bell trials on h, which must be an open *Handle.
func (BellTest) Execute(ctx context.Context, h core.Handle, trials int, initial core.Configuration) (core.Outcome, error) {
	if trials <= 0 {
		return core.Outcome{}, fmt.Errorf("%w: got %d", core.ErrInvalidTrialCount, trials)
	}

	if !initial.Valid() {
		return core.Outcome{}, fmt.Errorf("unknown initial configuration %s", initial)
	}

	sh, ok := h.(*Handle)
	if !ok {
		return core.Outcome{}, fmt.Errorf("unsupported handle type %T", h)
	}

	if sh.closed {
		return core.Outcome{}, core.ErrHandleClosed
	}

	var out core.Outcome

	for i := 0; i < trials; i++ {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return core.Outcome{}, err
			}
		}

		first, second := sh.measurePair()
		if first == second {
			out.Agree++
		}

		if first == core.One {
			out.Ones++
		} else {
			out.Zeros++
		}
	}

	return out, nil
}
