package sim

import (
	"context"
	"fmt"
)

// Run advances the simulation a fixed number of ticks, checking ctx
// between ticks; an individual tick always runs to completion. callback,
// if non-nil, is invoked after every tick with the tick index and may
// return false to stop early. The Running flag is set for the duration.
func (s *Simulation) Run(ctx context.Context, steps int, callback func(step int) bool) error {
	if steps <= 0 {
		return fmt.Errorf("sim: steps must be positive, got %d", steps)
	}

	s.Running = true
	defer func() { s.Running = false }()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.Advance()

		if callback != nil && !callback(i) {
			return nil
		}
	}

	return nil
}
