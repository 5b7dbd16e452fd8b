package sim

import (
	"context"
	"sync"

	"github.com/san-kum/coulomb/internal/physics"
	"github.com/san-kum/coulomb/internal/preset"
)

// SweepResult summarizes one independent run of a preset at one time step.
type SweepResult struct {
	Preset      string
	Dt          float64
	Steps       int
	Active      int
	FinalEnergy float64
	EnergyDrift float64
}

// Sweep runs every (preset, dt) combination to completion, one goroutine
// per run. Each run owns a private Simulation, so the per-tick loop stays
// strictly serial within a run; only whole runs execute concurrently.
// Results are ordered by preset then dt. The first run error aborts the
// sweep.
func Sweep(ctx context.Context, catalog []preset.Preset, dts []float64, steps int) ([]SweepResult, error) {
	results := make([]SweepResult, len(catalog)*len(dts))
	errs := make([]error, len(results))

	var wg sync.WaitGroup
	for pi := range catalog {
		for di, dt := range dts {
			wg.Add(1)
			go func(pi, di int, dt float64) {
				defer wg.Done()
				idx := pi*len(dts) + di

				s, err := New(catalog, pi, WithDt(dt))
				if err != nil {
					errs[idx] = err
					return
				}

				initial := physics.Energy(s.Charges)
				if err := s.Run(ctx, steps, nil); err != nil {
					errs[idx] = err
					return
				}
				final := physics.Energy(s.Charges)

				drift := 0.0
				if initial != 0 {
					drift = (final - initial) / initial
					if drift < 0 {
						drift = -drift
					}
				}

				results[idx] = SweepResult{
					Preset:      catalog[pi].Name,
					Dt:          dt,
					Steps:       s.Steps,
					Active:      physics.ActiveCount(s.Charges),
					FinalEnergy: final,
					EnergyDrift: drift,
				}
			}(pi, di, dt)
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
