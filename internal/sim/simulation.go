// Package sim owns mutable simulation state and the per-tick update loop.
//
// A [Simulation] is driven externally: something with a timer calls
// [Simulation.Advance] once per tick, strictly serialized. The package
// spawns no goroutines and holds no locks; concurrent Advance or Reset
// calls on the same Simulation are caller errors.
package sim

import (
	"fmt"

	"github.com/san-kum/coulomb/internal/charge"
	"github.com/san-kum/coulomb/internal/integrator"
	"github.com/san-kum/coulomb/internal/physics"
	"github.com/san-kum/coulomb/internal/preset"
)

// DefaultDt matches the reference time step.
const DefaultDt = 0.005

// Simulation holds the charge array, its rendering colors, and the
// recorded trajectory of every particle since the last reset. Charges and
// Trajectories always have the same length, and index i in one refers to
// the same particle as index i in the other.
type Simulation struct {
	Charges      []charge.Charge
	Colors       []charge.Color
	Trajectories [][]charge.Vec3
	Dt           float64
	Bounds       charge.Bounds
	Running      bool
	Steps        int

	catalog []preset.Preset
	current int
	integ   *integrator.SymplecticEuler
	forces  []charge.Vec3
}

type Option func(*Simulation)

func WithDt(dt float64) Option {
	return func(s *Simulation) { s.Dt = dt }
}

func WithBounds(b charge.Bounds) Option {
	return func(s *Simulation) { s.Bounds = b }
}

// New creates a paused simulation loaded from catalog[presetIndex].
// The catalog is retained for later resets but never mutated.
func New(catalog []preset.Preset, presetIndex int, opts ...Option) (*Simulation, error) {
	if len(catalog) == 0 {
		return nil, fmt.Errorf("sim: empty preset catalog")
	}
	s := &Simulation{
		Dt:      DefaultDt,
		Bounds:  charge.DefaultBounds,
		catalog: catalog,
		integ:   integrator.NewSymplecticEuler(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.Dt <= 0 {
		return nil, fmt.Errorf("sim: dt must be positive, got %g", s.Dt)
	}
	if err := s.Reset(presetIndex); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset replaces all state with a fresh deep copy of catalog[presetIndex]
// and clears every trajectory. The particle count may change when
// switching presets; trajectories are re-derived from the new count.
// Must not be called while a tick is in flight.
func (s *Simulation) Reset(presetIndex int) error {
	if presetIndex < 0 || presetIndex >= len(s.catalog) {
		return fmt.Errorf("sim: preset index %d out of range [0, %d)", presetIndex, len(s.catalog))
	}
	p := s.catalog[presetIndex]
	if err := p.Validate(); err != nil {
		return err
	}

	s.current = presetIndex
	s.Charges = charge.CloneCharges(p.Charges)
	s.Colors = charge.CloneColors(p.Colors)
	s.Trajectories = make([][]charge.Vec3, len(s.Charges))
	for i := range s.Trajectories {
		s.Trajectories[i] = make([]charge.Vec3, 0, 256)
	}
	s.forces = make([]charge.Vec3, len(s.Charges))
	s.Running = false
	s.Steps = 0
	return nil
}

// Advance runs one tick: force computation, integration, then trajectory
// recording. It returns the force slice for this tick; the slice is reused
// on the next call. Positions are recorded for every particle, inactive
// ones included, so all trajectories stay the same length.
func (s *Simulation) Advance() []charge.Vec3 {
	s.forces = physics.Forces(s.Charges, s.forces)
	s.integ.Step(s.Charges, s.forces, s.Dt, s.Bounds)
	for i := range s.Charges {
		s.Trajectories[i] = append(s.Trajectories[i], s.Charges[i].Pos)
	}
	s.Steps++
	return s.forces
}

// Preset returns the currently loaded preset.
func (s *Simulation) Preset() preset.Preset { return s.catalog[s.current] }

// PresetIndex returns the index of the currently loaded preset.
func (s *Simulation) PresetIndex() int { return s.current }

// PresetCount returns the catalog size.
func (s *Simulation) PresetCount() int { return len(s.catalog) }

// Time returns the simulated time elapsed since the last reset.
func (s *Simulation) Time() float64 { return float64(s.Steps) * s.Dt }
