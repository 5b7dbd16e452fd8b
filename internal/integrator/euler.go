// Package integrator advances charge state by one time step.
package integrator

import "github.com/san-kum/coulomb/internal/charge"

// SymplecticEuler applies semi-implicit Euler integration: velocity is
// updated from the force first, then position from the already-updated
// velocity. For oscillatory Coulomb systems this keeps orbits bounded
// where explicit Euler spirals outward.
type SymplecticEuler struct{}

func NewSymplecticEuler() *SymplecticEuler {
	return &SymplecticEuler{}
}

// Step mutates charges in place. forces must be the output of the force
// engine for this exact charge array, same length and order.
//
// A particle whose updated position leaves bounds on any axis is flagged
// inactive. The position is left exactly where the unclamped update put
// it: a hard cutoff, never a clamp or reflection. Inactive particles are
// not touched at all.
func (e *SymplecticEuler) Step(charges []charge.Charge, forces []charge.Vec3, dt float64, bounds charge.Bounds) {
	for i := range charges {
		c := &charges[i]
		if !c.Active {
			continue
		}
		c.Vel = c.Vel.Add(forces[i].Scale(dt / c.M))
		c.Pos = c.Pos.Add(c.Vel.Scale(dt))
		if !bounds.Contains(c.Pos) {
			c.Active = false
		}
	}
}
