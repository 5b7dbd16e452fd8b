package physics

import "github.com/san-kum/coulomb/internal/charge"

// Energy returns the total mechanical energy of the active particles:
// kinetic plus electrostatic potential, using the same softened distance
// as the force loop. Display-only; the integrator applies no conservation
// correction.
func Energy(charges []charge.Charge) float64 {
	ke := 0.0
	pe := 0.0
	for i := range charges {
		if !charges[i].Active {
			continue
		}
		v := charges[i].Vel
		ke += 0.5 * charges[i].M * v.Dot(v)

		for j := i + 1; j < len(charges); j++ {
			if !charges[j].Active {
				continue
			}
			d := charges[j].Pos.Sub(charges[i].Pos).Length() + Softening
			pe -= CoulombConstant * charges[i].Q * charges[j].Q / d
		}
	}
	return ke + pe
}

// Momentum returns the total linear momentum of the active particles.
func Momentum(charges []charge.Charge) charge.Vec3 {
	var p charge.Vec3
	for i := range charges {
		if !charges[i].Active {
			continue
		}
		p = p.Add(charges[i].Vel.Scale(charges[i].M))
	}
	return p
}

// ActiveCount returns the number of particles still inside the bounds.
func ActiveCount(charges []charge.Charge) int {
	n := 0
	for i := range charges {
		if charges[i].Active {
			n++
		}
	}
	return n
}
