package physics

import "github.com/san-kum/coulomb/internal/charge"

const (
	// CoulombConstant is k_e in SI-like units.
	CoulombConstant = 8.988e9

	// Softening is added to every pair distance so coincident particles
	// never divide by zero. Small enough to be invisible at any real
	// separation.
	Softening = 1e-14
)

// Forces computes the net Coulomb force on every particle. The result has
// the same length and order as charges. out is reused as the output buffer
// when its length matches; pass nil to allocate.
//
// The sum is a plain O(n²) pairwise loop with no spatial partitioning;
// the simulation targets a few tens of particles. Each unordered pair is
// visited once and the reaction force accumulated with flipped sign, so
// Newton's third law holds exactly. Inactive particles neither exert nor
// receive force.
func Forces(charges []charge.Charge, out []charge.Vec3) []charge.Vec3 {
	if len(out) != len(charges) {
		out = make([]charge.Vec3, len(charges))
	} else {
		for i := range out {
			out[i] = charge.Vec3{}
		}
	}

	for i := range charges {
		if !charges[i].Active {
			continue
		}
		for j := i + 1; j < len(charges); j++ {
			if !charges[j].Active {
				continue
			}
			r := charges[j].Pos.Sub(charges[i].Pos)
			d := r.Length() + Softening
			s := CoulombConstant * charges[i].Q * charges[j].Q / (d * d * d)
			f := r.Scale(s)
			out[i] = out[i].Add(f)
			out[j] = out[j].Sub(f)
		}
	}

	return out
}
