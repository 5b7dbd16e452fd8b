package charge

// Charge is the full state of one point charge. Particles are stored in a
// contiguous slice with stable indices: index i refers to the same logical
// particle for the lifetime of a run, deactivated particles stay in place.
type Charge struct {
	Pos    Vec3
	Vel    Vec3
	Q      float64 // signed charge, coulombs
	M      float64 // mass, always > 0
	Active bool
}

// Color is an RGBA tuple carried alongside each charge for rendering.
// The physics core never reads it.
type Color [4]float32

// Bounds is the axis-aligned cube [Min, Max]^3. A particle whose position
// leaves the cube on any axis is deactivated for the rest of the run.
type Bounds struct {
	Min, Max float64
}

// DefaultBounds is wide enough that deactivation is an escape hatch for
// runaway particles, not a normal event.
var DefaultBounds = Bounds{Min: -100000, Max: 100000}

func (b Bounds) Contains(p Vec3) bool {
	return p.X >= b.Min && p.X <= b.Max &&
		p.Y >= b.Min && p.Y <= b.Max &&
		p.Z >= b.Min && p.Z <= b.Max
}

// CloneCharges returns an independent copy of cs.
func CloneCharges(cs []Charge) []Charge {
	out := make([]Charge, len(cs))
	copy(out, cs)
	return out
}

// CloneColors returns an independent copy of cs.
func CloneColors(cs []Color) []Color {
	out := make([]Color, len(cs))
	copy(out, cs)
	return out
}
