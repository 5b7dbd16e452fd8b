package preset

import (
	"math"
	"math/rand"

	"github.com/san-kum/coulomb/internal/charge"
)

// scatterSeed fixes the Random Scatter arrangement so repeated loads of
// the catalog see identical charges.
const scatterSeed = 42

var catalog = buildCatalog()

// Catalog returns the built-in presets. Callers must treat the result as
// read-only; simulations copy what they need.
func Catalog() []Preset {
	return catalog
}

func buildCatalog() []Preset {
	presets := []Preset{
		orbital(),
		dipole(),
		ring(),
		ellipse(),
		spiral(),
		randomScatter(),
		stableBinary(),
		stableCircular(),
	}
	for _, p := range presets {
		if err := p.Validate(); err != nil {
			panic(err)
		}
	}
	return presets
}

func newCharge(px, py, pz, vx, vy, vz, q, m float64) charge.Charge {
	return charge.Charge{
		Pos:    charge.Vec3{X: px, Y: py, Z: pz},
		Vel:    charge.Vec3{X: vx, Y: vy, Z: vz},
		Q:      q,
		M:      m,
		Active: true,
	}
}

// orbital: a heavy positive center with negative satellites on three
// orbital shells plus two out-of-plane positives.
func orbital() Preset {
	return Preset{
		Name: "Orbital",
		Charges: []charge.Charge{
			newCharge(5.0, 5.0, 5.0, 0, 0, 0, +8e-6, 5e-2),
			newCharge(7.0, 5.0, 5.0, 0, 40.0, 0, -2e-6, 1e-3),
			newCharge(3.0, 5.0, 5.0, 0, -40.0, 0, -2e-6, 1e-3),
			newCharge(7.5, 7.5, 5.0, -4.242, 4.242, 0, -3e-6, 3e-3),
			newCharge(2.5, 7.5, 5.0, -4.242, -4.242, 0, -3e-6, 3e-3),
			newCharge(2.5, 2.5, 5.0, 4.242, -4.242, 0, -3e-6, 3e-3),
			newCharge(7.5, 2.5, 5.0, 4.242, 4.242, 0, -3e-6, 3e-3),
			newCharge(7.0, 5.0, 7.0, 4.242, 0, -4.242, +4e-6, 4e-3),
			newCharge(3.0, 5.0, 3.0, -4.242, 0, 4.242, +4e-6, 4e-3),
		},
		Colors: []charge.Color{
			{1.0, 0.8, 0.0, 0.9}, // central: gold
			{0.0, 0.5, 1.0, 0.8}, // inner orbits: light blue
			{0.0, 0.5, 1.0, 0.8},
			{1.0, 0.0, 0.0, 0.8}, // middle orbit: red
			{0.0, 1.0, 0.0, 0.8}, // green
			{0.5, 0.0, 0.5, 0.8}, // purple
			{1.0, 0.5, 0.0, 0.8}, // orange
			{0.0, 1.0, 1.0, 0.8}, // outer orbit: cyan
			{0.0, 1.0, 1.0, 0.8},
		},
	}
}

func dipole() Preset {
	return Preset{
		Name: "Dipole",
		Charges: []charge.Charge{
			newCharge(4.0, 5.0, 5.0, 0, 0, 0, +5e-6, 1e-2),
			newCharge(6.0, 5.0, 5.0, 0, 0, 0, -5e-6, 1e-2),
		},
		Colors: []charge.Color{
			{1.0, 0.0, 0.0, 0.9},
			{0.0, 0.0, 1.0, 0.9},
		},
	}
}

// ring: eight negatives at rest on a circle of radius 3 around a heavy
// positive center. Collapses inward, then scatters.
func ring() Preset {
	p := Preset{
		Name:    "Ring",
		Charges: []charge.Charge{newCharge(5.0, 5.0, 5.0, 0, 0, 0, +8e-6, 5e-2)},
		Colors:  []charge.Color{{1.0, 0.8, 0.0, 0.9}},
	}
	for k := 0; k < 8; k++ {
		theta := 2 * math.Pi * float64(k) / 8
		p.Charges = append(p.Charges, newCharge(
			5.0+3*math.Cos(theta), 5.0+3*math.Sin(theta), 5.0,
			0, 0, 0, -1e-6, 1e-3))
		p.Colors = append(p.Colors, charge.Color{0.0, 1.0, 0.0, 0.8})
	}
	return p
}

// ellipse: twelve satellites on a 5x3 ellipse with tangential velocities.
func ellipse() Preset {
	p := Preset{
		Name:    "Ellipse",
		Charges: []charge.Charge{newCharge(5.0, 5.0, 5.0, 0, 0, 0, +8e-6, 5e-2)},
		Colors:  []charge.Color{{1.0, 0.8, 0.0, 0.9}},
	}
	for k := 0; k < 12; k++ {
		theta := 2 * math.Pi * float64(k) / 12
		p.Charges = append(p.Charges, newCharge(
			5.0+5*math.Cos(theta), 5.0+3*math.Sin(theta), 5.0,
			-3*math.Sin(theta), 2*math.Cos(theta), 0,
			-1e-6, 1e-3))
		p.Colors = append(p.Colors, charge.Color{0.2, 0.7, 1.0, 0.8})
	}
	return p
}

// spiral: fifteen satellites along an Archimedean spiral, theta from 0.5
// to 3π inclusive, each with unit tangential velocity.
func spiral() Preset {
	p := Preset{
		Name:    "Spiral",
		Charges: []charge.Charge{newCharge(5.0, 5.0, 5.0, 0, 0, 0, +8e-6, 5e-2)},
		Colors:  []charge.Color{{1.0, 0.8, 0.0, 0.9}},
	}
	const n = 15
	for k := 0; k < n; k++ {
		theta := 0.5 + (3*math.Pi-0.5)*float64(k)/float64(n-1)
		p.Charges = append(p.Charges, newCharge(
			5.0+theta*math.Cos(theta), 5.0+theta*math.Sin(theta), 5.0,
			-math.Sin(theta), math.Cos(theta), 0,
			-1e-6, 1e-3))
		p.Colors = append(p.Colors, charge.Color{0.9, 0.3, 0.7, 0.8})
	}
	return p
}

// randomScatter: twenty charges of random sign scattered in a 4-unit cube
// around the center with small random velocities. Seeded, so the
// arrangement is the same on every load.
func randomScatter() Preset {
	rng := rand.New(rand.NewSource(scatterSeed))
	p := Preset{Name: "Random Scatter"}
	for k := 0; k < 20; k++ {
		px := 5.0 + 4*(rng.Float64()-0.5)
		py := 5.0 + 4*(rng.Float64()-0.5)
		pz := 5.0 + 4*(rng.Float64()-0.5)
		vx := 2 * (rng.Float64() - 0.5)
		vy := 2 * (rng.Float64() - 0.5)
		vz := 2 * (rng.Float64() - 0.5)
		q := +1e-6
		if rng.Float64() > 0.5 {
			q = -1e-6
		}
		p.Charges = append(p.Charges, newCharge(px, py, pz, vx, vy, vz, q, 1e-3))
	}
	tint := charge.Color{rng.Float32(), rng.Float32(), rng.Float32(), 0.8}
	for range p.Charges {
		p.Colors = append(p.Colors, tint)
	}
	return p
}

func stableBinary() Preset {
	return Preset{
		Name: "Stable Binary",
		Charges: []charge.Charge{
			newCharge(4.5, 5.0, 5.0, 0, 5.0, 0, +4e-6, 1e-2),
			newCharge(5.5, 5.0, 5.0, 0, -5.0, 0, -4e-6, 1e-2),
		},
		Colors: []charge.Color{
			{1.0, 0.3, 0.3, 1.0},
			{0.3, 0.3, 1.0, 1.0},
		},
	}
}

// stableCircular: four satellites on a radius-3 circle with velocities
// tuned for near-circular orbits around the center charge.
func stableCircular() Preset {
	p := Preset{
		Name:    "Stable Circular",
		Charges: []charge.Charge{newCharge(5.0, 5.0, 5.0, 0, 0, 0, +8e-6, 5e-2)},
		Colors:  []charge.Color{{1.0, 0.8, 0.0, 0.9}},
	}
	for k := 0; k < 4; k++ {
		theta := 2 * math.Pi * float64(k) / 4
		p.Charges = append(p.Charges, newCharge(
			5.0+3*math.Cos(theta), 5.0+3*math.Sin(theta), 5.0,
			-3*math.Sin(theta)*2, 3*math.Cos(theta)*2, 0,
			-1e-6, 1e-3))
		p.Colors = append(p.Colors, charge.Color{0.0, 1.0, 1.0, 0.8})
	}
	return p
}
