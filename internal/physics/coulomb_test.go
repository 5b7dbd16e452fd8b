package physics

import (
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/coulomb/internal/charge"
)

func newTestCharge(x, y, z, q, m float64) charge.Charge {
	return charge.Charge{
		Pos:    charge.Vec3{X: x, Y: y, Z: z},
		Q:      q,
		M:      m,
		Active: true,
	}
}

func TestForcesNewtonThirdLaw(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(1.2, -0.5, 3.0, +2e-6, 1e-3),
		newTestCharge(-2.0, 4.1, 0.7, -3e-6, 2e-3),
	}

	f := Forces(charges, nil)

	g.Expect(f).To(HaveLen(2))
	g.Expect(f[0].X).To(BeNumerically("~", -f[1].X, 1e-15))
	g.Expect(f[0].Y).To(BeNumerically("~", -f[1].Y, 1e-15))
	g.Expect(f[0].Z).To(BeNumerically("~", -f[1].Z, 1e-15))
}

func TestForcesSymmetricPairZeroNetForce(t *testing.T) {
	g := NewWithT(t)

	// Identical unit-sign charges mirrored about the y axis.
	charges := []charge.Charge{
		newTestCharge(-1, 0, 0, +1e-6, 1e-3),
		newTestCharge(+1, 0, 0, +1e-6, 1e-3),
	}

	f := Forces(charges, nil)

	g.Expect(f[0].Length()).To(BeNumerically("~", f[1].Length(), 1e-15))
	g.Expect(f[0].X).To(BeNumerically("~", -f[1].X, 1e-15))
	g.Expect(f[0].Add(f[1]).Length()).To(BeNumerically("~", 0, 1e-15))
	// Force along the separating axis only.
	g.Expect(f[0].Y).To(BeZero())
	g.Expect(f[0].Z).To(BeZero())
}

func TestForcesSingleParticle(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{newTestCharge(5, 5, 5, +8e-6, 5e-2)}
	f := Forces(charges, nil)

	g.Expect(f[0]).To(Equal(charge.Vec3{}))
}

func TestForcesInactiveExcluded(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(0, 0, 0, +1e-6, 1e-3),
		newTestCharge(1, 0, 0, -1e-6, 1e-3),
		newTestCharge(2, 0, 0, -1e-6, 1e-3),
	}
	charges[1].Active = false

	f := Forces(charges, nil)

	// The inactive middle particle neither exerts nor receives force.
	g.Expect(f[1]).To(Equal(charge.Vec3{}))

	pair := Forces([]charge.Charge{charges[0], charges[2]}, nil)
	g.Expect(f[0]).To(Equal(pair[0]))
	g.Expect(f[2]).To(Equal(pair[1]))
}

func TestForcesDipoleScenario(t *testing.T) {
	g := NewWithT(t)

	// Reference scenario: +-5 uC, 10 g each, 2 units apart on the x axis.
	charges := []charge.Charge{
		newTestCharge(4, 5, 5, +5e-6, 1e-2),
		newTestCharge(6, 5, 5, -5e-6, 1e-2),
	}

	f := Forces(charges, nil)

	// s = k_e*q1*q2/d^3 = -0.0280875; F_0 = s * (2, 0, 0).
	g.Expect(f[0].X).To(BeNumerically("~", -0.0561750, 1e-6))
	g.Expect(f[0].Y).To(BeZero())
	g.Expect(f[0].Z).To(BeZero())
	g.Expect(f[1].X).To(BeNumerically("~", +0.0561750, 1e-6))
}

func TestForcesCoincidentPositionsFinite(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(1, 1, 1, +1e-6, 1e-3),
		newTestCharge(1, 1, 1, +1e-6, 1e-3),
	}

	f := Forces(charges, nil)

	// Softening keeps the math finite; coincident charges produce a zero
	// direction vector, not NaN.
	g.Expect(f[0].IsValid()).To(BeTrue())
	g.Expect(f[1].IsValid()).To(BeTrue())
}

func TestForcesReusesBuffer(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(0, 0, 0, +1e-6, 1e-3),
		newTestCharge(1, 0, 0, +1e-6, 1e-3),
	}

	buf := make([]charge.Vec3, 2)
	buf[0] = charge.Vec3{X: 99}

	f := Forces(charges, buf)

	g.Expect(&f[0]).To(BeIdenticalTo(&buf[0]))
	// Stale contents are cleared, not accumulated into: |f| is far below
	// the bogus seed value.
	g.Expect(f[0].Length()).To(BeNumerically("<", 1))
}

func TestEnergyConservedQuantityShape(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(4, 5, 5, +5e-6, 1e-2),
		newTestCharge(6, 5, 5, -5e-6, 1e-2),
	}

	// At rest, total energy is pure potential: -k_e*q1*q2/d = +0.112350.
	g.Expect(Energy(charges)).To(BeNumerically("~", 0.112350, 1e-6))

	charges[0].Vel = charge.Vec3{X: 3}
	g.Expect(Energy(charges)).To(BeNumerically("~", 0.112350+0.5*1e-2*9, 1e-6))
}

func TestMomentumAndActiveCount(t *testing.T) {
	g := NewWithT(t)

	charges := []charge.Charge{
		newTestCharge(0, 0, 0, +1e-6, 2e-3),
		newTestCharge(1, 0, 0, -1e-6, 1e-3),
	}
	charges[0].Vel = charge.Vec3{X: 1, Y: -2}
	charges[1].Vel = charge.Vec3{X: 4}

	p := Momentum(charges)
	g.Expect(p.X).To(BeNumerically("~", 2e-3*1+1e-3*4, 1e-15))
	g.Expect(p.Y).To(BeNumerically("~", -4e-3, 1e-15))

	g.Expect(ActiveCount(charges)).To(Equal(2))
	charges[1].Active = false
	g.Expect(ActiveCount(charges)).To(Equal(1))
	g.Expect(Momentum(charges).X).To(BeNumerically("~", 2e-3, 1e-15))
}

func BenchmarkForces(b *testing.B) {
	charges := make([]charge.Charge, 24)
	for i := range charges {
		q := +1e-6
		if i%2 == 0 {
			q = -1e-6
		}
		charges[i] = newTestCharge(float64(i%5), float64(i%7), float64(i%3), q, 1e-3)
	}
	buf := make([]charge.Vec3, len(charges))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = Forces(charges, buf)
	}
}
