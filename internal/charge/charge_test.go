package charge

import (
	"math"
	"testing"
)

func TestBoundsContains(t *testing.T) {
	b := Bounds{Min: -10, Max: 10}

	tests := []struct {
		name string
		p    Vec3
		want bool
	}{
		{"origin", Vec3{}, true},
		{"on max face", Vec3{X: 10}, true},
		{"on min face", Vec3{Y: -10}, true},
		{"outside x", Vec3{X: 10.001}, false},
		{"outside y", Vec3{Y: -11}, false},
		{"outside z", Vec3{Z: 200}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	if a.Add(b) != (Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Error("Add wrong")
	}
	if a.Sub(b) != (Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Error("Sub wrong")
	}
	if a.Scale(2) != (Vec3{X: 2, Y: 4, Z: 6}) {
		t.Error("Scale wrong")
	}
	if math.Abs(a.Dot(b)-6) > 1e-15 {
		t.Errorf("Dot = %g, want 6", a.Dot(b))
	}
	if math.Abs((Vec3{X: 3, Y: 4}).Length()-5) > 1e-15 {
		t.Error("Length wrong")
	}
}

func TestVec3Normalize(t *testing.T) {
	n := (Vec3{X: 0, Y: 0, Z: -7}).Normalize()
	if n != (Vec3{Z: -1}) {
		t.Errorf("Normalize = %+v", n)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3IsValid(t *testing.T) {
	if !(Vec3{X: 1e300}).IsValid() {
		t.Error("large finite vector reported invalid")
	}
	if (Vec3{X: math.NaN()}).IsValid() {
		t.Error("NaN vector reported valid")
	}
	if (Vec3{Z: math.Inf(1)}).IsValid() {
		t.Error("Inf vector reported valid")
	}
}

func TestCloneIndependence(t *testing.T) {
	src := []Charge{{Pos: Vec3{X: 1}, Q: 1e-6, M: 1e-3, Active: true}}
	dst := CloneCharges(src)
	dst[0].Pos.X = 99
	if src[0].Pos.X != 1 {
		t.Error("CloneCharges shares storage")
	}

	colors := []Color{{1, 0, 0, 1}}
	cc := CloneColors(colors)
	cc[0][0] = 0
	if colors[0][0] != 1 {
		t.Error("CloneColors shares storage")
	}
}
