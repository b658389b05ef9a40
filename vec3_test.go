package orrery

import (
	"math"
	"testing"
)

func TestVec3CrossOrthogonal(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -4, Y: 0, Z: 5}
	c := a.Cross(b)
	if math.Abs(c.Dot(a)) > 1e-9 || math.Abs(c.Dot(b)) > 1e-9 {
		t.Errorf("cross product %+v not orthogonal to its operands", c)
	}

	// Right-handed: X cross Y = Z.
	z := Vec3{X: 1}.Cross(Vec3{Y: 1})
	if z != (Vec3{Z: 1}) {
		t.Errorf("X cross Y = %+v, want +Z", z)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{X: 3, Y: 4, Z: 12}.Normalize()
	if math.Abs(v.Length()-1) > 1e-12 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Normalize of zero vector = %+v, want zero", got)
	}
}

func TestSphericalToCartesian(t *testing.T) {
	tests := []struct {
		name        string
		r, th, phi  float64
		want        Vec3
	}{
		{"north pole", 5, 0, 0, Vec3{Y: 5}},
		{"equator at phi zero", 5, math.Pi / 2, 0, Vec3{X: 5}},
		{"equator at phi quarter", 5, math.Pi / 2, math.Pi / 2, Vec3{Z: 5}},
		{"south pole", 5, math.Pi, 0.7, Vec3{Y: -5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphericalToCartesian(tt.r, tt.th, tt.phi)
			if math.Abs(got.X-tt.want.X) > 1e-9 ||
				math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}
