package orrery

import (
	"math"
	"math/rand/v2"
	"testing"
)

func TestBodyPositionDerivedFromAngle(t *testing.T) {
	tests := []struct {
		name   string
		angle  float64
		radius float64
		want   Vec3
	}{
		{"zero", 0, 150, Vec3{X: 150}},
		{"quarter", math.Pi / 2, 150, Vec3{Z: 150}},
		{"half", math.Pi, 200, Vec3{X: -200}},
		{"full", 2 * math.Pi, 100, Vec3{X: 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{OrbitalRadius: tt.radius, Angle: tt.angle}
			got := b.Position()
			if math.Abs(got.X-tt.want.X) > 1e-9 ||
				math.Abs(got.Y-tt.want.Y) > 1e-9 ||
				math.Abs(got.Z-tt.want.Z) > 1e-9 {
				t.Errorf("Position() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBodyAdvanceAccumulatesAngle(t *testing.T) {
	b := &Body{OrbitalRadius: 150, Speed: 0.01}
	for i := 0; i < 100; i++ {
		b.Advance()
	}
	if math.Abs(b.Angle-1.0) > 1e-9 {
		t.Errorf("angle after 100 ticks = %v, want 1.0", b.Angle)
	}

	want := Vec3{X: math.Cos(1.0) * 150, Z: math.Sin(1.0) * 150}
	got := b.Position()
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("Position() = %+v, want %+v", got, want)
	}
}

func TestBodyOrbitStaysPlanar(t *testing.T) {
	b := &Body{OrbitalRadius: 300, Speed: 0.37}
	for i := 0; i < 10000; i++ {
		b.Advance()
		p := b.Position()
		if p.Y != 0 {
			t.Fatalf("tick %d: Y = %v, want 0", i, p.Y)
		}
	}
}

func TestBodyRadiusNeverDrifts(t *testing.T) {
	// The angle is the only state; the distance from the origin must stay
	// exact no matter how long the orbit runs.
	b := &Body{OrbitalRadius: 215, Speed: 0.0093}
	for i := 0; i < 50000; i++ {
		b.Advance()
	}
	got := b.Position().Length()
	if math.Abs(got-215) > 1e-9 {
		t.Errorf("orbital distance after 50000 ticks = %v, want 215", got)
	}
}

func TestNewBodyRandomPhase(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	cfg := BodyConfig{Name: "x", OrbitalRadius: 100, Size: 5}

	a := newBody(cfg, rng)
	b := newBody(cfg, rng)
	if a.Angle < 0 || a.Angle >= 2*math.Pi {
		t.Errorf("initial angle %v outside [0, 2pi)", a.Angle)
	}
	if a.Angle == b.Angle {
		t.Error("consecutive bodies share the same initial phase")
	}

	rng2 := rand.New(rand.NewPCG(1, 2))
	if c := newBody(cfg, rng2); c.Angle != a.Angle {
		t.Errorf("same seed gave different phase: %v vs %v", c.Angle, a.Angle)
	}
}
