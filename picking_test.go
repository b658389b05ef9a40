package orrery

import (
	"math"
	"testing"
)

func TestRayIntersectSphere(t *testing.T) {
	tests := []struct {
		name   string
		ray    Ray
		center Vec3
		radius float64
		wantT  float64
		wantOK bool
	}{
		{
			name:   "head on",
			ray:    Ray{Origin: Vec3{Z: -100}, Dir: Vec3{Z: 1}},
			center: Vec3{}, radius: 10,
			wantT: 90, wantOK: true,
		},
		{
			name:   "grazing inside edge",
			ray:    Ray{Origin: Vec3{X: 5, Z: -100}, Dir: Vec3{Z: 1}},
			center: Vec3{}, radius: 10,
			wantT: 100 - math.Sqrt(75), wantOK: true,
		},
		{
			name:   "miss",
			ray:    Ray{Origin: Vec3{X: 50, Z: -100}, Dir: Vec3{Z: 1}},
			center: Vec3{}, radius: 10,
			wantOK: false,
		},
		{
			name:   "sphere behind origin",
			ray:    Ray{Origin: Vec3{Z: 100}, Dir: Vec3{Z: 1}},
			center: Vec3{}, radius: 10,
			wantOK: false,
		},
		{
			name:   "origin inside sphere",
			ray:    Ray{Origin: Vec3{}, Dir: Vec3{Z: 1}},
			center: Vec3{}, radius: 10,
			wantT: 10, wantOK: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.ray.intersectSphere(tt.center, tt.radius)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("t = %v, want %v", got, tt.wantT)
			}
		})
	}
}

func TestPickBodyNearestWins(t *testing.T) {
	near := &Body{Name: "near", OrbitalRadius: 100, Size: 10}  // at (100, 0, 0)
	far := &Body{Name: "far", OrbitalRadius: 300, Size: 10}    // at (300, 0, 0)
	off := &Body{Name: "off", OrbitalRadius: 100, Size: 10, Angle: math.Pi / 2}

	ray := Ray{Origin: Vec3{X: -500}, Dir: Vec3{X: 1}}
	got := pickBody([]*Body{far, off, near}, ray)
	if got == nil || got.Name != "near" {
		t.Fatalf("picked %v, want near", got)
	}
}

func TestPickBodyEmptySpace(t *testing.T) {
	bodies := []*Body{
		{Name: "a", OrbitalRadius: 100, Size: 5},
		{Name: "b", OrbitalRadius: 200, Size: 5, Angle: math.Pi},
	}
	ray := Ray{Origin: Vec3{Y: 500}, Dir: Vec3{Y: 1}}
	if got := pickBody(bodies, ray); got != nil {
		t.Errorf("picked %q from empty space, want nil", got.Name)
	}
}

func TestPickBodyThroughCamera(t *testing.T) {
	c := solarTestCamera()
	b := &Body{Name: "target", OrbitalRadius: 215, Size: 11, Angle: 1.2}

	sx, sy, _, ok := c.Project(b.Position())
	if !ok {
		t.Fatal("body not projectable")
	}
	got := pickBody([]*Body{b}, c.ScreenRay(sx, sy))
	if got != b {
		t.Fatal("ray through the body's own pixel did not pick it")
	}

	// A ray far from the body misses.
	if got := pickBody([]*Body{b}, c.ScreenRay(0, 0)); got == b {
		t.Error("ray through the viewport corner picked the body")
	}
}
