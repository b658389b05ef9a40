package orrery

import "math"

// Ray is a half-line used for pointer picking. Dir is unit length.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// intersectSphere returns the smallest positive distance along the ray at
// which it enters the sphere, or ok=false when the ray misses or the sphere
// lies entirely behind the origin.
func (r Ray) intersectSphere(center Vec3, radius float64) (t float64, ok bool) {
	oc := r.Origin.Sub(center)
	// Dir is unit length, so a = 1 in the quadratic.
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*c
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t = (-b - sq) / 2
	if t < 0 {
		// Ray starts inside the sphere; take the exit point.
		t = (-b + sq) / 2
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// pickBody casts the ray against every body's sphere and returns the nearest
// hit. Rings and the sun are not pickable, so they never reach this test.
// Returns nil when the ray hits empty space.
func pickBody(bodies []*Body, ray Ray) *Body {
	var nearest *Body
	nearestT := math.Inf(1)
	for _, b := range bodies {
		t, ok := ray.intersectSphere(b.Position(), b.Size)
		if ok && t < nearestT {
			nearest = b
			nearestT = t
		}
	}
	return nearest
}
