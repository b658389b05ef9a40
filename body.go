package orrery

import (
	"math"
	"math/rand/v2"
)

// BodyConfig describes one orbiting planet. The table is trusted static
// data; NewScene validates it once at construction and panics on
// programming errors (empty or duplicate names, non-positive radii).
type BodyConfig struct {
	// Name identifies the body and doubles as its display label.
	// Must be unique within a scene.
	Name string
	// OrbitalRadius is the body's distance from the origin in world units.
	OrbitalRadius float64
	// Size is the rendered sphere radius in world units.
	Size float64
	// Speed is the angular velocity in radians per tick. Negative values
	// orbit clockwise when viewed from +Y.
	Speed float64
	// Color is the body's flat shading tint.
	Color Color
	// Content is the static text shown in the info panel on selection.
	Content string
}

// Body is a planet on a circular, planar orbit. The orbital angle is the
// single source of truth for its location: Position derives Cartesian
// coordinates from the angle every call and nothing ever stores them back,
// so no positional error can accumulate.
type Body struct {
	Name    string
	Content string
	Color   Color

	OrbitalRadius float64
	Size          float64
	Speed         float64

	// Angle is the current orbital phase in radians. It grows without an
	// explicit modulo; only sine and cosine consume it, which wrap for free.
	Angle float64

	// Spin is the cosmetic self-rotation phase, advanced by a constant step
	// each tick. Independent of the orbit.
	Spin float64
}

// spinStep is the constant per-tick self-rotation applied to every body.
const spinStep = 0.01

// newBody builds a Body from its descriptor with a pseudo-random initial
// phase in [0, 2pi) so the system never starts in a straight line.
func newBody(cfg BodyConfig, rng *rand.Rand) *Body {
	return &Body{
		Name:          cfg.Name,
		Content:       cfg.Content,
		Color:         cfg.Color,
		OrbitalRadius: cfg.OrbitalRadius,
		Size:          cfg.Size,
		Speed:         cfg.Speed,
		Angle:         rng.Float64() * 2 * math.Pi,
	}
}

// Advance moves the body one tick along its orbit and spins it.
func (b *Body) Advance() {
	b.Angle += b.Speed
	b.Spin += spinStep
}

// Position returns the body's world position derived from its angle:
// (cos(angle)*R, 0, sin(angle)*R). Orbits are planar (y = 0).
func (b *Body) Position() Vec3 {
	sin, cos := math.Sincos(b.Angle)
	return Vec3{
		X: cos * b.OrbitalRadius,
		Y: 0,
		Z: sin * b.OrbitalRadius,
	}
}
