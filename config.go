package orrery

import "fmt"

// Camera constants shared by both screens.
const (
	defaultFOV  = 60.0 // vertical field of view, degrees
	defaultNear = 0.1
	defaultFar  = 10000.0
)

// Per-screen tuning. The landing screen floats inside its starfield with a
// slow, dreamy camera; the solar screen sits further out and reacts faster.
const (
	solarSmoothing   = 0.04 // parallax easing factor per tick
	landingSmoothing = 0.02

	solarParallaxStrength   = 120.0 // world units at full pointer offset
	landingParallaxStrength = 60.0

	wheelZoomFactor = 0.5 // world units of distance per wheel unit
)

// Lighting: a point light at the origin plus a uniform ambient floor.
// sunAmbient is the shading factor on a body's full night side; the
// remainder scales with the sun-facing term.
const sunAmbient = 0.35

var (
	solarZoomRange   = Range{Min: 300, Max: 1500}
	landingZoomRange = Range{Min: 100, Max: 600}
)

const (
	solarStartDistance   = 800.0
	landingStartDistance = 320.0
)

// Starfield defaults. The solar screen reuses the same point cloud
// parameters so the background reads as one continuous sky.
const (
	defaultStarCount  = 1600
	defaultStarRadius = 3000.0
	defaultStarSeed   = 20570 // arbitrary fixed seed; scenes look identical across runs
)

// SystemConfig is the full descriptor table for a scene: the sun plus the
// orbiting bodies. It is trusted static data validated once by NewScene.
type SystemConfig struct {
	// SunSize is the rendered radius of the central emissive sphere.
	SunSize float64
	// SunColor is the sun's constant, unlit color.
	SunColor Color
	// Bodies are the orbiting planets, inner to outer.
	Bodies []BodyConfig
	// StarSeed seeds starfield generation and twinkle noise.
	// Zero selects the package default.
	StarSeed uint64
}

// validate panics on malformed descriptor tables. These are programming
// errors in static data, not runtime conditions.
func (c SystemConfig) validate() {
	if c.SunSize <= 0 {
		panic("orrery: SunSize must be positive")
	}
	seen := make(map[string]bool, len(c.Bodies))
	for _, b := range c.Bodies {
		if b.Name == "" {
			panic("orrery: body with empty name")
		}
		if seen[b.Name] {
			panic(fmt.Sprintf("orrery: duplicate body name %q", b.Name))
		}
		seen[b.Name] = true
		if b.OrbitalRadius <= 0 {
			panic(fmt.Sprintf("orrery: body %q has non-positive orbital radius", b.Name))
		}
		if b.Size <= 0 {
			panic(fmt.Sprintf("orrery: body %q has non-positive size", b.Name))
		}
	}
}

// DefaultSystem returns the stock eight-planet system used by Run when no
// custom table is supplied.
func DefaultSystem() SystemConfig {
	return SystemConfig{
		SunSize:  48,
		SunColor: Color{R: 1.0, G: 0.78, B: 0.28, A: 1},
		Bodies: []BodyConfig{
			{
				Name: "Mercury", OrbitalRadius: 110, Size: 6, Speed: 0.012,
				Color:   Color{R: 0.71, G: 0.71, B: 0.71, A: 1},
				Content: "The smallest planet and the closest to the Sun. With no atmosphere to hold heat, its surface swings from -180 to 430 degrees Celsius.",
			},
			{
				Name: "Venus", OrbitalRadius: 160, Size: 10, Speed: 0.0085,
				Color:   Color{R: 0.91, G: 0.80, B: 0.63, A: 1},
				Content: "The hottest planet in the solar system, wrapped in a crushing carbon-dioxide atmosphere. It rotates backwards, so its sun rises in the west.",
			},
			{
				Name: "Earth", OrbitalRadius: 215, Size: 11, Speed: 0.006,
				Color:   Color{R: 0.18, G: 0.53, B: 0.67, A: 1},
				Content: "The only world known to support life. Seventy-one percent of its surface is covered by liquid water, sheltered under an oxygen-rich atmosphere.",
			},
			{
				Name: "Mars", OrbitalRadius: 270, Size: 8, Speed: 0.0048,
				Color:   Color{R: 0.76, G: 0.27, B: 0.05, A: 1},
				Content: "The red planet carries the tallest mountain known anywhere: Olympus Mons, three times the height of Everest.",
			},
			{
				Name: "Jupiter", OrbitalRadius: 360, Size: 26, Speed: 0.0027,
				Color:   Color{R: 0.78, G: 0.55, B: 0.23, A: 1},
				Content: "A gas giant heavier than every other planet combined. Its Great Red Spot is a storm that has raged for over three centuries.",
			},
			{
				Name: "Saturn", OrbitalRadius: 450, Size: 22, Speed: 0.0021,
				Color:   Color{R: 0.89, G: 0.82, B: 0.57, A: 1},
				Content: "Famous for its rings of ice and rock. Saturn is so light it would float in water, if you could find a big enough bathtub.",
			},
			{
				Name: "Uranus", OrbitalRadius: 530, Size: 15, Speed: 0.0015,
				Color:   Color{R: 0.49, G: 0.91, B: 0.91, A: 1},
				Content: "An ice giant tipped on its side: its axis is tilted 98 degrees, so its poles take turns facing the Sun for decades at a stretch.",
			},
			{
				Name: "Neptune", OrbitalRadius: 600, Size: 14, Speed: 0.0011,
				Color:   Color{R: 0.25, G: 0.33, B: 0.73, A: 1},
				Content: "The most distant planet, with the fastest winds in the solar system: up to 2100 kilometers per hour. One orbit takes 165 Earth years.",
			},
		},
	}
}
