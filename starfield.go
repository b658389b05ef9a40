package orrery

import (
	"math"
	"math/rand/v2"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// RadialMode selects how star distances from the origin are sampled.
type RadialMode uint8

const (
	// RadialLinear draws the radius as R * uniform(0,1). Volumetrically this
	// biases stars toward the center, giving the sky a denser core. It is
	// the reference behavior and the default.
	RadialLinear RadialMode = iota
	// RadialUniform draws the radius as R * cbrt(uniform(0,1)), producing a
	// true uniform-volume distribution.
	RadialUniform
)

// StarfieldConfig controls point-cloud generation.
type StarfieldConfig struct {
	// Count is the exact number of stars generated.
	Count int
	// Radius is the maximum distance of any star from the origin.
	Radius float64
	// Mode selects the radial sampling distribution.
	Mode RadialMode
	// Seed seeds both point placement and twinkle noise. The same seed
	// always yields the same sky. Zero selects the package default.
	Seed uint64
}

// Starfield is an immutable spherical point cloud rendered as one batched
// set of additive quads. Individual stars are not addressable and never
// move after generation; only their brightness flickers.
type Starfield struct {
	points  []Vec3
	twinkle opensimplex.Noise
	radius  float64
}

// NewStarfield generates cfg.Count stars distributed through a sphere of
// cfg.Radius. The direction of each star is uniform over the sphere surface
// (polar angle by inverse-CDF, azimuth uniform); the radius follows cfg.Mode.
func NewStarfield(cfg StarfieldConfig) *Starfield {
	if cfg.Count < 0 {
		cfg.Count = 0
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = defaultStarSeed
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	points := make([]Vec3, cfg.Count)
	for i := range points {
		r := cfg.Radius * rng.Float64()
		if cfg.Mode == RadialUniform {
			r = cfg.Radius * math.Cbrt(rng.Float64())
		}
		theta := math.Acos(2*rng.Float64() - 1)
		phi := 2 * math.Pi * rng.Float64()
		points[i] = sphericalToCartesian(r, theta, phi)
	}

	return &Starfield{
		points:  points,
		twinkle: opensimplex.NewNormalized(int64(seed)),
		radius:  cfg.Radius,
	}
}

// Count returns the number of generated stars.
func (f *Starfield) Count() int {
	return len(f.points)
}

// Radius returns the configured maximum star distance.
func (f *Starfield) Radius() float64 {
	return f.radius
}

// Points returns the generated positions. The returned slice MUST NOT be
// mutated.
func (f *Starfield) Points() []Vec3 {
	return f.points
}

// Brightness returns star i's brightness in [minTwinkle, 1] at the given
// tick. Noise is sampled over (star index, time) so neighbors flicker
// independently, and the same seed and tick always produce the same value.
func (f *Starfield) Brightness(i int, tick uint64) float64 {
	const minTwinkle = 0.45
	n := f.twinkle.Eval2(float64(i)*0.731, float64(tick)*0.013)
	return minTwinkle + (1-minTwinkle)*n
}
