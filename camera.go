package orrery

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// worldUp is the global up axis. Orbits lie in the plane perpendicular to it.
var worldUp = Vec3{X: 0, Y: 1, Z: 0}

// Camera is a perspective camera that always aims at the origin. It holds a
// distance from the origin (zoom, clamped to a range), a yaw/pitch position
// on the viewing sphere, and a parallax offset eased toward the pointer
// target. The offset never jumps; it is exponentially smoothed every tick.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far are the clip distances. Geometry outside is not drawn.
	Near, Far float64

	// Yaw is the azimuthal position on the viewing sphere in radians.
	Yaw float64
	// Pitch is the elevation above the orbital plane in radians.
	Pitch float64
	// Drift is added to Yaw every tick. The landing screen uses it for its
	// slow automatic rotation; the solar screen leaves it zero.
	Drift float64

	distance  float64
	distRange Range
	distTween *gween.Tween

	parallaxTarget   Vec2 // normalized pointer offset, [-0.5, 0.5] each axis
	offset           Vec2 // smoothed world-unit displacement
	smoothing        float64
	parallaxStrength float64

	viewportW float64
	viewportH float64

	// Cached basis, rebuilt when dirty.
	pos     Vec3
	right   Vec3
	up      Vec3
	forward Vec3
	focal   float64
	dirty   bool
}

// newCamera creates a camera with default clip planes at the given start
// distance. The distance stays clamped to distRange for the camera's lifetime.
func newCamera(distance float64, distRange Range, smoothing, parallaxStrength float64) *Camera {
	return &Camera{
		FOV:              defaultFOV,
		Near:             defaultNear,
		Far:              defaultFar,
		Pitch:            0.35,
		distance:         distRange.Clamp(distance),
		distRange:        distRange,
		smoothing:        smoothing,
		parallaxStrength: parallaxStrength,
		dirty:            true,
	}
}

// SetViewport updates the projection for a new surface size. Must be called
// on every viewport size change to avoid distortion.
func (c *Camera) SetViewport(w, h int) {
	fw, fh := float64(w), float64(h)
	if fw == c.viewportW && fh == c.viewportH {
		return
	}
	c.viewportW = fw
	c.viewportH = fh
	c.dirty = true
}

// Viewport returns the current surface size in pixels.
func (c *Camera) Viewport() (w, h float64) {
	return c.viewportW, c.viewportH
}

// SetParallaxTarget sets the normalized pointer offset the camera eases
// toward. Components are clamped to [-0.5, 0.5].
func (c *Camera) SetParallaxTarget(nx, ny float64) {
	c.parallaxTarget = Vec2{
		X: clamp(nx, -0.5, 0.5),
		Y: clamp(ny, -0.5, 0.5),
	}
}

// ParallaxTarget returns the current normalized pointer target.
func (c *Camera) ParallaxTarget() Vec2 {
	return c.parallaxTarget
}

// Distance returns the camera's current distance from the origin.
func (c *Camera) Distance() float64 {
	return c.distance
}

// SetDistance sets the distance from the origin, clamped to the zoom range,
// and cancels any running zoom animation.
func (c *Camera) SetDistance(d float64) {
	c.distTween = nil
	c.distance = c.distRange.Clamp(d)
	c.dirty = true
}

// AddZoom offsets the distance by delta and clamps it to the zoom range.
// Wheel input lands here; for any sequence of deltas the resulting distance
// stays inside the range.
func (c *Camera) AddZoom(delta float64) {
	c.distTween = nil
	c.distance = c.distRange.Clamp(c.distance + delta)
	c.dirty = true
}

// ZoomRange returns the clamp interval for the camera distance.
func (c *Camera) ZoomRange() Range {
	return c.distRange
}

// ZoomTo animates the distance to the given value over duration seconds.
// The target is clamped to the zoom range before the tween starts.
func (c *Camera) ZoomTo(d float64, duration float32, easeFn ease.TweenFunc) {
	d = c.distRange.Clamp(d)
	c.distTween = gween.New(float32(c.distance), float32(d), duration, easeFn)
}

// update advances drift, the zoom tween, and parallax smoothing.
// Called once per tick from the owning scene.
func (c *Camera) update(dt float32) {
	if c.Drift != 0 {
		c.Yaw += c.Drift
		c.dirty = true
	}

	if c.distTween != nil {
		val, done := c.distTween.Update(dt)
		c.distance = c.distRange.Clamp(float64(val))
		if done {
			c.distTween = nil
		}
		c.dirty = true
	}

	// Exponential smoothing toward the parallax target. The factor is per
	// tick: closer to 1 is snappier, closer to 0 is laggier.
	tx := c.parallaxTarget.X * c.parallaxStrength
	ty := -c.parallaxTarget.Y * c.parallaxStrength
	nx := lerp(c.offset.X, tx, c.smoothing)
	ny := lerp(c.offset.Y, ty, c.smoothing)
	if nx != c.offset.X || ny != c.offset.Y {
		c.offset = Vec2{X: nx, Y: ny}
		c.dirty = true
	}
}

// Position returns the camera's world position.
func (c *Camera) Position() Vec3 {
	c.ensureBasis()
	return c.pos
}

// ensureBasis rebuilds the cached position, orientation, and focal length
// when dirty. The camera is re-aimed at the origin after the parallax
// offset is applied, so the origin stays centered.
func (c *Camera) ensureBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	sinY, cosY := math.Sincos(c.Yaw)
	sinP, cosP := math.Sincos(c.Pitch)
	base := Vec3{
		X: c.distance * cosP * sinY,
		Y: c.distance * sinP,
		Z: -c.distance * cosP * cosY,
	}

	// Displace along the base orientation's right/up, then re-aim.
	fwd := base.Scale(-1).Normalize()
	right := worldUp.Cross(fwd).Normalize()
	up := fwd.Cross(right)
	c.pos = base.Add(right.Scale(c.offset.X)).Add(up.Scale(c.offset.Y))

	c.forward = c.pos.Scale(-1).Normalize()
	c.right = worldUp.Cross(c.forward).Normalize()
	c.up = c.forward.Cross(c.right)

	c.focal = (c.viewportH / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project maps a world point to screen coordinates. depth is the camera-space
// distance along the view axis; ok is false when the point falls outside the
// clip range and must not be drawn.
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.ensureBasis()
	d := p.Sub(c.pos)
	cz := d.Dot(c.forward)
	if cz < c.Near || cz > c.Far {
		return 0, 0, cz, false
	}
	s := c.focal / cz
	sx = c.viewportW/2 + d.Dot(c.right)*s
	sy = c.viewportH/2 - d.Dot(c.up)*s
	return sx, sy, cz, true
}

// ProjectedRadius converts a world-space sphere radius at the given depth to
// its on-screen radius in pixels.
func (c *Camera) ProjectedRadius(worldR, depth float64) float64 {
	c.ensureBasis()
	if depth <= 0 {
		return 0
	}
	return worldR * c.focal / depth
}

// ScreenRay returns the picking ray through the given screen coordinates:
// origin at the camera, direction through the point on the image plane.
func (c *Camera) ScreenRay(sx, sy float64) Ray {
	c.ensureBasis()
	dir := c.forward.
		Add(c.right.Scale((sx - c.viewportW/2) / c.focal)).
		Add(c.up.Scale((c.viewportH/2 - sy) / c.focal))
	return Ray{Origin: c.pos, Dir: dir.Normalize()}
}
