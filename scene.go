package orrery

import (
	"math"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneState tracks scene activation. The state is owned by the Scene itself
// and checked by Init, so activation is at-most-once no matter how many times
// the caller re-enters.
type SceneState uint8

const (
	// StateUninitialized means Init has not run; the scene owns no entities.
	StateUninitialized SceneState = iota
	// StateActive means the scene is built and ticking.
	StateActive
)

// SelectionEvent is emitted when a click ray hits a planet.
type SelectionEvent struct {
	Name    string
	Content string
	Body    *Body
}

type selectionHandler struct {
	id uint32
	fn func(SelectionEvent)
}

// SelectionHandle allows removing a registered selection callback.
type SelectionHandle struct {
	id    uint32
	scene *Scene
}

// Remove unregisters this callback so it no longer fires.
func (h SelectionHandle) Remove() {
	if h.scene == nil {
		return
	}
	s := h.scene.selHandlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			h.scene.selHandlers = s[:len(s)-1]
			return
		}
	}
}

// Scene is the solar-system screen: camera, input adapter, sun, planets,
// orbit rings, starfield, and info panel. Everything is reconstructed from
// the config on activation; nothing persists across scenes.
type Scene struct {
	state SceneState
	cfg   SystemConfig

	cam    *Camera
	input  *Input
	bodies []*Body
	stars  *Starfield
	panel  *Panel

	selHandlers []selectionHandler
	selNextID   uint32
	clickHandle CallbackHandle

	tick  uint64
	debug bool
	stats debugStats

	// Reused per-frame render buffers.
	backBatch  vertexBatch
	mainBatch  vertexBatch
	glowBatch  vertexBatch
	ringPts    []Vec2
	depthOrder []depthEntry
}

// depthEntry pairs a drawable sphere with its camera-space depth for
// painter-order sorting. body is nil for the sun.
type depthEntry struct {
	body  *Body
	depth float64
}

// NewScene creates an inactive scene from a descriptor table. The table is
// validated immediately; malformed tables are programming errors and panic.
// Call Init to build the entities and activate the tick.
func NewScene(cfg SystemConfig) *Scene {
	cfg.validate()
	return &Scene{
		cfg:   cfg,
		cam:   newCamera(solarStartDistance, solarZoomRange, solarSmoothing, solarParallaxStrength),
		input: NewInput(),
		panel: NewPanel(),
	}
}

// Init builds the scene's entities and registers input subscriptions.
// Idempotent: calls after the first are silent no-ops, so re-activation
// creates no duplicate entities and no duplicate listeners.
func (s *Scene) Init() {
	if s.state == StateActive {
		return
	}
	s.state = StateActive

	seed := s.cfg.StarSeed
	if seed == 0 {
		seed = defaultStarSeed
	}
	rng := rand.New(rand.NewPCG(seed, seed+1))

	s.bodies = make([]*Body, 0, len(s.cfg.Bodies))
	for _, bc := range s.cfg.Bodies {
		s.bodies = append(s.bodies, newBody(bc, rng))
	}

	s.stars = NewStarfield(StarfieldConfig{
		Count:  defaultStarCount,
		Radius: defaultStarRadius,
		Seed:   seed,
	})

	s.clickHandle = s.input.OnClick(s.handleClick)
}

// State returns the scene's activation state.
func (s *Scene) State() SceneState {
	return s.state
}

// EntityCount returns the number of scene entities: one per body, one ring
// per body, the sun, and the starfield (one batched point-cloud entity).
// Used to observe that repeated activation creates nothing.
func (s *Scene) EntityCount() int {
	if s.state != StateActive {
		return 0
	}
	return 2*len(s.bodies) + 2
}

// Camera returns the scene's camera.
func (s *Scene) Camera() *Camera {
	return s.cam
}

// Input returns the scene's input adapter.
func (s *Scene) Input() *Input {
	return s.input
}

// Panel returns the scene's info panel.
func (s *Scene) Panel() *Panel {
	return s.panel
}

// Bodies returns the scene's bodies. The returned slice MUST NOT be mutated.
func (s *Scene) Bodies() []*Body {
	return s.bodies
}

// Starfield returns the scene's background point cloud, or nil before Init.
func (s *Scene) Starfield() *Starfield {
	return s.stars
}

// SetDebugMode enables per-frame timing stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// OnSelect registers a callback fired whenever a planet is picked.
func (s *Scene) OnSelect(fn func(SelectionEvent)) SelectionHandle {
	s.selNextID++
	id := s.selNextID
	s.selHandlers = append(s.selHandlers, selectionHandler{id: id, fn: fn})
	return SelectionHandle{id: id, scene: s}
}

// Update advances the scene one tick: every body moves along its orbit, the
// camera eases toward its parallax target, the panel animation runs, and
// input is processed. No-op before Init.
func (s *Scene) Update() {
	if s.state != StateActive {
		return
	}

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dt := float32(1.0 / float64(ebiten.TPS()))

	for _, b := range s.bodies {
		b.Advance()
	}
	s.cam.update(dt)
	s.panel.layout(s.cam.Viewport())
	s.panel.update(dt)
	s.input.process(s.cam)
	s.tick++

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
}

// handleClick routes a completed click: the panel swallows clicks over
// itself (closing on the close control), otherwise the click is resolved by
// ray picking. A hit emits a selection event and opens the panel; empty
// space emits nothing.
func (s *Scene) handleClick(x, y float64) {
	if s.panel.Visible() && s.panel.contains(x, y) {
		if s.panel.closeHit(x, y) {
			s.panel.Hide()
		}
		return
	}

	picked := pickBody(s.bodies, s.cam.ScreenRay(x, y))
	if picked == nil {
		return
	}
	ev := SelectionEvent{Name: picked.Name, Content: picked.Content, Body: picked}
	for _, h := range s.selHandlers {
		h.fn(ev)
	}
	s.panel.Show(picked.Name, picked.Content)
}

// Draw renders one frame. The target surface is a hard precondition; a nil
// surface panics with a diagnostic rather than silently misbehaving.
func (s *Scene) Draw(screen *ebiten.Image) {
	if screen == nil {
		panic("orrery: Scene.Draw called with nil render surface")
	}
	if s.state != StateActive {
		return
	}

	b := screen.Bounds()
	s.cam.SetViewport(b.Dx(), b.Dy())

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.emitStars()
	s.emitRings()
	s.emitSpheres()
	s.panel.emit(&s.mainBatch, s.cam.viewportW, s.cam.viewportH)

	if s.debug {
		s.stats.projectTime = time.Since(t0)
		t0 = time.Now()
	}

	// Back-to-front: stars behind everything, then rings and depth-sorted
	// spheres, then additive glow on top.
	calls := s.backBatch.submit(screen, BlendAdd)
	calls += s.mainBatch.submit(screen, BlendNormal)
	calls += s.glowBatch.submit(screen, BlendAdd)
	s.panel.drawText(screen, s.cam.viewportW)

	if s.debug {
		s.stats.submitTime = time.Since(t0)
		s.stats.drawCalls = calls
		s.stats.entities = s.EntityCount()
		s.debugLog()
	}
}

// emitStars projects the point cloud into the back batch with twinkle and
// mild distance attenuation.
func (s *Scene) emitStars() {
	for i, p := range s.stars.Points() {
		sx, sy, depth, ok := s.cam.Project(p)
		if !ok {
			continue
		}
		br := s.stars.Brightness(i, s.tick)
		size := clamp(900/depth, 0.6, 2.4)
		s.backBatch.quad(sx, sy, size, Color{R: br, G: br, B: br, A: 1})
	}
}

// ringSegments is the sample count for each projected orbit circle.
const ringSegments = 96

var ringColor = Color{R: 1, G: 1, B: 1, A: 0.08}

// emitRings draws each orbit as a thin projected ribbon. Points clipped by
// the camera split the circle into open runs; each run is drawn separately.
func (s *Scene) emitRings() {
	for _, body := range s.bodies {
		s.ringPts = s.ringPts[:0]
		for i := 0; i < ringSegments; i++ {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / ringSegments)
			p := Vec3{X: cos * body.OrbitalRadius, Z: sin * body.OrbitalRadius}
			sx, sy, _, ok := s.cam.Project(p)
			if !ok {
				// Flush the current run and start a new one.
				s.emitRingRun()
				continue
			}
			s.ringPts = append(s.ringPts, Vec2{X: sx, Y: sy})
		}
		s.emitRingRun()
	}
}

func (s *Scene) emitRingRun() {
	if len(s.ringPts) >= 3 {
		s.mainBatch.ribbon(s.ringPts, 1.5, ringColor)
	}
	s.ringPts = s.ringPts[:0]
}

// emitSpheres draws the sun and planets as screen-space discs in painter
// order (farthest first). The sun is emissive: constant color plus an
// additive glow, never shaded by anything.
func (s *Scene) emitSpheres() {
	s.depthOrder = s.depthOrder[:0]

	if _, _, depth, ok := s.cam.Project(Vec3{}); ok {
		s.depthOrder = append(s.depthOrder, depthEntry{body: nil, depth: depth})
	}
	for _, b := range s.bodies {
		if _, _, depth, ok := s.cam.Project(b.Position()); ok {
			s.depthOrder = append(s.depthOrder, depthEntry{body: b, depth: depth})
		}
	}

	sort.Slice(s.depthOrder, func(i, j int) bool {
		return s.depthOrder[i].depth > s.depthOrder[j].depth
	})

	for _, e := range s.depthOrder {
		if e.body == nil {
			s.emitSun()
		} else {
			s.emitBody(e.body)
		}
	}
}

func (s *Scene) emitSun() {
	sx, sy, depth, ok := s.cam.Project(Vec3{})
	if !ok {
		return
	}
	r := s.cam.ProjectedRadius(s.cfg.SunSize, depth)
	s.mainBatch.disc(sx, sy, r, s.cfg.SunColor)
	// Two additive halos.
	s.glowBatch.disc(sx, sy, r*1.6, s.cfg.SunColor.WithAlpha(0.20))
	s.glowBatch.disc(sx, sy, r*2.6, s.cfg.SunColor.WithAlpha(0.08))
}

func (s *Scene) emitBody(b *Body) {
	pos := b.Position()
	sx, sy, depth, ok := s.cam.Project(pos)
	if !ok {
		return
	}
	r := s.cam.ProjectedRadius(b.Size, depth)
	col := b.Color.Scale(s.lightAt(pos))
	s.mainBatch.disc(sx, sy, r, col)

	// Self-rotation marker: a small darker spot circling the disc face.
	msin, mcos := math.Sincos(b.Spin)
	s.mainBatch.disc(sx+mcos*r*0.55, sy+msin*r*0.55, r*0.18, col.Scale(0.55))
}

// lightAt returns the shading factor in [sunAmbient, 1] for a surface at
// pos: the ambient floor plus a diffuse term from the point light at the
// origin. The visible face is what a billboard disc shows, so the diffuse
// term peaks when the camera views the sunlit hemisphere and vanishes when
// it views the night side.
func (s *Scene) lightAt(pos Vec3) float64 {
	toSun := pos.Scale(-1).Normalize()
	toCam := s.cam.Position().Sub(pos).Normalize()
	facing := 0.5 + 0.5*toSun.Dot(toCam)
	return sunAmbient + (1-sunAmbient)*facing
}
