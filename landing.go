package orrery

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// landingDrift is the automatic yaw rotation per tick on the landing screen.
const landingDrift = 0.0006

// promptBlinkPeriod is the prompt blink cycle in ticks.
const promptBlinkPeriod = 90

type enterHandler struct {
	id uint32
	fn func()
}

// EnterHandle allows removing a registered enter callback.
type EnterHandle struct {
	id      uint32
	landing *Landing
}

// Remove unregisters this callback so it no longer fires.
func (h EnterHandle) Remove() {
	if h.landing == nil {
		return
	}
	s := h.landing.enterHandlers
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = enterHandler{}
			h.landing.enterHandlers = s[:len(s)-1]
			return
		}
	}
}

// Landing is the entry screen: a slowly drifting starfield behind a title
// and a blinking prompt. Any click fires the registered enter callbacks;
// the app uses that to start the transition into the solar screen.
type Landing struct {
	cam   *Camera
	input *Input
	stars *Starfield

	title  string
	prompt string

	enterHandlers []enterHandler
	enterNextID   uint32

	tick      uint64
	backBatch vertexBatch
}

// NewLanding creates a landing screen with its own camera and starfield.
// The starfield seed is offset from the solar one so the two screens never
// show the same sky.
func NewLanding(title, prompt string, seed uint64) *Landing {
	l := &Landing{
		cam:    newCamera(landingStartDistance, landingZoomRange, landingSmoothing, landingParallaxStrength),
		input:  NewInput(),
		title:  title,
		prompt: prompt,
		stars: NewStarfield(StarfieldConfig{
			Count:  defaultStarCount,
			Radius: defaultStarRadius,
			Seed:   seed + 7,
		}),
	}
	l.cam.Drift = landingDrift
	l.input.OnClick(func(x, y float64) { l.fireEnter() })
	return l
}

// Camera returns the landing screen's camera.
func (l *Landing) Camera() *Camera {
	return l.cam
}

// Input returns the landing screen's input adapter.
func (l *Landing) Input() *Input {
	return l.input
}

// OnEnter registers a callback fired when the user clicks through the
// landing screen.
func (l *Landing) OnEnter(fn func()) EnterHandle {
	l.enterNextID++
	id := l.enterNextID
	l.enterHandlers = append(l.enterHandlers, enterHandler{id: id, fn: fn})
	return EnterHandle{id: id, landing: l}
}

func (l *Landing) fireEnter() {
	for _, h := range l.enterHandlers {
		h.fn()
	}
}

// Update advances the drift, parallax smoothing, and input for one tick.
func (l *Landing) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	l.animate(dt)
	l.input.process(l.cam)
}

// animate advances the camera and tick without processing input. The app
// uses it while the fade transition owns the pointer, so the drift, star
// twinkle, and prompt blink keep running under the overlay.
func (l *Landing) animate(dt float32) {
	l.cam.update(dt)
	l.tick++
}

// Draw renders the starfield and the text overlay.
func (l *Landing) Draw(screen *ebiten.Image) {
	if screen == nil {
		panic("orrery: Landing.Draw called with nil render surface")
	}
	b := screen.Bounds()
	l.cam.SetViewport(b.Dx(), b.Dy())

	for i, p := range l.stars.Points() {
		sx, sy, depth, ok := l.cam.Project(p)
		if !ok {
			continue
		}
		br := l.stars.Brightness(i, l.tick)
		size := clamp(900/depth, 0.6, 2.4)
		l.backBatch.quad(sx, sy, size, Color{R: br, G: br, B: br, A: 1})
	}
	l.backBatch.submit(screen, BlendAdd)

	w, h := l.cam.Viewport()
	cx := int(w / 2)
	cy := int(h / 2)
	ebitenutil.DebugPrintAt(screen, l.title, cx-3*len(l.title), cy-24)
	if math.Sin(2*math.Pi*float64(l.tick)/promptBlinkPeriod) > -0.6 {
		ebitenutil.DebugPrintAt(screen, l.prompt, cx-3*len(l.prompt), cy+8)
	}
}
