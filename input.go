package orrery

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// defaultClickDeadZone is the maximum pointer travel in pixels between press
// and release for the gesture to still count as a click.
const defaultClickDeadZone = 6.0

// clickHandler pairs a registered callback with its removal id.
type clickHandler struct {
	id uint32
	fn func(x, y float64)
}

type handlerRegistry struct {
	click  []clickHandler
	nextID uint32
}

// CallbackHandle allows removing a registered callback. Subscriptions are
// explicit objects so callers (and tests) can tear down cleanly instead of
// leaking listeners for the lifetime of the window.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires.
// The entry is removed from the slice to avoid nil iteration waste.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.click
	for i := range s {
		if s[i].id == h.id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = clickHandler{}
			h.reg.click = s[:len(s)-1]
			return
		}
	}
}

// Input converts raw pointer and wheel state into normalized camera deltas
// and click events. Movement becomes the camera's parallax target, the wheel
// becomes a clamped zoom delta, and a press/release pair inside the dead
// zone becomes a click dispatched to registered handlers.
//
// Synthetic events queued via the Inject methods are consumed one per tick
// before real device input, which is skipped for that tick.
type Input struct {
	handlers handlerRegistry

	prevPressed    bool
	pressX, pressY float64
	lastX, lastY   float64
	clickDeadZone  float64

	injectQueue []syntheticEvent
}

// NewInput creates an input adapter with the default click dead zone.
func NewInput() *Input {
	return &Input{clickDeadZone: defaultClickDeadZone}
}

// OnClick registers a callback fired with the screen coordinates of every
// completed click.
func (i *Input) OnClick(fn func(x, y float64)) CallbackHandle {
	i.handlers.nextID++
	id := i.handlers.nextID
	i.handlers.click = append(i.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &i.handlers}
}

// SetClickDeadZone sets the maximum press-to-release travel in pixels for a
// gesture to count as a click.
func (i *Input) SetClickDeadZone(pixels float64) {
	i.clickDeadZone = pixels
}

// process reads one tick of input and applies it to the camera. Called from
// the owning scene's Update.
func (i *Input) process(cam *Camera) {
	if i.processInjected(cam) {
		return
	}

	mx, my := ebiten.CursorPosition()
	_, wheelY := ebiten.Wheel()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	i.step(cam, float64(mx), float64(my), pressed, wheelY)
}

// step runs the pointer state machine for a single tick of input, real or
// injected.
func (i *Input) step(cam *Camera, x, y float64, pressed bool, wheelY float64) {
	i.lastX, i.lastY = x, y

	// Pointer move: normalized offset from viewport center in [-0.5, 0.5].
	// The camera's smoothing step consumes it; never applied directly.
	w, h := cam.Viewport()
	if w > 0 && h > 0 {
		cam.SetParallaxTarget(x/w-0.5, y/h-0.5)
	}

	// Wheel: distance delta, clamped inside the camera.
	if wheelY != 0 {
		cam.AddZoom(wheelY * wheelZoomFactor)
	}

	// Click detection: press then release within the dead zone.
	if pressed && !i.prevPressed {
		i.pressX = x
		i.pressY = y
	} else if !pressed && i.prevPressed {
		dx := x - i.pressX
		dy := y - i.pressY
		if math.Sqrt(dx*dx+dy*dy) <= i.clickDeadZone {
			i.fireClick(x, y)
		}
	}
	i.prevPressed = pressed
}

func (i *Input) fireClick(x, y float64) {
	for _, h := range i.handlers.click {
		h.fn(x, y)
	}
}
