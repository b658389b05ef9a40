package orrery

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Transition fade timings in seconds.
const (
	transitionCover  = 0.6
	transitionReveal = 0.8
)

type transitionPhase uint8

const (
	transitionIdle transitionPhase = iota
	transitionCovering
	transitionRevealing
)

// Transition is a full-screen fade used to swap screens. Start fades to
// black, fires the swap callback exactly once at full cover, then fades back
// in. While idle it emits nothing.
type Transition struct {
	phase   transitionPhase
	alpha   float64
	fade    *gween.Tween
	onCover func()
}

// NewTransition creates an idle transition.
func NewTransition() *Transition {
	return &Transition{}
}

// Start begins a fade-out. onCover runs once when the screen is fully
// covered; the swap happens there so the reveal shows the new screen.
// No-op while a transition is already running.
func (t *Transition) Start(onCover func()) {
	if t.phase != transitionIdle {
		return
	}
	t.phase = transitionCovering
	t.onCover = onCover
	t.fade = gween.New(float32(t.alpha), 1, transitionCover, ease.InOutQuad)
}

// Active reports whether a fade is in progress.
func (t *Transition) Active() bool {
	return t.phase != transitionIdle
}

// update advances the fade and fires the cover callback at the turnaround.
func (t *Transition) update(dt float32) {
	if t.fade == nil {
		return
	}
	val, done := t.fade.Update(dt)
	t.alpha = float64(val)
	if !done {
		return
	}
	switch t.phase {
	case transitionCovering:
		if t.onCover != nil {
			t.onCover()
			t.onCover = nil
		}
		t.phase = transitionRevealing
		t.fade = gween.New(1, 0, transitionReveal, ease.InOutQuad)
	case transitionRevealing:
		t.phase = transitionIdle
		t.fade = nil
	}
}

// emit appends the overlay rectangle. No-op when fully revealed.
func (t *Transition) emit(b *vertexBatch, vw, vh float64) {
	if t.alpha <= 0 {
		return
	}
	b.rect(0, 0, vw, vh, Color{A: t.alpha})
}
