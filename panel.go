package orrery

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Panel geometry. The panel slides in from the right edge and spans the
// full viewport height.
const (
	panelWidth    = 320.0
	panelPad      = 24.0
	panelCloseBox = 24.0
	lineHeight    = 16.0
	wrapColumns   = 46 // characters per content line at the debug font width

	panelSlideIn  = 0.35 // seconds
	panelSlideOut = 0.25
)

var (
	panelBackdrop = Color{R: 0.05, G: 0.06, B: 0.10, A: 0.92}
	panelDivider  = Color{R: 1, G: 1, B: 1, A: 0.25}
	panelCloseBg  = Color{R: 1, G: 1, B: 1, A: 0.12}
)

// Panel is the information overlay shown when a planet is selected. It is
// pure 2D screen-space UI: a sliding backdrop, a title, wrapped body text,
// and a close control. Visibility changes are tweened, never instant.
type Panel struct {
	visible bool // target state; progress animates toward it
	title   string
	lines   []string

	progress float64 // 0 = fully off-screen, 1 = fully open
	slide    *gween.Tween

	vw, vh float64
}

// NewPanel creates a hidden panel.
func NewPanel() *Panel {
	return &Panel{}
}

// Show sets the panel content and slides it in. Showing while already open
// swaps the text and keeps the panel where it is.
func (p *Panel) Show(title, content string) {
	p.title = title
	p.lines = wrapText(content, wrapColumns)
	if !p.visible {
		p.visible = true
		p.slide = gween.New(float32(p.progress), 1, panelSlideIn, ease.OutCubic)
	}
}

// Hide slides the panel out. No-op when already hidden.
func (p *Panel) Hide() {
	if !p.visible {
		return
	}
	p.visible = false
	p.slide = gween.New(float32(p.progress), 0, panelSlideOut, ease.InCubic)
}

// Visible reports the panel's target state (true from Show until Hide, even
// while the slide animation is still running).
func (p *Panel) Visible() bool {
	return p.visible
}

// Title returns the current title text.
func (p *Panel) Title() string {
	return p.title
}

// layout records the viewport size used for hit testing and drawing.
func (p *Panel) layout(vw, vh float64) {
	p.vw = vw
	p.vh = vh
}

// update advances the slide animation.
func (p *Panel) update(dt float32) {
	if p.slide == nil {
		return
	}
	val, done := p.slide.Update(dt)
	p.progress = float64(val)
	if done {
		p.slide = nil
	}
}

// left returns the panel's current left edge in screen space.
func (p *Panel) left() float64 {
	return p.vw - panelWidth*p.progress
}

// contains reports whether the point lies over the visible panel area.
func (p *Panel) contains(x, y float64) bool {
	return p.progress > 0 && x >= p.left() && y >= 0 && y <= p.vh
}

// closeHit reports whether the point lies inside the close control.
func (p *Panel) closeHit(x, y float64) bool {
	bx := p.left() + panelWidth - panelPad - panelCloseBox
	by := panelPad
	return x >= bx && x <= bx+panelCloseBox && y >= by && y <= by+panelCloseBox
}

// emit appends the panel's backdrop geometry to the batch.
func (p *Panel) emit(b *vertexBatch, vw, vh float64) {
	p.layout(vw, vh)
	if p.progress <= 0 {
		return
	}
	x := p.left()
	b.rect(x, 0, panelWidth, vh, panelBackdrop)
	b.rect(x+panelPad, panelPad+panelCloseBox+12, panelWidth-2*panelPad, 1, panelDivider)
	b.rect(x+panelWidth-panelPad-panelCloseBox, panelPad, panelCloseBox, panelCloseBox, panelCloseBg)
}

// drawText renders the title, close glyph, and wrapped content. Text is not
// batched geometry, so it draws after the triangle submission.
func (p *Panel) drawText(screen *ebiten.Image, vw float64) {
	if p.progress <= 0 {
		return
	}
	x := int(p.left())
	ebitenutil.DebugPrintAt(screen, p.title, x+int(panelPad), int(panelPad)+4)
	ebitenutil.DebugPrintAt(screen, "x", x+int(panelWidth-panelPad-panelCloseBox)+9, int(panelPad)+4)

	top := int(panelPad+panelCloseBox) + 24
	for i, line := range p.lines {
		ebitenutil.DebugPrintAt(screen, line, x+int(panelPad), top+i*int(lineHeight))
	}
}

// wrapText greedily wraps s into lines of at most cols characters, breaking
// on spaces. Words longer than cols get a line of their own.
func wrapText(s string, cols int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > cols {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
