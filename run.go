package orrery

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// RunConfig configures the application window and the scene it runs.
type RunConfig struct {
	// Title is the window title. Also used as the landing headline.
	Title string
	// Width and Height are the initial window size in pixels.
	// Zero values fall back to 1280x720.
	Width, Height int
	// System describes the bodies to simulate. Nil uses DefaultSystem.
	System *SystemConfig
	// ShowFPS draws an FPS/TPS counter in the corner.
	ShowFPS bool
	// Debug logs per-frame timing stats to stderr.
	Debug bool
}

type appScreen uint8

const (
	screenLanding appScreen = iota
	screenSolar
)

// App is the ebiten.Game gluing the screens together: the landing screen
// runs until clicked, a fade covers the swap, then the solar scene runs.
// Use Run for the common case; construct an App directly to drive the loop
// yourself or to embed the experience in a larger game.
type App struct {
	landing *Landing
	scene   *Scene
	trans   *Transition

	current appScreen
	showFPS bool
	stopped bool

	overlay vertexBatch
}

// NewApp builds the screen stack from the config without opening a window.
func NewApp(cfg RunConfig) *App {
	title := cfg.Title
	if title == "" {
		title = "ORRERY"
	}
	sys := DefaultSystem()
	if cfg.System != nil {
		sys = *cfg.System
	}
	seed := sys.StarSeed
	if seed == 0 {
		seed = defaultStarSeed
	}

	a := &App{
		landing: NewLanding(title, "click to enter", seed),
		scene:   NewScene(sys),
		trans:   NewTransition(),
		showFPS: cfg.ShowFPS,
	}
	a.scene.SetDebugMode(cfg.Debug)

	a.landing.OnEnter(func() {
		// Push into the stars while the fade covers the swap.
		a.landing.Camera().ZoomTo(landingZoomRange.Min, transitionCover, ease.InQuad)
		a.trans.Start(func() {
			a.scene.Init()
			a.current = screenSolar
		})
	})
	return a
}

// Scene returns the solar scene so callers can register selection handlers
// before it activates.
func (a *App) Scene() *Scene {
	return a.scene
}

// Landing returns the landing screen.
func (a *App) Landing() *Landing {
	return a.landing
}

// Stop makes the next Update return ebiten.Termination, ending the loop
// cleanly. Safe to call from a callback.
func (a *App) Stop() {
	a.stopped = true
}

// Update advances the current screen and the transition. Implements
// ebiten.Game.
func (a *App) Update() error {
	if a.stopped {
		return ebiten.Termination
	}

	dt := float32(1.0 / float64(ebiten.TPS()))
	a.trans.update(dt)

	// Input is frozen while the fade runs so clicks cannot double-trigger,
	// but the screens keep animating underneath it.
	if !a.trans.Active() {
		switch a.current {
		case screenLanding:
			a.landing.Update()
		case screenSolar:
			a.scene.Update()
		}
	} else if a.current == screenSolar {
		a.scene.Update()
	} else {
		a.landing.animate(dt)
	}
	return nil
}

// Draw renders the current screen with the fade overlay on top. Implements
// ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	switch a.current {
	case screenLanding:
		a.landing.Draw(screen)
	case screenSolar:
		a.scene.Draw(screen)
	}

	b := screen.Bounds()
	a.trans.emit(&a.overlay, float64(b.Dx()), float64(b.Dy()))
	a.overlay.submit(screen, BlendNormal)

	if a.showFPS {
		drawFPS(screen)
	}
}

// Layout reports the logical screen size. The window is resizable and the
// scene re-projects on every size change, so the outside size is used as is.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run opens a window and runs the experience until the window closes or
// Stop is called.
func Run(cfg RunConfig) error {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 1280
	}
	if h <= 0 {
		h = 720
	}
	title := cfg.Title
	if title == "" {
		title = "ORRERY"
	}

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(NewApp(cfg))
}
