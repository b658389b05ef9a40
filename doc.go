// Package orrery renders an interactive miniature solar system for
// [Ebitengine]: an animated starfield landing screen that transitions into
// a scene of clickable orbiting planets, each revealing its description in
// a sliding info panel.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	if err := orrery.Run(orrery.RunConfig{
//		Title: "Orrery", Width: 1280, Height: 720,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// For full control, implement [ebiten.Game] yourself and drive a [Scene]
// directly:
//
//	scene := orrery.NewScene(orrery.DefaultSystem())
//	scene.Init()
//
//	type Game struct{ scene *orrery.Scene }
//
//	func (g *Game) Update() error              { g.scene.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.scene.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// Draw re-projects for the surface it is handed, so resizes need no extra
// plumbing.
//
// # Scene model
//
// A [Scene] owns its [Camera], a fixed set of [Body] values built from a
// [SystemConfig] descriptor table, the orbit rings, the emissive sun, and a
// seeded [Starfield]. A body's location is derived from its orbital angle
// every tick; the angle is the single source of truth, so positions never
// accumulate drift.
//
// Pointer input is normalized by the scene's input adapter: movement becomes
// a parallax target the camera eases toward, the wheel zooms within a
// clamped distance range, and clicks are resolved by casting a ray through
// the pointer and testing it against the planet spheres. Selection handlers
// are explicit subscriptions that can be removed:
//
//	handle := scene.OnSelect(func(ev orrery.SelectionEvent) {
//		fmt.Println("picked", ev.Name)
//	})
//	defer handle.Remove()
//
// Transitions, camera scroll, and the info panel animate via [gween].
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package orrery
