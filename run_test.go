package orrery

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestAppEnterSwapsToSolarScene(t *testing.T) {
	a := NewApp(RunConfig{})
	a.Landing().Camera().SetViewport(800, 600)

	if a.Scene().State() != StateUninitialized {
		t.Fatal("solar scene active before the landing click")
	}

	a.Landing().Input().InjectClick(400, 300)
	a.Update() // press
	a.Update() // release, fires enter, starts the fade

	if !a.trans.Active() {
		t.Fatal("transition not running after the landing click")
	}

	for i := 0; i < 300 && a.trans.Active(); i++ {
		if err := a.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	if a.Scene().State() != StateActive {
		t.Error("solar scene not activated by the transition")
	}
	if a.current != screenSolar {
		t.Error("app still on the landing screen after the transition")
	}
}

func TestAppLandingAnimatesDuringFade(t *testing.T) {
	a := NewApp(RunConfig{})
	a.Landing().Camera().SetViewport(800, 600)

	a.Landing().Input().InjectClick(400, 300)
	a.Update()
	a.Update()
	if !a.trans.Active() {
		t.Fatal("transition not running after the landing click")
	}

	tick := a.landing.tick
	yaw := a.Landing().Camera().Yaw
	for i := 0; i < 5; i++ {
		if err := a.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if a.landing.tick == tick {
		t.Error("landing tick froze while the fade was running")
	}
	if a.Landing().Camera().Yaw == yaw {
		t.Error("landing camera stopped drifting while the fade was running")
	}
}

func TestAppStop(t *testing.T) {
	a := NewApp(RunConfig{})
	if err := a.Update(); err != nil {
		t.Fatalf("Update before Stop: %v", err)
	}
	a.Stop()
	if err := a.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after Stop = %v, want ebiten.Termination", err)
	}
}

func TestAppCustomSystem(t *testing.T) {
	sys := testSystem()
	a := NewApp(RunConfig{System: &sys})
	if got := len(a.Scene().Bodies()); got != 0 {
		t.Fatalf("bodies before Init = %d, want 0", got)
	}
	a.Scene().Init()
	if got := len(a.Scene().Bodies()); got != 1 {
		t.Errorf("bodies = %d, want 1", got)
	}
	if a.Scene().Bodies()[0].Name != "Kepler" {
		t.Errorf("body name = %q, want Kepler", a.Scene().Bodies()[0].Name)
	}
}

func TestAppLayoutFollowsWindow(t *testing.T) {
	a := NewApp(RunConfig{})
	w, h := a.Layout(1024, 768)
	if w != 1024 || h != 768 {
		t.Errorf("Layout(1024, 768) = (%d, %d), want the outside size", w, h)
	}
}
