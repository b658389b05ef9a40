package orrery

import (
	"testing"
)

func TestParseScriptRejectsBadSteps(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"unknown op", `{"steps":[{"op":"teleport","x":1}]}`},
		{"wait without ticks", `{"steps":[{"op":"wait"}]}`},
		{"negative wait", `{"steps":[{"op":"wait","ticks":-3}]}`},
		{"malformed json", `{"steps":[`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.json)); err == nil {
				t.Error("ParseScript accepted a bad script")
			}
		})
	}
}

func TestParseScriptAcceptsAllOps(t *testing.T) {
	script := `{"steps":[
		{"op":"move","x":100,"y":100},
		{"op":"press","x":100,"y":100},
		{"op":"release","x":100,"y":100},
		{"op":"click","x":200,"y":200},
		{"op":"wheel","delta":120},
		{"op":"wait","ticks":5}
	]}`
	s, err := ParseScript([]byte(script))
	if err != nil {
		t.Fatalf("ParseScript: %v", err)
	}
	if len(s.Steps) != 6 {
		t.Fatalf("steps = %d, want 6", len(s.Steps))
	}
}

func TestScriptRunnerDrivesScene(t *testing.T) {
	scene := activeTestScene(t)
	body := scene.Bodies()[0]
	sx, sy, _, ok := scene.Camera().Project(body.Position())
	if !ok {
		t.Fatal("test body not projectable")
	}

	events := 0
	scene.OnSelect(func(SelectionEvent) { events++ })

	// The click comes first: zooming moves the body's projected position,
	// so its pixel is only valid at the starting distance.
	script := &Script{Steps: []ScriptStep{
		{Op: "click", X: sx, Y: sy},
		{Op: "wheel", Delta: 1000},
		{Op: "wheel", Delta: 1000},
	}}
	r := NewScriptRunner(script)
	r.RunAll(scene)

	if !r.Done() {
		t.Fatal("runner not done after RunAll")
	}
	if got := scene.Camera().Distance(); got != 1500 {
		t.Errorf("distance = %v after scripted wheels, want 1500 (clamped)", got)
	}
	if events != 1 {
		t.Errorf("selection events = %d, want 1", events)
	}
}

func TestScriptRunnerWaitTicks(t *testing.T) {
	scene := activeTestScene(t)
	body := scene.Bodies()[0]
	body.Speed = 0.01
	start := body.Angle

	r := NewScriptRunner(&Script{Steps: []ScriptStep{{Op: "wait", Ticks: 100}}})
	steps := 0
	for !r.Done() {
		r.Step(scene)
		steps++
	}
	if steps != 100 {
		t.Errorf("wait consumed %d ticks, want 100", steps)
	}
	if got := body.Angle - start; got < 1.0-1e-9 || got > 1.0+1e-9 {
		t.Errorf("angle advanced by %v over 100 ticks, want 1.0", got)
	}
}
