package orrery

import (
	"encoding/json"
	"fmt"
)

// ScriptStep is one scripted interaction. Op selects the action; the other
// fields are read depending on it.
//
//	move    pointer move to X, Y
//	press   button press at X, Y
//	release button release at X, Y
//	click   press and release at X, Y
//	wheel   wheel delta of Delta at the current pointer position
//	wait    run Ticks plain update ticks
type ScriptStep struct {
	Op    string  `json:"op"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Delta float64 `json:"delta,omitempty"`
	Ticks int     `json:"ticks,omitempty"`
}

// Script is a JSON-described interaction sequence. Scripts drive a scene
// through the same injection path as tests, so a recorded session replays
// deterministically.
type Script struct {
	Steps []ScriptStep `json:"steps"`
}

// ParseScript decodes and validates a JSON script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("orrery: parse script: %w", err)
	}
	for i, st := range s.Steps {
		switch st.Op {
		case "move", "press", "release", "click", "wheel":
		case "wait":
			if st.Ticks <= 0 {
				return nil, fmt.Errorf("orrery: script step %d: wait needs ticks > 0", i)
			}
		default:
			return nil, fmt.Errorf("orrery: script step %d: unknown op %q", i, st.Op)
		}
	}
	return &s, nil
}

// ScriptRunner feeds a script into a scene one step at a time.
type ScriptRunner struct {
	script  *Script
	idx     int
	waiting int
}

// NewScriptRunner creates a runner positioned at the script's first step.
func NewScriptRunner(s *Script) *ScriptRunner {
	return &ScriptRunner{script: s}
}

// Done reports whether every step has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.waiting == 0 && r.idx >= len(r.script.Steps)
}

// Step injects the next scripted action and runs one scene tick.
// No-op once the script is done.
func (r *ScriptRunner) Step(s *Scene) {
	if r.waiting > 0 {
		r.waiting--
		s.Update()
		return
	}
	if r.idx >= len(r.script.Steps) {
		return
	}
	st := r.script.Steps[r.idx]
	r.idx++

	in := s.Input()
	switch st.Op {
	case "move":
		in.InjectMove(st.X, st.Y)
	case "press":
		in.InjectPress(st.X, st.Y)
	case "release":
		in.InjectRelease(st.X, st.Y)
	case "click":
		in.InjectClick(st.X, st.Y)
	case "wheel":
		in.InjectWheel(st.Delta)
	case "wait":
		r.waiting = st.Ticks - 1
	}
	s.Update()
}

// RunAll steps until the script is exhausted. A click step queues two
// synthetic events, so RunAll keeps ticking until the inject queue drains.
func (r *ScriptRunner) RunAll(s *Scene) {
	for !r.Done() {
		r.Step(s)
	}
	for len(s.Input().injectQueue) > 0 {
		s.Update()
	}
}
