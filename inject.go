package orrery

// syntheticEvent is a single injected input tick. Screen coordinates are
// used, matching what real device input produces, and fed through the same
// pointer state machine.
type syntheticEvent struct {
	x, y    float64
	pressed bool
	wheelY  float64
	useLast bool // keep the previous pointer position (wheel-only events)
}

// InjectMove queues a pointer move to the given screen coordinates with the
// button up. Consumed on the next tick's input processing.
func (i *Input) InjectMove(x, y float64) {
	i.injectQueue = append(i.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectPress queues a pointer press at the given screen coordinates.
func (i *Input) InjectPress(x, y float64) {
	i.injectQueue = append(i.injectQueue, syntheticEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (i *Input) InjectRelease(x, y float64) {
	i.injectQueue = append(i.injectQueue, syntheticEvent{x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release at
// the same screen coordinates. Consumes two ticks.
func (i *Input) InjectClick(x, y float64) {
	i.InjectPress(x, y)
	i.InjectRelease(x, y)
}

// InjectWheel queues a wheel delta at the current pointer position.
func (i *Input) InjectWheel(deltaY float64) {
	i.injectQueue = append(i.injectQueue, syntheticEvent{wheelY: deltaY, useLast: true})
}

// processInjected pops one event from the inject queue and feeds it through
// the pointer state machine. Returns true if an event was consumed (real
// device input is skipped for that tick).
func (i *Input) processInjected(cam *Camera) bool {
	if len(i.injectQueue) == 0 {
		return false
	}
	evt := i.injectQueue[0]
	copy(i.injectQueue, i.injectQueue[1:])
	i.injectQueue = i.injectQueue[:len(i.injectQueue)-1]

	x, y := evt.x, evt.y
	if evt.useLast {
		x, y = i.lastX, i.lastY
		evt.pressed = i.prevPressed
	}
	i.step(cam, x, y, evt.pressed, evt.wheelY)
	return true
}
