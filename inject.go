package sprig

// syntheticPointerEvent represents a single injected pointer event in screen
// coordinates, fed through the same state machine as real mouse input.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

func (s *Scene) inject(x, y float64, pressed bool, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: pressed, button: button})
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's processInput call.
func (s *Scene) InjectPress(x, y float64) {
	s.inject(x, y, true, MouseButtonLeft)
}

// InjectMove queues a pointer move with the left button held down. Use it
// between InjectPress and InjectRelease to simulate a drag.
func (s *Scene) InjectMove(x, y float64) {
	s.inject(x, y, true, MouseButtonLeft)
}

// InjectHover queues a pointer move with no button held.
func (s *Scene) InjectHover(x, y float64) {
	s.inject(x, y, false, MouseButtonLeft)
}

// InjectRelease queues a pointer release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.inject(x, y, false, MouseButtonLeft)
}

// InjectClick queues a press followed by a release at the same screen
// coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectRightClick is InjectClick with the right button.
func (s *Scene) InjectRightClick(x, y float64) {
	s.inject(x, y, true, MouseButtonRight)
	s.inject(x, y, false, MouseButtonRight)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// PendingInput returns the number of queued injected events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.pressed, evt.button, 0)
	return true
}
