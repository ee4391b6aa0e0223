package hovergrid

// syntheticPointerEvent is a single injected pointer sample in screen
// coordinates.
type syntheticPointerEvent struct {
	x, y float64
}

// InjectMove queues a pointer sample at (x, y). Queued samples are consumed
// one per frame by Update, in place of the real cursor.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectSweep queues a straight pointer path from (fromX, fromY) to
// (toX, toY) spread over frames samples, both endpoints included.
// Minimum frames is 2.
func (s *Scene) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// PendingInjections returns the number of queued samples.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one queued sample and feeds it through
// processPointer. Returns true if a sample was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y)
	return true
}
