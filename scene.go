package hovergrid

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// Scene is the top-level object that owns the node tree, input state and the
// timelines currently playing.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when A > 0.
	ClearColor Color
	// ScreenshotDir receives PNGs queued with Screenshot.
	ScreenshotDir string

	updateFunc func() error

	// Animation
	timelines []*Timeline
	played    int

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	testRunner *TestRunner
	captures   []capture
	shots      int

	stats debugStats
}

// NewScene creates a new scene with a pre-created, interactable root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// SetUpdateFunc registers fn to run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// Update runs one frame: test runner, input, timelines, then the user
// update function.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	// Refresh world transforms first so hit testing sees this frame's positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	scripted := s.testRunner != nil && !s.testRunner.Done()
	if scripted {
		s.testRunner.step(s)
	}
	s.processInput(scripted)
	s.Advance(dt)

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Advance moves every playing timeline forward by dt seconds, drops the ones
// that finished and refreshes world transforms.
func (s *Scene) Advance(dt float32) {
	// Completion callbacks may Play new timelines; those land in a fresh
	// slice and are appended after the survivors.
	playing := s.timelines
	s.timelines = nil
	n := 0
	for _, tl := range playing {
		tl.Update(dt)
		if !tl.Done {
			playing[n] = tl
			n++
		}
	}
	clear(playing[n:])
	s.timelines = append(playing[:n], s.timelines...)

	updateWorldTransform(s.root, identityTransform, 1.0, false)
}

// Play starts tl on the scene. The scene advances it every frame and lets go
// of it once it completes. Playing a finished or already playing timeline is
// a no-op.
func (s *Scene) Play(tl *Timeline) {
	if tl == nil || tl.Done {
		return
	}
	for _, t := range s.timelines {
		if t == tl {
			return
		}
	}
	s.timelines = append(s.timelines, tl)
	s.played++
	if s.debug {
		logf("play timeline #%d (%d tracks, %.2fs at x%.2f), %d active",
			s.played, len(tl.tracks), tl.Duration(), tl.timeScale, len(s.timelines))
	}
}

// ActiveTimelines returns the number of timelines currently playing.
func (s *Scene) ActiveTimelines() int {
	return len(s.timelines)
}

// Hovered returns the node currently under the pointer, or nil.
func (s *Scene) Hovered() *Node {
	return s.pointer.hoverNode
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and timeline and frame stats are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
