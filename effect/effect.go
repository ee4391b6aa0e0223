// Package effect implements the hover inertia effect: a tracker that records
// the pointer delta over a container, and per-media hover handlers that play
// a short displacement and rotation wobble on the media's image, seeded by
// that delta.
//
//	fx := effect.Mount(scene, grid, effect.DefaultOptions())
//	defer fx.Unmount()
package effect

import (
	"strings"

	"github.com/phanxgames/hovergrid"
)

// MediaPrefix is the node name prefix the default selector looks for.
const MediaPrefix = "media"

// Options configures an Effect. Start from DefaultOptions.
type Options struct {
	Params Params

	// Angles picks the rotation peak for each hover. Nil uses math/rand/v2.
	Angles AngleSource

	// IsMedia selects the nodes that get a hover handler. Nil selects nodes
	// whose name starts with MediaPrefix.
	IsMedia func(*hovergrid.Node) bool

	// OnSequence, if set, is called with every sequence right after it starts.
	OnSequence func(media *hovergrid.Node, seq *Sequence)
}

// DefaultOptions returns options with DefaultParams and the default selector.
func DefaultOptions() Options {
	return Options{Params: DefaultParams()}
}

// IsMediaNode is the default media selector.
func IsMediaNode(n *hovergrid.Node) bool {
	return strings.HasPrefix(n.Name, MediaPrefix)
}

// InnerImage returns the first sprite below media, or nil when it has none.
func InnerImage(media *hovergrid.Node) *hovergrid.Node {
	return media.FindFirst(func(n *hovergrid.Node) bool {
		return n.Type == hovergrid.NodeTypeSprite
	})
}

// hoverHandler plays a sequence on one media node when the pointer enters it.
type hoverHandler struct {
	fx     *Effect
	state  *Displacement
	media  *hovergrid.Node
	handle hovergrid.CallbackHandle
}

func (h *hoverHandler) enter(hovergrid.PointerContext) {
	img := InnerImage(h.media)
	if img == nil {
		return
	}
	fx := h.fx
	dx, dy := h.state.Snapshot()
	angle := fx.angles(fx.params.RotationMin, fx.params.RotationMax)
	seq := BuildSequence(img, dx, dy, angle, fx.params)
	fx.scene.Play(seq.Timeline)
	if fx.onSequence != nil {
		fx.onSequence(h.media, seq)
	}
}

// Effect is one mounted instance of the hover effect on a container.
type Effect struct {
	scene      *hovergrid.Scene
	container  *hovergrid.Node
	state      *Displacement
	params     Params
	angles     AngleSource
	onSequence func(*hovergrid.Node, *Sequence)

	move     hovergrid.CallbackHandle
	handlers map[*hovergrid.Node]*hoverHandler
	mounted  bool
}

// Mount registers a move listener on container and an enter listener on
// every media node below it. A nil scene or container yields an inert
// Effect whose Unmount does nothing.
func Mount(scene *hovergrid.Scene, container *hovergrid.Node, opts Options) *Effect {
	fx := &Effect{
		scene:      scene,
		container:  container,
		state:      &Displacement{},
		params:     withDefaultEases(opts.Params),
		angles:     opts.Angles,
		onSequence: opts.OnSequence,
		handlers:   make(map[*hovergrid.Node]*hoverHandler),
	}
	if scene == nil || container == nil {
		return fx
	}
	if fx.angles == nil {
		fx.angles = RandomAngles(nil)
	}
	isMedia := opts.IsMedia
	if isMedia == nil {
		isMedia = IsMediaNode
	}

	state := fx.state
	fx.move = scene.Listen(hovergrid.EventPointerMove, container, func(ctx hovergrid.PointerContext) {
		state.Track(ctx.GlobalX, ctx.GlobalY)
	})

	for _, media := range container.FindAll(isMedia) {
		h := &hoverHandler{fx: fx, state: state, media: media}
		h.handle = scene.Listen(hovergrid.EventPointerEnter, media, h.enter)
		fx.handlers[media] = h
	}
	fx.mounted = true
	return fx
}

// withDefaultEases fills unset easing curves from DefaultParams.
func withDefaultEases(p Params) Params {
	def := DefaultParams()
	if p.OutEase == nil {
		p.OutEase = def.OutEase
	}
	if p.ReturnEase == nil {
		p.ReturnEase = def.ReturnEase
	}
	if p.RotationEase == nil {
		p.RotationEase = def.RotationEase
	}
	return p
}

// Unmount removes every listener registered by Mount and discards the
// displacement state. Sequences already playing run to completion.
func (fx *Effect) Unmount() {
	if !fx.mounted {
		return
	}
	fx.move.Remove()
	for media, h := range fx.handlers {
		h.handle.Remove()
		delete(fx.handlers, media)
	}
	fx.state.Reset()
	fx.mounted = false
}

// Mounted reports whether the effect's listeners are registered.
func (fx *Effect) Mounted() bool {
	return fx.mounted
}

// State returns a copy of the displacement state.
func (fx *Effect) State() Displacement {
	return *fx.state
}

// MediaCount returns the number of media nodes with a live hover handler.
func (fx *Effect) MediaCount() int {
	return len(fx.handlers)
}
