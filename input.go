package hovergrid

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node // hovered node, nil over empty space
	Scope    *Node // scope the listener was registered with, nil for scene-wide
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
}

// --- Per-pointer state ---

type pointerState struct {
	lastX, lastY float64
	seen         bool
	hoverNode    *Node
}

// --- Handler registry ---

// pointerHandler is one registered listener. A nil scope listens scene-wide.
type pointerHandler struct {
	id    uint32
	scope *Node
	fn    func(PointerContext)
}

type handlerRegistry struct {
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	nextID       uint32
}

func (r *handlerRegistry) list(event EventType) *[]pointerHandler {
	switch event {
	case EventPointerMove:
		return &r.pointerMove
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	}
	panic("hovergrid: unknown event type")
}

// count returns the number of live listeners across all event types.
func (r *handlerRegistry) count() int {
	return len(r.pointerMove) + len(r.pointerEnter) + len(r.pointerLeave)
}

// CallbackHandle allows removing a registered listener.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires. Removing twice, or
// removing the zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	list := h.reg.list(h.event)
	*list = removePointerHandler(*list, h.id)
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Registration ---

// Listen registers fn for event, scoped to the subtree rooted at scope.
//
//   - EventPointerMove fires while the hovered node lies inside scope.
//   - EventPointerEnter fires when the hovered node moves from outside scope
//     to inside it.
//   - EventPointerLeave fires on the opposite transition.
//
// A nil scope listens scene-wide: move fires on every movement and
// enter/leave fire whenever the hovered node changes.
func (s *Scene) Listen(event EventType, scope *Node, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	list := s.handlers.list(event)
	*list = append(*list, pointerHandler{id: id, scope: scope, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: event}
}

// OnPointerMove registers a scene-level callback for pointer move events.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.Listen(EventPointerMove, nil, fn)
}

// OnPointerEnter registers a scene-level callback fired when the pointer moves
// over a new node (or from nil to a node).
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.Listen(EventPointerEnter, nil, fn)
}

// OnPointerLeave registers a scene-level callback fired when the pointer leaves
// a node (moves to a different node or to empty space).
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.Listen(EventPointerLeave, nil, fn)
}

// ListenerCount returns the number of registered listeners.
func (s *Scene) ListenerCount() int {
	return s.handlers.count()
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	if n.Type != NodeTypeSprite || (n.Width == 0 && n.Height == 0) {
		return false
	}
	return lx >= 0 && lx <= n.Width && ly >= 0 && ly <= n.Height
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	for _, child := range sortedChildrenOf(n) {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Reverse painter order: topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processInput is called from Scene.Update. Injected samples take priority
// over the real cursor. In scripted frames the real cursor is ignored, so
// the pointer stays where the script last put it.
func (s *Scene) processInput(scripted bool) {
	if s.processInjectedInput() {
		return
	}
	if scripted {
		return
	}
	mx, my := ebiten.CursorPosition()
	s.processPointer(float64(mx), float64(my))
}

// MovePointer feeds a pointer sample at (x, y) through the hover state
// machine immediately, bypassing the cursor and the inject queue.
func (s *Scene) MovePointer(x, y float64) {
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processPointer(x, y)
}

// processPointer runs the hover state machine for the mouse pointer.
// Enter/leave are dispatched before move for the same sample.
func (s *Scene) processPointer(wx, wy float64) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	if target != ps.hoverNode {
		prev := ps.hoverNode
		ps.hoverNode = target
		s.fireLeave(prev, target, wx, wy)
		s.fireEnter(prev, target, wx, wy)
	}

	if !ps.seen || wx != ps.lastX || wy != ps.lastY {
		s.fireMove(target, wx, wy)
		ps.lastX = wx
		ps.lastY = wy
		ps.seen = true
	}
}

// --- Event dispatch ---

func (s *Scene) pointerContext(node, scope *Node, wx, wy float64) PointerContext {
	ctx := PointerContext{Node: node, Scope: scope, GlobalX: wx, GlobalY: wy}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	return ctx
}

// snapshot copies a handler list so listeners may register or remove
// handlers from inside a callback.
func (s *Scene) snapshot(list []pointerHandler) []pointerHandler {
	if len(list) == 0 {
		return nil
	}
	return append([]pointerHandler(nil), list...)
}

func (s *Scene) fireMove(target *Node, wx, wy float64) {
	for _, h := range s.snapshot(s.handlers.pointerMove) {
		if h.scope != nil && !h.scope.Contains(target) {
			continue
		}
		if !s.handlers.live(EventPointerMove, h.id) {
			continue
		}
		h.fn(s.pointerContext(target, h.scope, wx, wy))
	}
	s.emitInteractionEvent(EventPointerMove, target, wx, wy)
}

func (s *Scene) fireEnter(prev, target *Node, wx, wy float64) {
	for _, h := range s.snapshot(s.handlers.pointerEnter) {
		if h.scope == nil {
			if target == nil {
				continue
			}
		} else if !h.scope.Contains(target) || h.scope.Contains(prev) {
			continue
		}
		if !s.handlers.live(EventPointerEnter, h.id) {
			continue
		}
		h.fn(s.pointerContext(target, h.scope, wx, wy))
	}
	s.emitInteractionEvent(EventPointerEnter, target, wx, wy)
}

func (s *Scene) fireLeave(prev, target *Node, wx, wy float64) {
	for _, h := range s.snapshot(s.handlers.pointerLeave) {
		if h.scope == nil {
			if prev == nil {
				continue
			}
		} else if !h.scope.Contains(prev) || h.scope.Contains(target) {
			continue
		}
		if !s.handlers.live(EventPointerLeave, h.id) {
			continue
		}
		h.fn(s.pointerContext(prev, h.scope, wx, wy))
	}
	s.emitInteractionEvent(EventPointerLeave, prev, wx, wy)
}

// live reports whether handler id is still registered for event. A callback
// may remove handlers later in the same dispatch.
func (r *handlerRegistry) live(event EventType, id uint32) bool {
	for _, h := range *r.list(event) {
		if h.id == id {
			return true
		}
	}
	return false
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, wx, wy float64) {
	if s.store == nil || node == nil || node.EntityID == 0 {
		return
	}
	lx, ly := node.WorldToLocal(wx, wy)
	s.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: node.EntityID,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
	})
}
