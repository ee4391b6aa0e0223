package ecs

import (
	"github.com/phanxgames/hovergrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// HoverStats is the per-node component fed by pointer-enter events.
type HoverStats struct {
	Name   string
	Hovers int
}

// HoverStatsComponent is the Donburi component type for HoverStats.
var HoverStatsComponent = donburi.NewComponentType[HoverStats]()

// HoverTracker counts pointer enters per node through a Donburi world.
type HoverTracker struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	handles  []hovergrid.CallbackHandle
}

// TrackHovers creates an entity for every node and sets the node's EntityID.
// Enters are counted per subtree: moving between a node and its children
// does not count again. Call Process once per frame to apply queued events.
func TrackHovers(scene *hovergrid.Scene, world donburi.World, nodes []*hovergrid.Node) *HoverTracker {
	ht := &HoverTracker{world: world, entities: make(map[uint32]donburi.Entity, len(nodes))}

	for _, n := range nodes {
		e := world.Create(HoverStatsComponent)
		HoverStatsComponent.SetValue(world.Entry(e), HoverStats{Name: n.Name})
		n.EntityID = uint32(e.Id())
		ht.entities[n.EntityID] = e

		id := n.EntityID
		h := scene.Listen(hovergrid.EventPointerEnter, n, func(ctx hovergrid.PointerContext) {
			InteractionEventType.Publish(world, hovergrid.InteractionEvent{
				Type:     hovergrid.EventPointerEnter,
				EntityID: id,
				GlobalX:  ctx.GlobalX,
				GlobalY:  ctx.GlobalY,
				LocalX:   ctx.LocalX,
				LocalY:   ctx.LocalY,
			})
		})
		ht.handles = append(ht.handles, h)
	}

	InteractionEventType.Subscribe(world, ht.onEvent)
	return ht
}

func (ht *HoverTracker) onEvent(w donburi.World, ev hovergrid.InteractionEvent) {
	if ev.Type != hovergrid.EventPointerEnter {
		return
	}
	if e, ok := ht.entities[ev.EntityID]; ok && w.Valid(e) {
		HoverStatsComponent.Get(w.Entry(e)).Hovers++
	}
}

// Process delivers every queued event in the world.
func (ht *HoverTracker) Process() {
	events.ProcessAllEvents(ht.world)
}

// Stop removes the enter listeners. Counters keep their values.
func (ht *HoverTracker) Stop() {
	for _, h := range ht.handles {
		h.Remove()
	}
	ht.handles = nil
}

// Stats returns the stats of every tracked node.
func (ht *HoverTracker) Stats() []HoverStats {
	var out []HoverStats
	HoverStatsComponent.Each(ht.world, func(entry *donburi.Entry) {
		out = append(out, *HoverStatsComponent.Get(entry))
	})
	return out
}

// Hovers returns the enter count of the node with entity id, or 0.
func (ht *HoverTracker) Hovers(id uint32) int {
	e, ok := ht.entities[id]
	if !ok || !ht.world.Valid(e) {
		return 0
	}
	return HoverStatsComponent.Get(ht.world.Entry(e)).Hovers
}
