package ecs

import (
	"github.com/phanxgames/hovergrid"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for hovergrid pointer events.
// Subscribe to this in your ECS systems to receive move, enter and leave events.
var InteractionEventType = events.NewEventType[hovergrid.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) hovergrid.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event hovergrid.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
