// Package ecs bridges hovergrid pointer events into a [Donburi] world.
//
// Nodes with a non-zero EntityID report move, enter and leave events:
//
//	store := ecs.NewDonburiStore(world)
//	scene.SetEntityStore(store)
//	ecs.InteractionEventType.Subscribe(world, onHover)
//
// The store reports the node that was hit. [TrackHovers] counts enters per
// subtree instead and publishes them itself, so do not install a store for
// the same nodes in the same world.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
