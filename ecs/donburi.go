package ecs

import (
	"github.com/phanxgames/controls"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ControlEventType is the Donburi event type for controls notifications.
// Subscribe to this in your ECS systems to react to camera changes.
var ControlEventType = events.NewEventType[controls.ControlEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Notifications are published to ControlEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiStore(world donburi.World) controls.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event controls.ControlEvent) {
	ControlEventType.Publish(s.world, event)
}
