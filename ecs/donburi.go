package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for sprig interaction events.
var InteractionEventType = events.NewEventType[sprig.InteractionEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Events are queued on InteractionEventType until ProcessEvents runs.
func NewDonburiStore(world donburi.World) sprig.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event sprig.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}
