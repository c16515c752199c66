package ecs

import (
	"testing"

	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []sprig.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(sprig.InteractionEvent{
		Type:     sprig.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   sprig.MouseButtonLeft,
	})
	store.EmitEvent(sprig.InteractionEvent{
		Type:   sprig.EventDrag,
		DeltaX: 3,
	})

	if len(received) != 0 {
		t.Fatal("events should queue until processed")
	}
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != sprig.EventPointerDown || e0.EntityID != 42 {
		t.Errorf("event 0: %+v", e0)
	}
	if e0.GlobalX != 100 || e0.GlobalY != 200 {
		t.Errorf("event 0 position: (%v,%v)", e0.GlobalX, e0.GlobalY)
	}
	if received[1].Type != sprig.EventDrag || received[1].DeltaX != 3 {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		count1++
	})
	InteractionEventType.Subscribe(world, func(w donburi.World, e sprig.InteractionEvent) {
		count2++
	})

	store.EmitEvent(sprig.InteractionEvent{Type: sprig.EventClick})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
