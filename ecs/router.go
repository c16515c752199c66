package ecs

import (
	"github.com/phanxgames/sprig"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Clicks tallies clicks delivered to a registered node.
type Clicks struct {
	Name        string
	Left, Right int
	Last        sprig.Vec2
}

// ClickComponent holds the Clicks of every registered node.
var ClickComponent = donburi.NewComponentType[Clicks]()

var clickables = donburi.NewQuery(filter.Contains(ClickComponent))

// Router turns click events on registered nodes into pointer input. Left
// and right clicks are kept separately; only the latest of each survives
// until Take.
type Router struct {
	world    donburi.World
	entities map[uint32]donburi.Entity
	nextID   uint32
	left     *sprig.Vec2
	right    *sprig.Vec2
}

// NewRouter subscribes a router to InteractionEventType on world.
func NewRouter(world donburi.World) *Router {
	r := &Router{world: world, entities: make(map[uint32]donburi.Entity)}
	InteractionEventType.Subscribe(world, r.handle)
	return r
}

// Register creates an entity for node and stamps its EntityID so the scene
// reports interactions on it.
func (r *Router) Register(node *sprig.Node) donburi.Entity {
	r.nextID++
	e := r.world.Create(ClickComponent)
	ClickComponent.Get(r.world.Entry(e)).Name = node.Name
	r.entities[r.nextID] = e
	node.EntityID = r.nextID
	return e
}

// Unregister removes the entity behind node and clears its EntityID.
func (r *Router) Unregister(node *sprig.Node) {
	e, ok := r.entities[node.EntityID]
	if !ok {
		return
	}
	delete(r.entities, node.EntityID)
	if r.world.Valid(e) {
		r.world.Remove(e)
	}
	node.EntityID = 0
}

func (r *Router) handle(w donburi.World, ev sprig.InteractionEvent) {
	if ev.Type != sprig.EventClick {
		return
	}
	e, ok := r.entities[ev.EntityID]
	if !ok || !w.Valid(e) {
		return
	}
	c := ClickComponent.Get(w.Entry(e))
	at := sprig.Vec2{X: ev.GlobalX, Y: ev.GlobalY}
	c.Last = at
	switch ev.Button {
	case sprig.MouseButtonLeft:
		c.Left++
		r.left = &at
	case sprig.MouseButtonRight:
		c.Right++
		r.right = &at
	}
}

// Flush delivers queued interaction events to subscribers.
func (r *Router) Flush() {
	InteractionEventType.ProcessEvents(r.world)
}

// Take returns and clears the pending left and right clicks.
func (r *Router) Take() (left, right *sprig.Vec2) {
	left, right = r.left, r.right
	r.left, r.right = nil, nil
	return left, right
}

// Totals sums the clicks over every registered entity.
func (r *Router) Totals() (left, right int) {
	clickables.Each(r.world, func(entry *donburi.Entry) {
		c := ClickComponent.Get(entry)
		left += c.Left
		right += c.Right
	})
	return left, right
}

// Clicks returns the tally for a registered node.
func (r *Router) Clicks(node *sprig.Node) (Clicks, bool) {
	e, ok := r.entities[node.EntityID]
	if !ok || !r.world.Valid(e) {
		return Clicks{}, false
	}
	return *ClickComponent.Get(r.world.Entry(e)), true
}
