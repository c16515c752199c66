package sprig

import (
	"testing"
)

// interactiveSprite adds a w x h interactable sprite at (x, y).
func interactiveSprite(s *Scene, name string, x, y float64, w, h uint16) *Node {
	n := NewSprite(name, region(w, h))
	n.X, n.Y = x, y
	n.Interactable = true
	s.Root().AddChild(n)
	refresh(s.root)
	return n
}

type recordedStore struct {
	events []InteractionEvent
}

func (r *recordedStore) EmitEvent(e InteractionEvent) { r.events = append(r.events, e) }

func TestHitShapes(t *testing.T) {
	r := HitRect{X: -5, Y: -5, Width: 10, Height: 10}
	if !r.Contains(0, 0) || r.Contains(6, 0) {
		t.Error("HitRect bounds wrong")
	}
	c := HitCircle{Radius: 5}
	if !c.Contains(3, 4) || c.Contains(4, 4) {
		t.Error("HitCircle bounds wrong")
	}
}

func TestHitTestTopmost(t *testing.T) {
	s := NewScene()
	under := interactiveSprite(s, "under", 0, 0, 50, 50)
	over := interactiveSprite(s, "over", 10, 10, 20, 20)

	if got := s.hitTest(15, 15); got != over {
		t.Errorf("hit = %v, want over", got)
	}
	if got := s.hitTest(45, 45); got != under {
		t.Errorf("hit = %v, want under", got)
	}
	if got := s.hitTest(100, 100); got != nil {
		t.Errorf("hit = %v, want nil", got)
	}
}

func TestHitTestSkipsNonInteractable(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "n", 0, 0, 10, 10)
	n.Interactable = false
	if s.hitTest(5, 5) != nil {
		t.Error("non-interactable nodes should not be hit")
	}
}

func TestHitTestUsesHitShape(t *testing.T) {
	s := NewScene()
	n := NewContainer("zone")
	n.Interactable = true
	n.HitShape = HitCircle{CenterX: 50, CenterY: 50, Radius: 10}
	s.Root().AddChild(n)
	refresh(s.root)

	if s.hitTest(55, 55) != n {
		t.Error("expected hit inside circle")
	}
	if s.hitTest(65, 65) != nil {
		t.Error("expected miss outside circle")
	}
}

func TestClickFiresOnReleaseOverSameNode(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "btn", 0, 0, 20, 20)
	var clicks []ClickContext
	n.OnClick = func(ctx ClickContext) { clicks = append(clicks, ctx) }

	s.processPointer(5, 5, true, MouseButtonRight, 0)
	s.processPointer(5, 5, false, MouseButtonLeft, 0)

	if len(clicks) != 1 {
		t.Fatalf("clicks = %d, want 1", len(clicks))
	}
	if clicks[0].Button != MouseButtonRight {
		t.Error("button should be fixed at press time")
	}
	if clicks[0].LocalX != 5 || clicks[0].GlobalY != 5 {
		t.Errorf("ctx = %+v", clicks[0])
	}
}

func TestNoClickWhenReleasedElsewhere(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "btn", 0, 0, 20, 20)
	clicked := false
	n.OnClick = func(ClickContext) { clicked = true }

	s.processPointer(5, 5, true, MouseButtonLeft, 0)
	s.processPointer(2, 2, true, MouseButtonLeft, 0)
	s.processPointer(100, 100, false, MouseButtonLeft, 0)

	if clicked {
		t.Error("release off the node should not click")
	}
}

func TestDragSequence(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "handle", 0, 0, 20, 20)
	var seq []string
	var last DragContext
	n.OnDragStart = func(DragContext) { seq = append(seq, "start") }
	n.OnDrag = func(ctx DragContext) { seq = append(seq, "drag"); last = ctx }
	n.OnDragEnd = func(DragContext) { seq = append(seq, "end") }
	n.OnClick = func(ClickContext) { seq = append(seq, "click") }

	s.processPointer(5, 5, true, MouseButtonLeft, 0)
	s.processPointer(7, 5, true, MouseButtonLeft, 0)  // inside dead zone
	s.processPointer(15, 5, true, MouseButtonLeft, 0) // starts drag
	s.processPointer(15, 5, false, MouseButtonLeft, 0)

	want := []string{"start", "drag", "end"}
	if len(seq) != len(want) {
		t.Fatalf("seq = %v, want %v", seq, want)
	}
	for i := range want {
		if seq[i] != want[i] {
			t.Fatalf("seq = %v, want %v", seq, want)
		}
	}
	if last.StartX != 5 || last.DeltaX != 8 {
		t.Errorf("drag ctx = %+v", last)
	}
}

func TestHoverEnterLeave(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "n", 0, 0, 10, 10)
	var seq []string
	n.OnPointerEnter = func(PointerContext) { seq = append(seq, "enter") }
	n.OnPointerLeave = func(PointerContext) { seq = append(seq, "leave") }
	moves := 0
	s.OnPointerMove(func(PointerContext) { moves++ })

	s.processPointer(5, 5, false, MouseButtonLeft, 0)
	s.processPointer(50, 50, false, MouseButtonLeft, 0)
	s.processPointer(50, 50, false, MouseButtonLeft, 0)

	if len(seq) != 2 || seq[0] != "enter" || seq[1] != "leave" {
		t.Errorf("seq = %v", seq)
	}
	if moves != 2 {
		t.Errorf("moves = %d, want 2 (no move without motion)", moves)
	}
}

func TestSceneHandlersAndRemove(t *testing.T) {
	s := NewScene()
	interactiveSprite(s, "n", 0, 0, 10, 10)
	downs := 0
	h := s.OnPointerDown(func(PointerContext) { downs++ })
	ups := 0
	s.OnPointerUp(func(PointerContext) { ups++ })

	s.processPointer(1, 1, true, MouseButtonLeft, 0)
	s.processPointer(1, 1, false, MouseButtonLeft, 0)
	h.Remove()
	h.Remove()
	s.processPointer(1, 1, true, MouseButtonLeft, 0)
	s.processPointer(1, 1, false, MouseButtonLeft, 0)

	if downs != 1 || ups != 2 {
		t.Errorf("downs=%d ups=%d, want 1 and 2", downs, ups)
	}
}

func TestSceneHandlersFireOnEmptySpace(t *testing.T) {
	s := NewScene()
	got := &Node{}
	s.OnPointerDown(func(ctx PointerContext) { got = ctx.Node })
	s.processPointer(1, 1, true, MouseButtonLeft, 0)
	if got != nil {
		t.Error("empty-space press should report a nil node")
	}
}

func TestCaptureRoutesToNode(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "n", 0, 0, 10, 10)
	downs := 0
	n.OnPointerDown = func(PointerContext) { downs++ }
	s.CapturePointer(n)

	s.processPointer(500, 500, true, MouseButtonLeft, 0)
	s.processPointer(500, 500, false, MouseButtonLeft, 0)
	if downs != 1 {
		t.Errorf("downs = %d, want 1", downs)
	}
	if s.captured != nil {
		t.Error("release should drop capture")
	}
}

func TestEntityStoreReceivesEvents(t *testing.T) {
	s := NewScene()
	store := &recordedStore{}
	s.SetEntityStore(store)
	n := interactiveSprite(s, "n", 0, 0, 10, 10)
	interactiveSprite(s, "anon", 20, 0, 10, 10)
	n.EntityID = 42

	s.processPointer(5, 5, true, MouseButtonLeft, ModShift)
	s.processPointer(5, 5, false, MouseButtonLeft, ModShift)
	s.processPointer(25, 5, true, MouseButtonLeft, 0)

	var types []EventType
	for _, e := range store.events {
		if e.EntityID != 42 {
			t.Errorf("event for entity %d", e.EntityID)
		}
		types = append(types, e.Type)
	}
	want := []EventType{EventPointerEnter, EventPointerDown, EventClick, EventPointerUp, EventPointerLeave}
	if len(types) != len(want) {
		t.Fatalf("types = %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("types = %v, want %v", types, want)
		}
	}
	if store.events[1].Modifiers != ModShift {
		t.Error("modifiers should be forwarded")
	}
}

func TestMouseState(t *testing.T) {
	s := NewScene()
	s.processPointer(30, 40, true, MouseButtonRight, 0)
	m := s.Mouse()
	if m.X != 30 || m.Y != 40 || !m.Down || m.Button != MouseButtonRight {
		t.Errorf("mouse = %+v", m)
	}
	s.processPointer(31, 40, false, MouseButtonLeft, 0)
	if s.Mouse().Down || s.Mouse().X != 31 {
		t.Errorf("mouse = %+v", s.Mouse())
	}
}
