package sprig

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultDragDeadZone = 4.0 // pixels

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return Rect(r).Contains(x, y)
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node // last node the pointer was hovering over (for enter/leave)
	dragging  bool
	button    MouseButton // button captured at press time
}

// MouseState is the pointer as the scene last processed it, in world
// coordinates. Injected events update it the same way real input does.
type MouseState struct {
	X, Y     float64
	Down     bool
	Button   MouseButton
	Dragging bool
}

// Mouse returns the last processed pointer state.
func (s *Scene) Mouse() MouseState {
	ps := &s.pointer
	return MouseState{X: ps.lastX, Y: ps.lastY, Down: ps.down, Button: ps.button, Dragging: ps.dragging}
}

// --- Handler registry ---

type handler[C any] struct {
	id uint32
	fn func(C)
}

func removeHandler[C any](s []handler[C], id uint32) []handler[C] {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = handler[C]{}
			return s[:len(s)-1]
		}
	}
	return s
}

type handlerRegistry struct {
	pointerDown  []handler[PointerContext]
	pointerUp    []handler[PointerContext]
	pointerMove  []handler[PointerContext]
	pointerEnter []handler[PointerContext]
	pointerLeave []handler[PointerContext]
	click        []handler[ClickContext]
	dragStart    []handler[DragContext]
	drag         []handler[DragContext]
	dragEnd      []handler[DragContext]
	nextID       uint32
}

// pointerList returns the registry slot for a pointer-typed event.
func (r *handlerRegistry) pointerList(e EventType) *[]handler[PointerContext] {
	switch e {
	case EventPointerDown:
		return &r.pointerDown
	case EventPointerUp:
		return &r.pointerUp
	case EventPointerMove:
		return &r.pointerMove
	case EventPointerEnter:
		return &r.pointerEnter
	case EventPointerLeave:
		return &r.pointerLeave
	case EventClick:
		return &r.click
	}
	return nil
}

func (r *handlerRegistry) dragList(e EventType) *[]handler[DragContext] {
	switch e {
	case EventDragStart:
		return &r.dragStart
	case EventDrag:
		return &r.drag
	case EventDragEnd:
		return &r.dragEnd
	}
	return nil
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	if l := h.reg.pointerList(h.event); l != nil {
		*l = removeHandler(*l, h.id)
	} else if l := h.reg.dragList(h.event); l != nil {
		*l = removeHandler(*l, h.id)
	}
}

func (s *Scene) onPointer(e EventType, fn func(PointerContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	l := s.handlers.pointerList(e)
	*l = append(*l, handler[PointerContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: e}
}

func (s *Scene) onDrag(e EventType, fn func(DragContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	l := s.handlers.dragList(e)
	*l = append(*l, handler[DragContext]{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: e}
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.onPointer(EventPointerDown, fn)
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.onPointer(EventPointerUp, fn)
}

// OnPointerMove registers a scene-level callback for hover moves.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.onPointer(EventPointerMove, fn)
}

// OnPointerEnter registers a scene-level callback fired when the pointer
// moves over a new node.
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	return s.onPointer(EventPointerEnter, fn)
}

// OnPointerLeave registers a scene-level callback fired when the pointer
// leaves a node.
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	return s.onPointer(EventPointerLeave, fn)
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	return s.onPointer(EventClick, fn)
}

// OnDragStart registers a scene-level callback for drag start events.
func (s *Scene) OnDragStart(fn func(DragContext)) CallbackHandle {
	return s.onDrag(EventDragStart, fn)
}

// OnDrag registers a scene-level callback for drag events.
func (s *Scene) OnDrag(fn func(DragContext)) CallbackHandle {
	return s.onDrag(EventDrag, fn)
}

// OnDragEnd registers a scene-level callback for drag end events.
func (s *Scene) OnDragEnd(fn func(DragContext)) CallbackHandle {
	return s.onDrag(EventDragEnd, fn)
}

// CapturePointer routes all pointer events to node until release.
func (s *Scene) CapturePointer(node *Node) {
	s.captured = node
}

// ReleasePointer stops routing pointer events to a captured node.
func (s *Scene) ReleasePointer() {
	s.captured = nil
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Hit testing ---

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives bounds from node dimensions.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order (DFS, ZIndex-sorted),
// appending hit-testable nodes to buf. Skips Visible=false or
// Interactable=false subtrees.
func (s *Scene) collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	if len(n.children) == 0 {
		return buf
	}
	children := n.children
	if !n.childrenSorted {
		s.rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		buf = s.collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = s.collectInteractable(s.root, s.hitBuf[:0])
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

func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update to handle mouse input. A queued
// injected event replaces real input for that frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	s.processPointer(float64(mx), float64(my), pressed, button, readModifiers())
}

// processPointer runs the pointer state machine.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointer

	target := s.captured
	if target == nil {
		target = s.hitTest(wx, wy)
	}

	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, wx, wy, button, mods)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, wx, wy, button, mods)
		}
		ps.hoverNode = target
	}

	switch {
	case pressed && !ps.down:
		// The button is fixed for the duration of this interaction.
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.hitNode = target
		ps.dragging = false
		s.firePointer(EventPointerDown, target, wx, wy, ps.button, mods)

	case !pressed && ps.down:
		if ps.dragging {
			s.fireDrag(EventDragEnd, ps.hitNode, wx, wy, ps, wx-ps.lastX, wy-ps.lastY, mods)
		} else if ps.hitNode != nil && ps.hitNode == target {
			s.firePointer(EventClick, target, wx, wy, ps.button, mods)
		}
		s.firePointer(EventPointerUp, target, wx, wy, ps.button, mods)

		s.captured = nil
		ps.down = false
		ps.hitNode = nil
		ps.dragging = false
		ps.lastX, ps.lastY = wx, wy

	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
					s.fireDrag(EventDragStart, ps.hitNode, wx, wy, ps, wx-ps.startX, wy-ps.startY, mods)
				}
			}
			if ps.dragging {
				s.fireDrag(EventDrag, ps.hitNode, wx, wy, ps, wx-ps.lastX, wy-ps.lastY, mods)
			}
		}
		ps.lastX, ps.lastY = wx, wy

	default:
		if wx != ps.lastX || wy != ps.lastY {
			s.firePointer(EventPointerMove, target, wx, wy, button, mods)
			ps.lastX, ps.lastY = wx, wy
		}
	}
}

// --- Event dispatch ---

func pointerContext(node *Node, wx, wy float64, button MouseButton, mods KeyModifiers) PointerContext {
	ctx := PointerContext{Node: node, GlobalX: wx, GlobalY: wy, Button: button, Modifiers: mods}
	if node != nil {
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	return ctx
}

// nodePointerCallback returns the per-node callback for a pointer-typed event.
func nodePointerCallback(n *Node, e EventType) func(PointerContext) {
	switch e {
	case EventPointerDown:
		return n.OnPointerDown
	case EventPointerUp:
		return n.OnPointerUp
	case EventPointerMove:
		return n.OnPointerMove
	case EventPointerEnter:
		return n.OnPointerEnter
	case EventPointerLeave:
		return n.OnPointerLeave
	case EventClick:
		return n.OnClick
	}
	return nil
}

func nodeDragCallback(n *Node, e EventType) func(DragContext) {
	switch e {
	case EventDragStart:
		return n.OnDragStart
	case EventDrag:
		return n.OnDrag
	case EventDragEnd:
		return n.OnDragEnd
	}
	return nil
}

// firePointer runs scene-level handlers, then the node callback, then the
// ECS bridge.
func (s *Scene) firePointer(e EventType, node *Node, wx, wy float64, button MouseButton, mods KeyModifiers) {
	ctx := pointerContext(node, wx, wy, button, mods)
	for _, h := range *s.handlers.pointerList(e) {
		h.fn(ctx)
	}
	if node != nil {
		if fn := nodePointerCallback(node, e); fn != nil {
			fn(ctx)
		}
	}
	s.emitInteractionEvent(e, DragContext{PointerContext: ctx})
}

func (s *Scene) fireDrag(e EventType, node *Node, wx, wy float64, ps *pointerState, dx, dy float64, mods KeyModifiers) {
	ctx := DragContext{
		PointerContext: pointerContext(node, wx, wy, ps.button, mods),
		StartX:         ps.startX,
		StartY:         ps.startY,
		DeltaX:         dx,
		DeltaY:         dy,
	}
	for _, h := range *s.handlers.dragList(e) {
		h.fn(ctx)
	}
	if node != nil {
		if fn := nodeDragCallback(node, e); fn != nil {
			fn(ctx)
		}
	}
	s.emitInteractionEvent(e, ctx)
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(e EventType, ctx DragContext) {
	if s.store == nil || ctx.Node == nil || ctx.EntityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:      e,
		EntityID:  ctx.EntityID,
		GlobalX:   ctx.GlobalX,
		GlobalY:   ctx.GlobalY,
		LocalX:    ctx.LocalX,
		LocalY:    ctx.LocalY,
		Button:    ctx.Button,
		Modifiers: ctx.Modifiers,
		StartX:    ctx.StartX,
		StartY:    ctx.StartY,
		DeltaX:    ctx.DeltaX,
		DeltaY:    ctx.DeltaY,
	})
}
