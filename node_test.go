package sprig

import (
	"testing"
)

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestNewSpriteDefaults(t *testing.T) {
	n := NewSprite("s", TextureRegion{Width: 4, Height: 4})
	if n.Type != NodeTypeSprite {
		t.Errorf("Type = %d, want sprite", n.Type)
	}
	if n.ScaleX != 1 || n.ScaleY != 1 || n.Alpha != 1 {
		t.Error("scale and alpha should default to 1")
	}
	if n.Color != ColorWhite {
		t.Errorf("Color = %v, want white", n.Color)
	}
	if !n.Visible || !n.Renderable || n.Interactable {
		t.Error("sprites start visible, renderable and non-interactable")
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := make(map[uint32]bool)
	for i := 0; i < 100; i++ {
		id := NewContainer("").ID
		if seen[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		seen[id] = true
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewContainer("c")
	a.AddChild(c)
	b.AddChild(c)

	if c.Parent != b {
		t.Error("child should move to b")
	}
	if a.NumChildren() != 0 || b.NumChildren() != 1 {
		t.Errorf("children: a=%d b=%d", a.NumChildren(), b.NumChildren())
	}
}

func TestAddChildPanics(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	root.AddChild(child)

	expectPanic(t, "nil", func() { root.AddChild(nil) })
	expectPanic(t, "self", func() { root.AddChild(root) })
	expectPanic(t, "cycle", func() { child.AddChild(root) })
	expectPanic(t, "index", func() { root.AddChildAt(NewContainer("x"), 5) })
	expectPanic(t, "wrong parent", func() { child.RemoveChild(root) })
}

func TestAddChildAt(t *testing.T) {
	root := NewContainer("root")
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	root.AddChild(a)
	root.AddChild(c)
	root.AddChildAt(b, 1)
	root.AddChildAt(NewContainer("first"), 0)

	var names []string
	for _, ch := range root.Children() {
		names = append(names, ch.Name)
	}
	want := []string{"first", "a", "b", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
}

func TestRemoveChildren(t *testing.T) {
	root := NewContainer("root")
	kids := []*Node{NewContainer("a"), NewContainer("b")}
	for _, k := range kids {
		root.AddChild(k)
	}
	root.RemoveChildren()

	if root.NumChildren() != 0 {
		t.Errorf("NumChildren = %d", root.NumChildren())
	}
	for _, k := range kids {
		if k.Parent != nil || k.IsDisposed() {
			t.Errorf("%s should be detached but alive", k.Name)
		}
	}
}

func TestRemoveFromParentNoOp(t *testing.T) {
	n := NewContainer("lonely")
	n.RemoveFromParent()
	if n.Parent != nil {
		t.Error("expected no parent")
	}
}

func TestDispose(t *testing.T) {
	root := NewContainer("root")
	parent := NewContainer("parent")
	child := NewSprite("child", TextureRegion{})
	child.OnUpdate = func(float64) {}
	root.AddChild(parent)
	parent.AddChild(child)

	parent.Dispose()
	parent.Dispose()

	if root.NumChildren() != 0 {
		t.Error("parent should be removed from root")
	}
	if !parent.IsDisposed() || !child.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if child.OnUpdate != nil || child.ID != 0 {
		t.Error("disposed nodes drop hooks and IDs")
	}
}

func TestDisposedNodePanicsInDebug(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewContainer("gone")
	n.Dispose()
	expectPanic(t, "add disposed", func() { s.Root().AddChild(n) })
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	root := NewContainer("root")
	child := NewContainer("child")
	grandchild := NewContainer("grandchild")
	child.AddChild(grandchild)
	refresh(child)

	root.AddChild(child)
	if !child.transformDirty || !grandchild.transformDirty {
		t.Error("reparenting should dirty the whole subtree")
	}
}

func TestSetZIndexUnsortsParent(t *testing.T) {
	root := NewContainer("root")
	a := NewContainer("a")
	root.AddChild(a)
	root.childrenSorted = true

	a.SetZIndex(0)
	if !root.childrenSorted {
		t.Error("same ZIndex should be a no-op")
	}
	a.SetZIndex(3)
	if root.childrenSorted {
		t.Error("ZIndex change should unsort parent")
	}
}

func TestNodeDimensions(t *testing.T) {
	tests := []struct {
		name string
		n    *Node
		w, h float64
	}{
		{"container", NewContainer("c"), 0, 0},
		{"white pixel", NewSprite("px", TextureRegion{}), 1, 1},
		{"region", NewSprite("r", TextureRegion{Width: 8, Height: 16, OriginalW: 8, OriginalH: 16}), 8, 16},
	}
	for _, tt := range tests {
		w, h := nodeDimensions(tt.n)
		if w != tt.w || h != tt.h {
			t.Errorf("%s: dims = %v,%v want %v,%v", tt.name, w, h, tt.w, tt.h)
		}
	}
}
