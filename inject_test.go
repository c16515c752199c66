package sprig

import (
	"testing"
)

func TestInjectClickConsumesTwoFrames(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "btn", 0, 0, 20, 20)
	clicks := 0
	n.OnClick = func(ClickContext) { clicks++ }

	s.InjectClick(10, 10)
	if s.PendingInput() != 2 {
		t.Fatalf("queued = %d, want 2", s.PendingInput())
	}
	if !s.processInjectedInput() || clicks != 0 {
		t.Fatal("press frame should not click")
	}
	if !s.processInjectedInput() || clicks != 1 {
		t.Fatalf("clicks = %d after release, want 1", clicks)
	}
	if s.processInjectedInput() {
		t.Error("empty queue should report no event")
	}
}

func TestInjectRightClick(t *testing.T) {
	s := NewScene()
	n := interactiveSprite(s, "btn", 0, 0, 20, 20)
	var button MouseButton
	n.OnClick = func(ctx ClickContext) { button = ctx.Button }

	s.InjectRightClick(5, 5)
	s.processInjectedInput()
	s.processInjectedInput()

	if button != MouseButtonRight {
		t.Errorf("button = %d, want right", button)
	}
}

func TestInjectDragFrames(t *testing.T) {
	tests := []struct {
		frames, want int
	}{
		{0, 2},
		{2, 2},
		{5, 5},
	}
	for _, tt := range tests {
		s := NewScene()
		s.InjectDrag(0, 0, 40, 0, tt.frames)
		if s.PendingInput() != tt.want {
			t.Errorf("frames=%d: queued %d, want %d", tt.frames, s.PendingInput(), tt.want)
		}
	}
}

func TestInjectDragInterpolates(t *testing.T) {
	s := NewScene()
	s.InjectDrag(0, 0, 40, 20, 5)
	mid := s.injectQueue[2]
	if mid.x != 20 || mid.y != 10 || !mid.pressed {
		t.Errorf("mid = %+v", mid)
	}
	if last := s.injectQueue[4]; last.pressed || last.x != 40 {
		t.Errorf("last = %+v", last)
	}
}

func TestInjectHoverMovesPointer(t *testing.T) {
	s := NewScene()
	s.InjectHover(12, 34)
	s.processInjectedInput()
	if m := s.Mouse(); m.X != 12 || m.Y != 34 || m.Down {
		t.Errorf("mouse = %+v", m)
	}
}
