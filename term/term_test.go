package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func setup(t *testing.T) (tcell.SimulationScreen, *Frontend) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	g := game.New(motion.NewClock(), game.DefaultConfig(), nil, zap.NewNop())
	t.Cleanup(g.Dispose)
	return screen, New(screen, g, 30, zap.NewNop())
}

func cell(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestCellMapping(t *testing.T) {
	_, f := setup(t)

	x, y := f.ToCell(motion.V(100, 100))
	assert.Equal(t, 25, x)
	assert.Equal(t, 13, y)

	v := f.ToArena(0, 0)
	assert.Equal(t, motion.V(2, 3.75), v)

	x, y = f.ToCell(f.ToArena(79, 23))
	assert.Equal(t, 79, x)
	assert.Equal(t, 23, y)
}

func TestMouseEdgesBecomeClicks(t *testing.T) {
	_, f := setup(t)

	assert.True(t, f.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonPrimary, tcell.ModNone)))
	assert.True(t, f.HandleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonPrimary, tcell.ModNone)))
	require.NotNil(t, f.left)
	assert.Equal(t, f.ToArena(10, 5), *f.left, "held button does not click again")
	assert.Equal(t, f.ToArena(12, 5), *f.hover)

	f.HandleEvent(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	f.HandleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonSecondary, tcell.ModNone))
	require.NotNil(t, f.right)

	f.Step(motion.Rate)
	assert.Nil(t, f.left)
	assert.Nil(t, f.right)
	assert.Equal(t, 1, f.game.Waypoints.Len())
	assert.Equal(t, 1, f.game.Projectiles.Len())
	assert.Equal(t, f.ToArena(40, 12), f.game.Cursor.Pos.Vec())
}

func TestQuitKeys(t *testing.T) {
	_, f := setup(t)
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), false},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), false},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.HandleEvent(tt.ev))
		})
	}
}

func TestDraw(t *testing.T) {
	screen, f := setup(t)
	f.game.Waypoint(motion.V(300, 20))
	f.Draw()

	assert.Equal(t, glyphPlayer, cell(screen, 25, 13), "player draws over the enemy")
	wx, wy := f.ToCell(motion.V(300, 20))
	assert.Equal(t, glyphWaypoint, cell(screen, wx, wy))

	label := f.game.Level.Label()
	for i, r := range label {
		assert.Equal(t, r, cell(screen, 1+i, 0))
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	screen, f := setup(t)
	errc := make(chan error, 1)
	go func() { errc <- f.Run(context.Background()) }()

	time.Sleep(150 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("run did not stop")
	}
	assert.Positive(t, f.game.Clock.Count())
}

func TestRunStopsOnCancel(t *testing.T) {
	_, f := setup(t)
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.Run(ctx), context.DeadlineExceeded)
}
