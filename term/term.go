// Package term plays the game in a terminal. The arena is scaled onto the
// cell grid; mouse events become the same pointer snapshots the window
// frontend produces.
package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"go.uber.org/zap"
)

const (
	glyphPlayer     = '@'
	glyphEnemy      = 'E'
	glyphCursor     = '+'
	glyphWaypoint   = 'o'
	glyphProjectile = '*'
)

// Frontend drives a game on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	game   *game.Game
	fps    int
	log    *zap.Logger

	hover       *motion.Vec2
	left, right *motion.Vec2
	buttons     tcell.ButtonMask
}

// New binds g to an initialized screen. fps sets both the step and redraw
// rate.
func New(screen tcell.Screen, g *game.Game, fps int, log *zap.Logger) *Frontend {
	if log == nil {
		log = zap.NewNop()
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()
	return &Frontend{screen: screen, game: g, fps: max(fps, 1), log: log}
}

// ToArena maps the center of a cell to arena coordinates.
func (f *Frontend) ToArena(cx, cy int) motion.Vec2 {
	w, h := f.screen.Size()
	cfg := f.game.Config
	return motion.V(
		(float64(cx)+0.5)*cfg.Width/float64(max(w, 1)),
		(float64(cy)+0.5)*cfg.Height/float64(max(h, 1)),
	)
}

// ToCell maps an arena position to the cell containing it.
func (f *Frontend) ToCell(v motion.Vec2) (cx, cy int) {
	w, h := f.screen.Size()
	cfg := f.game.Config
	return int(v.X * float64(w) / cfg.Width), int(v.Y * float64(h) / cfg.Height)
}

// HandleEvent records input. It returns false when the user asked to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}

	case *tcell.EventMouse:
		v := f.ToArena(ev.Position())
		f.hover = &v
		btn := ev.Buttons()
		pressed := btn &^ f.buttons
		if pressed&tcell.ButtonPrimary != 0 {
			f.left = &v
		}
		if pressed&tcell.ButtonSecondary != 0 {
			f.right = &v
		}
		f.buttons = btn

	case *tcell.EventResize:
		f.screen.Sync()
	}
	return true
}

// Step feeds the recorded pointer to the game and clears pending clicks.
func (f *Frontend) Step(dt float64) {
	p := game.Pointer{Hover: f.hover, LClick: f.left, RClick: f.right}
	f.left, f.right = nil, nil
	f.game.Step(p, dt)
}

func style(c game.Color, lum int) tcell.Style {
	bg := tcell.NewHexColor(int32(game.RGB(game.Dark, 2)))
	return tcell.StyleDefault.Background(bg).Foreground(tcell.NewHexColor(int32(game.RGB(c, lum))))
}

func (f *Frontend) put(v motion.Vec2, r rune, st tcell.Style) {
	w, h := f.screen.Size()
	x, y := f.ToCell(v)
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	f.screen.SetContent(x, y, r, nil, st)
}

// Draw renders the current state.
func (f *Frontend) Draw() {
	s := f.game.Snapshot()
	f.screen.Fill(' ', style(game.Dark, 2))

	for _, p := range s.Waypoints {
		f.put(p.Vec(), glyphWaypoint, style(game.Sand, 0))
	}
	for _, p := range s.Projectiles {
		f.put(p, glyphProjectile, style(game.Cyan, 1))
	}
	enemy := style(game.Red, 2)
	if s.Dashing {
		enemy = enemy.Reverse(true)
	}
	f.put(s.Enemy, glyphEnemy, enemy)
	f.put(s.Player, glyphPlayer, style(game.Blue, 0))
	f.put(s.Cursor, glyphCursor, style(game.Dark, 0))

	label := style(game.Dark, 0)
	for i, r := range s.Label {
		f.screen.SetContent(1+i, 0, r, nil, label)
	}
	f.screen.Show()
}

// Run steps and redraws at the configured rate until the user quits or ctx
// ends. The caller owns the screen; calling Fini stops the event poller.
func (f *Frontend) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.Second / time.Duration(f.fps)
	dt := 1000 / float64(f.fps)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	f.log.Info("terminal frontend started", zap.Int("fps", f.fps))
	f.Draw()
	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case ev := <-events:
			if !f.HandleEvent(ev) {
				f.log.Info("quit requested", zap.Int("frame", f.game.Clock.Count()))
				return nil
			}
		case <-ticker.C:
			f.Step(dt)
			f.Draw()
		}
	}
}
