// Package game is the headless gameplay: a cursor-chasing enemy, a player
// walking a waypoint queue, projectiles and a level readout, all driven by a
// motion.Clock. Frontends feed one Pointer per frame through Step and read
// the state back for drawing.
package game

import (
	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
	"go.uber.org/zap"
)

// Game owns every gameplay computation in one reactive root.
type Game struct {
	Clock       *motion.Clock
	Config      Config
	Cursor      *Cursor
	Player      *Player
	Enemy       *Enemy
	Waypoints   *Waypoints
	Projectiles *Projectiles
	Level       *Level

	mouse   *reactive.Signal[Pointer]
	dispose func()
	log     *zap.Logger
}

// New builds a game on c. A nil sink discards sounds and a nil log discards
// logs.
func New(c *motion.Clock, cfg Config, sink audio.Sink, log *zap.Logger) *Game {
	if sink == nil {
		sink = audio.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return reactive.CreateRoot(func(dispose func()) *Game {
		g := &Game{
			Clock:   c,
			Config:  cfg,
			mouse:   reactive.CreateSignal(Pointer{}, reactive.AlwaysNotify[Pointer]()),
			dispose: dispose,
			log:     log,
		}
		g.Cursor = newCursor(c, g.mouse)
		g.Player = newPlayer(c, 100, 100, cfg.Reach)
		g.Waypoints = newWaypoints(g.Player)
		g.Enemy = newEnemy(c, cfg, g.Cursor, sink)
		g.Projectiles = newProjectiles(c, cfg, g.Enemy, sink)
		g.Level = newLevel(c, cfg, sink)

		reactive.CreateEffect(reactive.On(c.Frame, func(motion.Frame, motion.Frame) {
			p := g.mouse.Peek()
			if p.LClick != nil {
				g.Waypoint(*p.LClick)
			}
			if p.RClick != nil {
				g.Fire(*p.RClick)
			}
		}))

		log.Debug("game started",
			zap.Float64("width", cfg.Width),
			zap.Float64("height", cfg.Height),
			zap.Int("max_level", cfg.MaxLevel))
		return g
	})
}

// Step publishes the pointer and advances the clock by dt milliseconds in a
// single batch, so every computation sees both together. A step with no
// elapsed time is not a frame and its pointer is not applied.
func (g *Game) Step(p Pointer, dt float64) {
	reactive.Batch(func() {
		g.mouse.Set(p)
		g.Clock.Tick(dt)
	})
}

// Waypoint queues a point for the player. Points outside the arena are
// clamped to its edge.
func (g *Game) Waypoint(v motion.Vec2) {
	v = g.clamp(v)
	g.Waypoints.Push(PointAt(v))
	g.log.Debug("waypoint", zap.Float64("x", v.X), zap.Float64("y", v.Y))
}

// Fire launches a projectile from the player toward v.
func (g *Game) Fire(v motion.Vec2) {
	g.Projectiles.Fire(g.Player.Pos.Vec(), v)
	g.log.Debug("fire", zap.Float64("x", v.X), zap.Float64("y", v.Y))
}

func (g *Game) clamp(v motion.Vec2) motion.Vec2 {
	return motion.V(min(max(v.X, 0), g.Config.Width), min(max(v.Y, 0), g.Config.Height))
}

// Dispose stops every gameplay computation.
func (g *Game) Dispose() {
	g.dispose()
}

// Snapshot is a plain copy of the drawable state.
type Snapshot struct {
	Frame       int
	Cursor      motion.Vec2
	Player      motion.Vec2
	Target      motion.Vec2
	Enemy       motion.Vec2
	Dashing     bool
	Waypoints   []Point
	Projectiles []motion.Vec2
	Hits        int
	Level       int
	Label       string
}

// Snapshot reads the current state without subscribing.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	reactive.Untrack(func() {
		s = Snapshot{
			Frame:     g.Clock.Count(),
			Cursor:    g.Cursor.Pos.Vec(),
			Player:    g.Player.Pos.Vec(),
			Target:    g.Player.Target.Vec(),
			Enemy:     g.Enemy.Pos.Vec(),
			Dashing:   g.Enemy.Dashing(),
			Waypoints: append([]Point(nil), g.Waypoints.List()...),
			Hits:      g.Projectiles.Hits(),
			Level:     g.Level.Value(),
			Label:     g.Level.Label(),
		}
		for _, p := range g.Projectiles.List() {
			s.Projectiles = append(s.Projectiles, p.Pos.Vec())
		}
	})
	return s
}
