package game

import (
	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// Glow range of the enemy. It breathes between the two while coasting and
// holds the bright end while dashing.
const (
	glowDim    = 0.6
	glowBright = 1.0
)

// Enemy chases the cursor in dashes: every DashEvery it pushes toward the
// cursor for DashFor, then coasts on friction.
type Enemy struct {
	Pos  *motion.Position
	Glow *motion.PingPongVal

	rx, ry *motion.Rigid
	dashes *reactive.Signal[int]
}

func newEnemy(c *motion.Clock, cfg Config, cursor *Cursor, sink audio.Sink) *Enemy {
	e := &Enemy{
		Pos:    motion.NewPosition(100, 100),
		rx:     motion.NewRigid(c, 100, cfg.EnemyMass, cfg.EnemyFriction),
		ry:     motion.NewRigid(c, 100, cfg.EnemyMass, cfg.EnemyFriction),
		dashes: reactive.CreateSignal(0),
	}

	dir := reactive.Derive(func() motion.Vec2 {
		return cursor.Pos.Vec().Sub(e.Pos.Vec()).Normalize().Scale(cfg.EnemyForce)
	})

	reactive.CreateEffect(reactive.On(motion.Interval(c, cfg.DashEvery).Get, func(int, int) {
		run := motion.Run(c, cfg.DashFor)
		reactive.CreateEffect(reactive.On(run.Get, func(n, _ int) {
			if n == motion.RunClosed {
				reactive.Batch(func() {
					e.rx.SetForce(0)
					e.ry.SetForce(0)
				})
				return
			}
			f := dir.Get()
			reactive.Batch(func() {
				e.rx.SetForce(f.X)
				e.ry.SetForce(f.Y)
			})
			if n == 1 {
				e.dashes.Update(func(d int) int { return d + 1 })
				sink.Play(audio.SoundDash)
			}
		}))
	}))

	reactive.CreateEffect(reactive.On(c.Frame, func(motion.Frame, motion.Frame) {
		e.Pos.Set(motion.V(e.rx.X(), e.ry.X()))
	}))

	e.Glow = motion.NewPingPongVal(c, glowDim, glowBright, motion.Third, motion.QuadInOut)
	reactive.CreateEffect(func() {
		side := motion.SideNone
		if e.Dashing() {
			side = motion.SideB
		}
		e.Glow.Resolve(side)
	})
	return e
}

// Knock pushes the enemy by v on the next frame.
func (e *Enemy) Knock(v motion.Vec2) {
	e.rx.Impulse(v.X)
	e.ry.Impulse(v.Y)
}

// Force returns the force currently applied.
func (e *Enemy) Force() motion.Vec2 {
	return motion.V(e.rx.Force(), e.ry.Force())
}

// Dashing reports whether a dash force is applied.
func (e *Enemy) Dashing() bool {
	f := e.Force()
	return f.X != 0 || f.Y != 0
}

// Dashes returns how many dashes have started.
func (e *Enemy) Dashes() int { return e.dashes.Get() }
