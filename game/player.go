package game

import (
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// Player glides toward its target. Every target change restarts a pair of
// eased tweens from wherever the player currently is.
type Player struct {
	Pos    *motion.Position
	Target *motion.Position

	distance *reactive.Memo[float64]
	reached  *reactive.Memo[bool]
}

func newPlayer(c *motion.Clock, x, y, reach float64) *Player {
	p := &Player{
		Pos:    motion.NewPosition(x, y),
		Target: motion.NewPosition(x, y),
	}
	reactive.CreateEffect(reactive.On(p.Target.Vec, func(t, _ motion.Vec2) {
		motion.NewTween(c, p.Pos.SetX, p.Pos.X(), t.X, motion.Second, motion.QuadInOut)
		motion.NewTween(c, p.Pos.SetY, p.Pos.Y(), t.Y, motion.Second, motion.QuadInOut)
	}))
	p.distance = reactive.Derive(func() float64 {
		return p.Pos.Vec().Distance(p.Target.Vec())
	})
	p.reached = reactive.Derive(func() bool {
		return p.distance.Get() < reach
	})
	return p
}

// Distance returns the distance left to the target.
func (p *Player) Distance() float64 { return p.distance.Get() }

// Reached reports whether the player is within reach of its target.
func (p *Player) Reached() bool { return p.reached.Get() }
