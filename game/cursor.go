package game

import (
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// Pointer is the mouse state for one frame. Nil fields did not happen.
type Pointer struct {
	Hover  *motion.Vec2
	LClick *motion.Vec2
	RClick *motion.Vec2
}

// trailLerp is the share of the gap to the cursor the trail closes per frame.
const trailLerp = 0.25

// Cursor mirrors the pointer into positions once per frame. Trail lags
// behind Pos.
type Cursor struct {
	Pos    *motion.Position
	Click  *motion.Position
	RClick *motion.Position
	Trail  *motion.HasPosition
}

func newCursor(c *motion.Clock, mouse *reactive.Signal[Pointer]) *Cursor {
	cur := &Cursor{
		Pos:    motion.NewPosition(0, 0),
		Click:  motion.NewPosition(0, 0),
		RClick: motion.NewPosition(0, 0),
		Trail:  motion.NewHasPosition(c, 0, 0),
	}
	cur.Trail.SetLerp(trailLerp)
	reactive.CreateEffect(reactive.On(c.Frame, func(motion.Frame, motion.Frame) {
		p := mouse.Peek()
		if p.Hover != nil {
			cur.Pos.Set(*p.Hover)
			cur.Trail.SetX(p.Hover.X)
			cur.Trail.SetY(p.Hover.Y)
		}
		if p.LClick != nil {
			cur.Click.Set(*p.LClick)
		}
		if p.RClick != nil {
			cur.RClick.Set(*p.RClick)
		}
	}))
	return cur
}
