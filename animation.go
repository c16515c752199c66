package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates a set of float64 fields on a Node together. Build one
// with TweenPosition, TweenScale, TweenAlpha or TweenColor, then either call
// Update each frame or Attach it so Scene.Update drives it. The group stops
// as soon as its node is disposed.
type TweenGroup struct {
	tweens []*gween.Tween
	fields []*float64
	target *Node
	Done   bool

	// OnDone, if set, runs once when every tween has finished.
	OnDone func()
}

func newTweenGroup(node *Node, duration float64, fn ease.TweenFunc, fields map[*float64]float64) *TweenGroup {
	g := &TweenGroup{target: node}
	for f, to := range fields {
		g.tweens = append(g.tweens, gween.New(float32(*f), float32(to), float32(duration), fn))
		g.fields = append(g.fields, f)
	}
	return g
}

// Update advances all tweens by dt seconds, writes values to the target
// fields, and marks the node dirty.
func (g *TweenGroup) Update(dt float64) {
	if g.Done {
		return
	}
	if g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i, tw := range g.tweens {
		val, finished := tw.Update(float32(dt))
		*g.fields[i] = float64(val)
		allDone = allDone && finished
	}
	g.target.MarkDirty()
	if allDone {
		g.Done = true
		if g.OnDone != nil {
			g.OnDone()
		}
	}
}

// Attach chains the group into the node's OnUpdate hook. The hook reverts to
// its previous value once the group is done.
func (g *TweenGroup) Attach() *TweenGroup {
	n := g.target
	prev := n.OnUpdate
	n.OnUpdate = func(dt float64) {
		if prev != nil {
			prev(dt)
		}
		g.Update(dt)
		if g.Done && !n.IsDisposed() {
			n.OnUpdate = prev
		}
	}
	return g
}

// TweenPosition animates node.X and node.Y to (toX, toY) over duration seconds.
func TweenPosition(node *Node, toX, toY, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.X: toX, &node.Y: toY})
}

// TweenScale animates node.ScaleX and node.ScaleY over duration seconds.
func TweenScale(node *Node, toSX, toSY, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.ScaleX: toSX, &node.ScaleY: toSY})
}

// TweenAlpha animates node.Alpha over duration seconds.
func TweenAlpha(node *Node, to, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{&node.Alpha: to})
}

// TweenColor animates all four components of node.Color over duration seconds.
func TweenColor(node *Node, to Color, duration float64, fn ease.TweenFunc) *TweenGroup {
	return newTweenGroup(node, duration, fn, map[*float64]float64{
		&node.Color.R: to.R,
		&node.Color.G: to.G,
		&node.Color.B: to.B,
		&node.Color.A: to.A,
	})
}
