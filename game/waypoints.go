package game

import "github.com/phanxgames/sprig/reactive"

// Waypoints is the queue of points the player walks through in order.
type Waypoints struct {
	list *reactive.Signal[[]Point]
}

func newWaypoints(p *Player) *Waypoints {
	w := &Waypoints{list: reactive.CreateSignal[[]Point](nil)}
	reactive.CreateEffect(func() {
		head, ok := w.Head()
		if !ok {
			return
		}
		reactive.Untrack(func() { p.Target.Set(head.Vec()) })
		if p.Reached() {
			w.Pop()
		}
	})
	return w
}

// List returns the queued points, head first.
func (w *Waypoints) List() []Point { return w.list.Get() }

// Len returns the queue length.
func (w *Waypoints) Len() int { return len(w.list.Get()) }

// Head returns the point the player is walking to.
func (w *Waypoints) Head() (Point, bool) {
	l := w.list.Get()
	if len(l) == 0 {
		return "", false
	}
	return l[0], true
}

// Push appends a point to the queue.
func (w *Waypoints) Push(p Point) {
	w.list.Update(func(l []Point) []Point {
		return append(l[:len(l):len(l)], p)
	})
}

// Pop drops the head of the queue.
func (w *Waypoints) Pop() {
	w.list.Update(func(l []Point) []Point {
		if len(l) == 0 {
			return l
		}
		return append([]Point(nil), l[1:]...)
	})
}
