package motion

import (
	"github.com/phanxgames/sprig/reactive"
	"github.com/tanema/gween"
)

// Tween drives a value from a to b over a duration, advancing on every clock
// frame. It is owned by the computation that created it.
type Tween struct {
	g     *gween.Tween
	end   float64
	value *reactive.Signal[float64]
	done  *reactive.Signal[bool]
}

// NewTween starts a tween. When setter is non-nil it receives every new
// value, starting with a.
func NewTween(c *Clock, setter func(float64), a, b, duration float64, fn Ease) *Tween {
	t := &Tween{
		end:   b,
		value: reactive.CreateSignal(a),
		done:  reactive.CreateSignal(false),
	}
	if setter != nil {
		reactive.CreateEffect(func() { setter(t.value.Get()) })
	}
	if duration <= 0 {
		reactive.Batch(func() {
			t.value.Set(b)
			t.done.Set(true)
		})
		return t
	}

	t.g = gween.New(float32(a), float32(b), float32(duration), fn)
	reactive.CreateEffect(reactive.On(c.Frame, func(f, _ Frame) {
		if t.done.Peek() {
			return
		}
		v, finished := t.g.Update(float32(f.DT))
		next := float64(v)
		if finished {
			next = t.end
		}
		reactive.Batch(func() {
			t.value.Set(next)
			t.done.Set(finished)
		})
	}))
	return t
}

// Value returns the current tweened value.
func (t *Tween) Value() float64 {
	return t.value.Get()
}

// Done reports whether the tween reached its end value.
func (t *Tween) Done() bool {
	return t.done.Get()
}
