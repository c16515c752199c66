package motion

import (
	"math"

	"github.com/phanxgames/sprig/reactive"
)

// LerpVal approaches its target by a fixed fraction every frame.
type LerpVal struct {
	// Lerp is the fraction of the remaining distance covered per frame.
	Lerp float64

	target *reactive.Signal[float64]
	value  *reactive.Signal[float64]
}

// NewLerpVal starts at a and approaches a.
func NewLerpVal(c *Clock, a float64) *LerpVal {
	l := &LerpVal{
		Lerp:   0.5,
		target: reactive.CreateSignal(a),
		value:  reactive.CreateSignal(a),
	}
	reactive.CreateEffect(reactive.On(c.Frame, func(Frame, Frame) {
		dst := l.target.Peek()
		l.value.Update(func(i float64) float64 { return Lerp(i, dst, l.Lerp) })
	}))
	return l
}

// Value returns the current value.
func (l *LerpVal) Value() float64 { return l.value.Get() }

// Target returns the value being approached.
func (l *LerpVal) Target() float64 { return l.target.Get() }

// SetTarget changes the value being approached.
func (l *LerpVal) SetTarget(b float64) { l.target.Set(b) }

// TweenVal is a retargetable eased tween. Unlike Tween it keeps its state in
// signals so the endpoints can change while it runs.
type TweenVal struct {
	Duration float64
	Easing   Ease

	a, b    *reactive.Signal[float64]
	elapsed *reactive.Signal[float64]
	value   *reactive.Memo[float64]
	i0      float64
}

// NewTweenVal tweens from a to b over duration with the easing curve.
func NewTweenVal(c *Clock, a, b, duration float64, easing Ease) *TweenVal {
	if easing == nil {
		easing = Linear
	}
	t := &TweenVal{
		Duration: duration,
		Easing:   easing,
		a:        reactive.CreateSignal(a),
		b:        reactive.CreateSignal(b),
		elapsed:  reactive.CreateSignal(0.0),
	}
	t.value = reactive.Derive(func() float64 {
		v := Lerp(t.a.Get(), t.b.Get(), t.I())
		return math.Round(v*100000) / 100000
	})
	reactive.CreateEffect(reactive.On(c.Frame, func(f, _ Frame) {
		t.i0 = reactive.UntrackValue(t.I)
		t.elapsed.Update(func(e float64) float64 { return e + f.DT })
	}))
	return t
}

func (t *TweenVal) ratio() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return math.Min(1, t.elapsed.Get()/t.Duration)
}

// I returns the eased progress in [0, 1].
func (t *TweenVal) I() float64 {
	r := t.ratio()
	if r >= 1 {
		return 1
	}
	return EaseRatio(t.Easing, r)
}

// Value returns the current interpolated value, rounded to five decimals.
func (t *TweenVal) Value() float64 { return t.value.Get() }

// A returns the start value.
func (t *TweenVal) A() float64 { return t.a.Get() }

// B returns the end value.
func (t *TweenVal) B() float64 { return t.b.Get() }

// Resolved reports whether the tween is at its end value.
func (t *TweenVal) Resolved() bool { return t.I() == 1 }

// Reached reports whether the tween arrived at its end value on the latest
// frame.
func (t *TweenVal) Reached() bool { return t.I() == 1 && t.i0 != 1 }

// Retarget restarts the tween from the current value toward b.
func (t *TweenVal) Retarget(b float64) {
	t.RetargetFrom(reactive.UntrackValue(t.value.Get), b, t.Duration)
}

// RetargetFrom restarts the tween from a toward b over duration.
func (t *TweenVal) RetargetFrom(a, b, duration float64) {
	t.Duration = duration
	reactive.Batch(func() {
		t.b.Set(b)
		t.a.Set(a)
		t.elapsed.Set(0)
	})
}

// Side pins a PingPongVal to one of its ends.
type Side int8

const (
	SideNone Side = iota // bounce freely
	SideA                // settle at a
	SideB                // settle at b
)

// PingPongVal bounces between a and b until resolved to one side.
type PingPongVal struct {
	tween   *TweenVal
	resolve *reactive.Signal[Side]
}

// NewPingPongVal bounces between a and b, each leg taking duration.
func NewPingPongVal(c *Clock, a, b, duration float64, easing Ease) *PingPongVal {
	p := &PingPongVal{
		tween:   NewTweenVal(c, a, b, duration, easing),
		resolve: reactive.CreateSignal(SideNone),
	}
	reactive.CreateEffect(func() {
		switch p.resolve.Get() {
		case SideA:
			reactive.Untrack(func() { p.tween.Retarget(a) })
		case SideB:
			reactive.Untrack(func() { p.tween.Retarget(b) })
		default:
			switch p.tween.Value() {
			case b:
				p.tween.Retarget(a)
			case a:
				p.tween.Retarget(b)
			}
		}
	})
	return p
}

// Value returns the current value.
func (p *PingPongVal) Value() float64 { return p.tween.Value() }

// Resolve pins the value to one side, or releases it with SideNone.
func (p *PingPongVal) Resolve(s Side) { p.resolve.Set(s) }

// Resolution returns the current pin.
func (p *PingPongVal) Resolution() Side { return p.resolve.Get() }

// Resolved reports whether the value is pinned and has arrived.
func (p *PingPongVal) Resolved() bool {
	return p.resolve.Get() != SideNone && p.tween.Resolved()
}

// LoopVal repeatedly tweens from a to b, jumping back to a on arrival.
type LoopVal struct {
	tween *TweenVal
}

// NewLoopVal loops from a to b, each pass taking duration.
func NewLoopVal(c *Clock, a, b, duration float64, easing Ease) *LoopVal {
	l := &LoopVal{tween: NewTweenVal(c, a, b, duration, easing)}
	reactive.CreateEffect(func() {
		if l.tween.Value() == b {
			l.tween.RetargetFrom(a, b, duration)
		}
	})
	return l
}

// Value returns the current value.
func (l *LoopVal) Value() float64 { return l.tween.Value() }

// HasPosition is a smoothed 2D position: writes set a target that the
// position approaches every frame.
type HasPosition struct {
	x, y *LerpVal
}

// NewHasPosition starts at (x, y).
func NewHasPosition(c *Clock, x, y float64) *HasPosition {
	return &HasPosition{x: NewLerpVal(c, x), y: NewLerpVal(c, y)}
}

// X returns the smoothed x.
func (h *HasPosition) X() float64 { return h.x.Value() }

// Y returns the smoothed y.
func (h *HasPosition) Y() float64 { return h.y.Value() }

// SetX retargets x.
func (h *HasPosition) SetX(x float64) { h.x.SetTarget(x) }

// SetY retargets y.
func (h *HasPosition) SetY(y float64) { h.y.SetTarget(y) }

// SetLerp sets the approach fraction of both axes.
func (h *HasPosition) SetLerp(v float64) {
	h.x.Lerp = v
	h.y.Lerp = v
}
