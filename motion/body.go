package motion

import "github.com/phanxgames/sprig/reactive"

// Position is a pair of always-notify coordinate signals with a derived
// vector. Writing the same coordinate twice still notifies, so per-frame
// writers keep dependents ticking.
type Position struct {
	x, y *reactive.Signal[float64]
	vec  *reactive.Memo[Vec2]
}

// NewPosition returns a position at (x, y).
func NewPosition(x, y float64) *Position {
	p := &Position{
		x: reactive.CreateSignal(x, reactive.AlwaysNotify[float64]()),
		y: reactive.CreateSignal(y, reactive.AlwaysNotify[float64]()),
	}
	p.vec = reactive.Derive(func() Vec2 { return Vec2{p.x.Get(), p.y.Get()} })
	return p
}

func (p *Position) X() float64     { return p.x.Get() }
func (p *Position) Y() float64     { return p.y.Get() }
func (p *Position) SetX(x float64) { p.x.Set(x) }
func (p *Position) SetY(y float64) { p.y.Set(y) }

// Set writes both coordinates in one batch.
func (p *Position) Set(v Vec2) {
	reactive.Batch(func() {
		p.x.Set(v.X)
		p.y.Set(v.Y)
	})
}

// Vec returns the position as a vector. It only notifies when the vector
// actually changes.
func (p *Position) Vec() Vec2 { return p.vec.Get() }

// Rigid is a single-axis damped integrator. Each frame:
//
//	a  = force / mass
//	v  = v0·friction·dt/dt0 + a·dt·(dt+dt0)/2
//	x  = x + v
//	v0 = x - x_prev
type Rigid struct {
	force *reactive.Signal[float64]
	accel *reactive.Memo[float64]
	v     *reactive.Memo[float64]
	x     *reactive.Memo[float64]
	v0    *reactive.Memo[float64]
	kick  float64
}

// NewRigid starts a body at rest at x.
func NewRigid(c *Clock, x, mass, friction float64) *Rigid {
	r := &Rigid{force: reactive.CreateSignal(0.0)}
	r.accel = reactive.Derive(func() float64 { return r.force.Get() / mass })

	r.v = reactive.CreateMemo(reactive.OnMemo(c.Frame, func(f, _ Frame, _ float64) float64 {
		var v0 float64
		if r.v0 != nil {
			v0 = r.v0.Peek()
		}
		kick := r.kick
		r.kick = 0
		return v0*friction*f.DT/f.DT0 + r.accel.Peek()*f.DT*(f.DT+f.DT0)/2 + kick
	}), 0, reactive.AlwaysNotify[float64]())

	r.x = reactive.CreateMemo(func(prev float64) float64 {
		return prev + r.v.Get()
	}, x, reactive.AlwaysNotify[float64]())

	r.v0 = reactive.CreateMemo(reactive.OnMemo(r.x.Get, func(x, x0 float64, _ float64) float64 {
		return x - x0
	}), 0)
	return r
}

// X returns the integrated position.
func (r *Rigid) X() float64 { return r.x.Get() }

// VX returns the velocity applied on the latest frame.
func (r *Rigid) VX() float64 { return r.v.Get() }

// Force returns the applied force.
func (r *Rigid) Force() float64 { return r.force.Get() }

// SetForce sets the applied force. It stays until changed.
func (r *Rigid) SetForce(f float64) { r.force.Set(f) }

// Impulse adds dv to the velocity of the next frame only; friction then
// carries it forward.
func (r *Rigid) Impulse(dv float64) {
	r.kick += dv
}

// Debug returns the applied force and the carried velocity.
func (r *Rigid) Debug() (force, v0 float64) {
	return r.force.Peek(), r.v0.Peek()
}
