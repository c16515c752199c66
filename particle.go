package sprig

import (
	"math"
	"math/rand/v2"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// BurstConfig controls how particles are spawned and behave.
type BurstConfig struct {
	// Count is the number of particles spawned per Burst.
	Count int
	// MaxParticles caps live particles. Extra spawns are dropped.
	MaxParticles int
	// Lifetime is the range of particle lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// StartScale is interpolated to EndScale over a particle's lifetime.
	StartScale, EndScale float64
	// StartAlpha is interpolated to EndAlpha over a particle's lifetime.
	StartAlpha, EndAlpha float64
	// Gravity is the constant acceleration in pixels per second squared.
	Gravity Vec2
	Color   Color
	// Region is the TextureRegion of every particle. A zero region draws
	// the white pixel.
	Region TextureRegion
}

// particle holds per-particle simulation state. Managed by Emitter.
type particle struct {
	node    *Node
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64
}

// Emitter sprays short-lived sprites. Its Node is a container whose
// children are the live particles; the node's OnUpdate drives them.
type Emitter struct {
	Node      *Node
	config    BurstConfig
	particles []particle
}

// NewEmitter creates an emitter with its own container node.
func NewEmitter(name string, cfg BurstConfig) *Emitter {
	if cfg.MaxParticles <= 0 {
		cfg.MaxParticles = 128
	}
	e := &Emitter{Node: NewContainer(name), config: cfg}
	e.Node.OnUpdate = e.update
	return e
}

// Burst spawns Count particles at (x, y) in the emitter's local space.
func (e *Emitter) Burst(x, y float64) {
	for i := 0; i < e.config.Count && len(e.particles) < e.config.MaxParticles; i++ {
		e.spawn(x, y)
	}
}

// AliveCount returns the number of live particles.
func (e *Emitter) AliveCount() int {
	return len(e.particles)
}

// Config returns a pointer to the emitter's config for live tuning.
func (e *Emitter) Config() *BurstConfig {
	return &e.config
}

func (e *Emitter) spawn(x, y float64) {
	angle := e.config.Angle.Random()
	speed := e.config.Speed.Random()
	life := e.config.Lifetime.Random()
	if life <= 0 {
		life = 1.0
	}

	n := NewSprite("particle", e.config.Region)
	n.X, n.Y = x, y
	n.ScaleX, n.ScaleY = e.config.StartScale, e.config.StartScale
	n.Alpha = e.config.StartAlpha
	n.Color = e.config.Color
	e.Node.AddChild(n)

	e.particles = append(e.particles, particle{
		node:    n,
		vx:      math.Cos(angle) * speed,
		vy:      math.Sin(angle) * speed,
		life:    life,
		maxLife: life,
	})
}

// update advances particle simulation by dt seconds.
func (e *Emitter) update(dt float64) {
	gx := e.config.Gravity.X * dt
	gy := e.config.Gravity.Y * dt

	// Swap-remove dead particles.
	i := 0
	for i < len(e.particles) {
		p := &e.particles[i]
		p.life -= dt
		if p.life <= 0 {
			p.node.Dispose()
			last := len(e.particles) - 1
			e.particles[i] = e.particles[last]
			e.particles = e.particles[:last]
			continue
		}

		p.vx += gx
		p.vy += gy
		n := p.node
		n.X += p.vx * dt
		n.Y += p.vy * dt

		t := 1.0 - p.life/p.maxLife
		s := lerp(e.config.StartScale, e.config.EndScale, t)
		n.ScaleX, n.ScaleY = s, s
		n.Alpha = lerp(e.config.StartAlpha, e.config.EndAlpha, t)
		n.MarkDirty()
		i++
	}
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
