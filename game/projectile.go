package game

import (
	"math"

	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
)

// Projectile is a shot in flight. Spin turns it once per quarter second.
type Projectile struct {
	ID   int
	Pos  *motion.Position
	Spin *motion.LoopVal

	rx, ry *motion.Rigid
}

type launch struct {
	from, vel motion.Vec2
}

// Projectiles tracks live shots. Each shot flies on its own rigid pair and is
// removed when its lifetime closes, when it leaves the arena or when it hits
// the enemy.
type Projectiles struct {
	ids     *reactive.Signal[[]int]
	items   *reactive.Memo[[]*Projectile]
	hits    *reactive.Signal[int]
	pending map[int]launch
	next    int
	speed   float64
	sink    audio.Sink
}

func newProjectiles(c *motion.Clock, cfg Config, enemy *Enemy, sink audio.Sink) *Projectiles {
	ps := &Projectiles{
		ids:     reactive.CreateSignal[[]int](nil),
		hits:    reactive.CreateSignal(0),
		pending: make(map[int]launch),
		speed:   cfg.ProjectileSpeed,
		sink:    sink,
	}

	mapped := reactive.MapArray(ps.ids.Get, func(id int, _ func() int) *Projectile {
		l := ps.pending[id]
		delete(ps.pending, id)

		p := &Projectile{
			ID:   id,
			Pos:  motion.NewPosition(l.from.X, l.from.Y),
			Spin: motion.NewLoopVal(c, 0, 2*math.Pi, motion.Quarter, motion.Linear),
			rx:   motion.NewRigid(c, l.from.X, 1, cfg.ProjectileFriction),
			ry:   motion.NewRigid(c, l.from.Y, 1, cfg.ProjectileFriction),
		}
		p.rx.Impulse(l.vel.X)
		p.ry.Impulse(l.vel.Y)

		gone := false
		remove := func() {
			if !gone {
				gone = true
				ps.remove(id)
			}
		}

		life := motion.Run(c, cfg.ProjectileLife)
		reactive.CreateEffect(reactive.On(life.Get, func(n, _ int) {
			if n == motion.RunClosed {
				remove()
			}
		}))

		reactive.CreateEffect(reactive.On(c.Frame, func(motion.Frame, motion.Frame) {
			if gone {
				return
			}
			pos := motion.V(p.rx.X(), p.ry.X())
			p.Pos.Set(pos)
			switch {
			case pos.X < 0 || pos.Y < 0 || pos.X > cfg.Width || pos.Y > cfg.Height:
				remove()
			case pos.Distance(enemy.Pos.Vec()) < cfg.HitRadius:
				enemy.Knock(l.vel.Normalize().Scale(cfg.Knockback))
				ps.hits.Update(func(h int) int { return h + 1 })
				ps.sink.Play(audio.SoundHit)
				remove()
			}
		}))
		return p
	})
	ps.items = reactive.CreateMemo(func([]*Projectile) []*Projectile { return mapped() }, nil)
	return ps
}

// Fire launches a shot from from toward to.
func (ps *Projectiles) Fire(from, to motion.Vec2) {
	id := ps.next
	ps.next++
	vel := to.Sub(from).Normalize()
	if vel == (motion.Vec2{}) {
		vel = motion.V(1, 0)
	}
	ps.pending[id] = launch{from: from, vel: vel.Scale(ps.speed)}
	ps.ids.Update(func(ids []int) []int {
		return append(ids[:len(ids):len(ids)], id)
	})
	ps.sink.Play(audio.SoundShot)
}

func (ps *Projectiles) remove(id int) {
	ps.ids.Update(func(ids []int) []int {
		out := make([]int, 0, len(ids))
		for _, i := range ids {
			if i != id {
				out = append(out, i)
			}
		}
		return out
	})
}

// List returns the live projectiles.
func (ps *Projectiles) List() []*Projectile { return ps.items.Get() }

// Len returns the number of live projectiles.
func (ps *Projectiles) Len() int { return len(ps.items.Get()) }

// Hits returns how many projectiles hit the enemy.
func (ps *Projectiles) Hits() int { return ps.hits.Get() }
