package view

import (
	"math"

	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/reactive"
	"github.com/tanema/gween/ease"
)

const (
	labelX, labelY = 4, 4

	// A new letter starts enlarged and settles to its normal size.
	popScale    = 1.6
	popDuration = 0.25 // seconds

	sparkCount = 8
)

// Rect places a palette swatch stretched to W x H at (X, Y).
type Rect struct {
	Color      game.Color
	Lum        int
	X, Y, W, H float64
}

// Rectangle adds a solid palette rectangle under parent.
func Rectangle(parent *sprig.Node, sheet *sprig.Sheet, r Rect) *sprig.Node {
	n := sprig.NewSprite("rect", sheet.Swatch(int(r.Color), r.Lum))
	n.SetPosition(r.X, r.Y)
	n.SetScale(r.W, r.H)
	return own(parent, n)
}

// HasPosition adds a container that follows pos.
func HasPosition(parent *sprig.Node, name string, pos *motion.Position) *sprig.Node {
	n := own(parent, sprig.NewContainer(name))
	reactive.CreateEffect(func() {
		v := pos.Vec()
		n.SetPosition(v.X, v.Y)
	})
	return n
}

// Background is the arena floor. It is the only interactable node of the
// game tree, so every click inside the arena lands on it.
func Background(parent *sprig.Node, sheet *sprig.Sheet, w, h float64) *sprig.Node {
	n := Rectangle(parent, sheet, Rect{Color: game.Dark, Lum: 2, W: w, H: h})
	n.Name = "arena"
	n.Interactable = true
	return n
}

// Player is a blue square on the player's position.
func Player(parent *sprig.Node, sheet *sprig.Sheet, p *game.Player) *sprig.Node {
	n := HasPosition(parent, "player", p.Pos)
	Rectangle(n, sheet, Rect{Color: game.Blue, Lum: 2, X: -5, Y: -5, W: 10, H: 10})
	return n
}

// Cursor draws a small pointer glyph on the hover position.
func Cursor(parent *sprig.Node, sheet *sprig.Sheet, c *game.Cursor) *sprig.Node {
	n := HasPosition(parent, "cursor", c.Pos)
	Rectangle(n, sheet, Rect{Color: game.Dark, Lum: 0, X: -2, Y: -2, W: 2, H: 2})
	Rectangle(n, sheet, Rect{Color: game.Dark, Lum: 0, W: 4, H: 6})
	return n
}

// Enemy is a red square that lights up while it dashes. Its alpha follows
// the enemy's glow.
func Enemy(parent *sprig.Node, sheet *sprig.Sheet, e *game.Enemy) *sprig.Node {
	n := HasPosition(parent, "enemy", e.Pos)
	body := Rectangle(n, sheet, Rect{Color: game.Red, Lum: 2, X: -4, Y: -4, W: 8, H: 8})
	reactive.CreateEffect(func() {
		lum := 2
		if e.Dashing() {
			lum = 0
		}
		body.TextureRegion = sheet.Swatch(int(game.Red), lum)
	})
	reactive.CreateEffect(func() {
		body.SetAlpha(e.Glow.Value())
	})
	return n
}

// Trail is a faint dot easing after the cursor.
func Trail(parent *sprig.Node, sheet *sprig.Sheet, c *game.Cursor) *sprig.Node {
	n := own(parent, sprig.NewContainer("trail"))
	Rectangle(n, sheet, Rect{Color: game.Sand, Lum: 1, X: -1, Y: -1, W: 2, H: 2})
	reactive.CreateEffect(func() {
		n.SetPosition(c.Trail.X(), c.Trail.Y())
	})
	return n
}

// Waypoints draws one marker per queued point. Markers of points that stay
// queued are kept across changes.
func Waypoints(parent *sprig.Node, sheet *sprig.Sheet, w *game.Waypoints) *sprig.Node {
	n := own(parent, sprig.NewContainer("waypoints"))
	markers := reactive.MapArray(w.List, func(p game.Point, _ func() int) *sprig.Node {
		v := p.Vec()
		m := own(n, sprig.NewContainer("waypoint"))
		m.SetPosition(v.X, v.Y)
		Rectangle(m, sheet, Rect{Color: game.Sand, Lum: 0, X: -1, Y: -1, W: 2, H: 2})
		return m
	})
	reactive.CreateEffect(func() { markers() })
	return n
}

// Projectiles draws every live shot, turned by its spin.
func Projectiles(parent *sprig.Node, sheet *sprig.Sheet, ps *game.Projectiles) *sprig.Node {
	n := own(parent, sprig.NewContainer("projectiles"))
	shots := reactive.MapArray(ps.List, func(p *game.Projectile, _ func() int) *sprig.Node {
		s := HasPosition(n, "projectile", p.Pos)
		Rectangle(s, sheet, Rect{Color: game.Cyan, Lum: 1, X: -1.5, Y: -1.5, W: 3, H: 3})
		reactive.CreateEffect(func() {
			s.SetRotation(p.Spin.Value())
		})
		return s
	})
	reactive.CreateEffect(func() { shots() })
	return n
}

// Sparks bursts particles on the enemy every time a projectile hits it.
func Sparks(parent *sprig.Node, sheet *sprig.Sheet, e *game.Enemy, ps *game.Projectiles) *sprig.Emitter {
	em := sprig.NewEmitter("sparks", sprig.BurstConfig{
		Count:      sparkCount,
		Lifetime:   sprig.Range{Min: 0.2, Max: 0.45},
		Speed:      sprig.Range{Min: 30, Max: 90},
		Angle:      sprig.Range{Min: 0, Max: 2 * math.Pi},
		StartScale: 3, EndScale: 1,
		StartAlpha: 1, EndAlpha: 0,
		Gravity:    sprig.Vec2{Y: 120},
		Color:      sprig.ColorWhite,
		Region:     sheet.Swatch(int(game.Sand), 0),
	})
	own(parent, em.Node)
	reactive.CreateEffect(reactive.On(ps.Hits, func(n, prev int) {
		if n > prev {
			v := e.Pos.Vec()
			em.Burst(v.X, v.Y)
		}
	}))
	return em
}

// LevelLabel lays the level readout out as glyph tiles at (x, y). Tiles
// follow their letter's index and tint; a fresh tile pops in.
func LevelLabel(parent *sprig.Node, sheet *sprig.Sheet, lvl *game.Level, x, y float64) *sprig.Node {
	n := own(parent, sprig.NewContainer("level"))
	n.SetPosition(x, y)
	n.RenderLayer = 1
	tiles := reactive.MapArray(lvl.Letters.Get, func(l *game.Letter, _ func() int) *sprig.Node {
		return letterTile(n, sheet, l)
	})
	reactive.CreateEffect(func() { tiles() })
	return n
}

func letterTile(parent *sprig.Node, sheet *sprig.Sheet, l *game.Letter) *sprig.Node {
	var region sprig.TextureRegion
	if l.Frame >= 0 {
		region = sheet.Glyph(l.Frame)
	}
	t := own(parent, sprig.NewSprite("letter", region))
	t.Visible = l.Frame >= 0
	t.RenderLayer = 1
	t.SetPivot(sprig.GlyphWidth/2, sprig.GlyphHeight/2)

	reactive.CreateEffect(func() {
		x := float64(l.Index()*sprig.GlyphWidth) + sprig.GlyphWidth/2
		t.SetPosition(x, sprig.GlyphHeight/2)
	})
	reactive.CreateEffect(func() {
		t.SetColor(sprig.RGB(l.Tint()))
	})

	t.SetScale(popScale, popScale)
	sprig.TweenScale(t, 1, 1, popDuration, ease.OutCubic).Attach()
	return t
}
