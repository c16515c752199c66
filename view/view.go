// Package view binds gameplay state to sprig nodes. Each component adds its
// nodes under a parent, keeps them in sync through reactive effects and
// disposes them when the reactive owner it was created in goes away.
package view

import (
	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/reactive"
)

// View is a mounted game.
type View struct {
	Root *sprig.Node
	// Arena is the interactable background. Clicks on it become waypoints
	// and shots.
	Arena *sprig.Node
	// Sparks bursts on every projectile hit.
	Sparks *sprig.Emitter

	dispose func()
}

// NewSheet builds the palette and letter sheet the components draw from.
func NewSheet() *sprig.Sheet {
	return sprig.NewSheet(sprig.SheetLayout{
		Colors: len(game.Colors),
		Lums:   game.Lums,
		Swatch: func(c, l int) uint32 { return game.RGB(game.Color(c), l) },
		Glyphs: game.LetterFrames,
	})
}

// Mount builds the component tree for g under parent. Draw order, back to
// front: arena, waypoints, projectiles, enemy, player, hit sparks, cursor
// trail, cursor, label.
func Mount(parent *sprig.Node, g *game.Game, sheet *sprig.Sheet) *View {
	return reactive.CreateRoot(func(dispose func()) *View {
		root := own(parent, sprig.NewContainer("game"))
		root.Interactable = true
		v := &View{Root: root, dispose: dispose}
		v.Arena = Background(root, sheet, g.Config.Width, g.Config.Height)
		Waypoints(root, sheet, g.Waypoints)
		Projectiles(root, sheet, g.Projectiles)
		Enemy(root, sheet, g.Enemy)
		Player(root, sheet, g.Player)
		v.Sparks = Sparks(root, sheet, g.Enemy, g.Projectiles)
		Trail(root, sheet, g.Cursor)
		Cursor(root, sheet, g.Cursor)
		LevelLabel(root, sheet, g.Level, labelX, labelY)
		return v
	})
}

// Dispose stops every binding and removes the tree from its parent.
func (v *View) Dispose() {
	v.dispose()
}

// own attaches n to parent and disposes it with the current owner.
func own(parent, n *sprig.Node) *sprig.Node {
	parent.AddChild(n)
	reactive.OnCleanup(n.Dispose)
	return n
}
