// Package sprig is a small retained-mode 2D scene graph for [Ebitengine].
//
// A [Scene] owns a tree of [Node] values. Containers group and transform
// their children; sprites draw a [TextureRegion] from a registered page, a
// custom image, or (with a zero region) a tinted white pixel scaled by
// ScaleX/ScaleY.
//
//	scene := sprig.NewScene()
//	box := sprig.NewSprite("box", sprig.TextureRegion{})
//	box.X, box.Y = 10, 20
//	box.ScaleX, box.ScaleY = 80, 40
//	box.Color = sprig.RGB(0x5fcde4)
//	scene.Root().AddChild(box)
//
// [Run] opens a window and drives the scene. For full control, implement
// [ebiten.Game] yourself and call [Scene.Update] and [Scene.Draw].
//
// # Input
//
// Mouse input runs through a pointer state machine that fires down, up,
// click, drag and hover events on the topmost interactable node, on
// scene-level handlers, and on an optional [EntityStore]. Synthetic events
// queued with [Scene.InjectClick] and friends take the same path, which is
// what [TestRunner] scripts use for automated playthroughs and screenshots.
//
// # Pages
//
// [Sheet] generates a page of palette swatches and debug-font glyphs at
// startup, so a game can run without any image assets.
//
// # Animation
//
// [TweenGroup] eases node fields with gween, and an [Emitter] sprays
// short-lived particle sprites. Both run from a node's OnUpdate hook.
//
// [Ebitengine]: https://ebitengine.org
package sprig
