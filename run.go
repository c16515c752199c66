package sprig

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height are the logical screen size. The window opens at
	// Width*Scale by Height*Scale.
	Width, Height int
	Scale         int
	Background    Color
	ShowFPS       bool
	// Stats adds lines under the FPS counter when ShowFPS is set.
	Stats func() string
	// ExitWhenScriptDone stops the loop once an attached TestRunner finishes
	// and its last screenshot is written.
	ExitWhenScriptDone bool
}

// SetUpdateFunc sets a hook that Run calls after Scene.Update every tick.
// Returning an error stops the loop; ebiten.Termination exits cleanly.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// ScriptDone reports whether an attached TestRunner has finished with no
// screenshots still queued. It is false when no runner is attached.
func (s *Scene) ScriptDone() bool {
	return s.testRunner != nil && s.testRunner.Done() && len(s.screenshotQueue) == 0
}

type shell struct {
	scene *Scene
	cfg   RunConfig
	bg    Color
}

func (g *shell) Update() error {
	g.scene.Update()
	if g.scene.updateFunc != nil {
		if err := g.scene.updateFunc(); err != nil {
			return err
		}
	}
	if g.cfg.ExitWhenScriptDone && g.scene.ScriptDone() {
		return ebiten.Termination
	}
	return nil
}

func (g *shell) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg.toRGBA())
	g.scene.Draw(screen)
}

func (g *shell) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives the scene until the window closes or the
// update hook fails.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.New("sprig: run: width and height must be positive")
	}
	cfg.Scale = max(cfg.Scale, 1)
	if cfg.ShowFPS {
		scene.Root().AddChild(NewStatsWidget(120, 64, cfg.Stats))
	}
	bg := cfg.Background
	if bg == (Color{}) {
		bg = Color{A: 1}
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(&shell{scene: scene, cfg: cfg, bg: bg})
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
