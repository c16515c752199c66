// Package app wires the game, its view and the scene into a window. Each
// tick the scene processes input, the ECS router turns arena clicks into a
// pointer snapshot, and the game steps by one fixed frame.
package app

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/sprig"
	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/config"
	"github.com/phanxgames/sprig/ecs"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/view"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
)

// App is a running game bound to a scene.
type App struct {
	Scene  *sprig.Scene
	Game   *game.Game
	View   *view.View
	Router *ecs.Router
	Sheet  *sprig.Sheet

	cfg *config.Config
	dt  float64
	log *zap.Logger
}

// New builds the game and mounts its view. A nil sink plays nothing.
func New(cfg *config.Config, sink audio.Sink, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	world := donburi.NewWorld()

	scene := sprig.NewScene()
	scene.SetLogger(log.Named("scene"))
	scene.SetDebugMode(cfg.Logging.Debug)
	scene.SetEntityStore(ecs.NewDonburiStore(world))
	scene.ScreenshotDir = cfg.Window.ScreenshotDir

	a := &App{
		Scene:  scene,
		Router: ecs.NewRouter(world),
		Sheet:  view.NewSheet(),
		Game:   game.New(motion.NewClock(), cfg.Game, sink, log.Named("game")),
		cfg:    cfg,
		dt:     1000 / float64(cfg.Window.TPS),
		log:    log,
	}
	a.View = view.Mount(scene.Root(), a.Game, a.Sheet)
	a.Router.Register(a.View.Arena)
	scene.SetUpdateFunc(a.Tick)
	scene.ScreenshotTag = a.captureTag
	return a
}

// captureTag names screenshots after the game frame and level on screen.
func (a *App) captureTag() string {
	return fmt.Sprintf("f%05d-lvl%d", a.Game.Clock.Count(), a.Game.Level.Value())
}

// Pointer collects this frame's pointer: the hover position from the scene
// and any clicks the router saw on the arena.
func (a *App) Pointer() game.Pointer {
	a.Router.Flush()
	left, right := a.Router.Take()

	m := a.Scene.Mouse()
	hover := motion.V(m.X, m.Y)
	return game.Pointer{Hover: &hover, LClick: vec(left), RClick: vec(right)}
}

func vec(v *sprig.Vec2) *motion.Vec2 {
	if v == nil {
		return nil
	}
	out := motion.V(v.X, v.Y)
	return &out
}

// Tick steps the game by one frame. It runs after Scene.Update.
func (a *App) Tick() error {
	a.Game.Step(a.Pointer(), a.dt)
	return nil
}

// Stats is the extra line shown under the FPS counter.
func (a *App) Stats() string {
	s := a.Game.Snapshot()
	return fmt.Sprintf("lvl %d hits %d", s.Level, s.Hits)
}

// LoadScript attaches an input script read from path.
func (a *App) LoadScript(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script: %w", err)
	}
	runner, err := sprig.LoadTestScript(data)
	if err != nil {
		return fmt.Errorf("failed to load script %s: %w", path, err)
	}
	a.Scene.SetTestRunner(runner)
	a.log.Info("script loaded", zap.String("path", path), zap.Int("steps", runner.Len()))
	return nil
}

// Run opens the window and blocks until it closes. With a script attached
// the window closes once the script is done.
func (a *App) Run() error {
	if a.cfg.Script != "" {
		if err := a.LoadScript(a.cfg.Script); err != nil {
			return err
		}
	}
	a.Sheet.Register(a.Scene)
	ebiten.SetTPS(a.cfg.Window.TPS)

	a.log.Info("window starting",
		zap.String("title", a.cfg.Window.Title),
		zap.Int("tps", a.cfg.Window.TPS),
		zap.Int("scale", a.cfg.Window.Scale))
	return sprig.Run(a.Scene, sprig.RunConfig{
		Title:              a.cfg.Window.Title,
		Width:              int(a.cfg.Game.Width),
		Height:             int(a.cfg.Game.Height),
		Scale:              a.cfg.Window.Scale,
		Background:         sprig.RGB(game.RGB(game.Dark, 2)),
		ShowFPS:            a.cfg.Window.ShowFPS,
		Stats:              a.Stats,
		ExitWhenScriptDone: a.cfg.Script != "",
	})
}

// Dispose stops the view and the game.
func (a *App) Dispose() {
	a.View.Dispose()
	a.Game.Dispose()
}
