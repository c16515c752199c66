package main

import (
	"fmt"
	"io"
	"math"

	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	simFrames int
	simEvery  int
)

// simCmd runs the game headless with a scripted pointer.
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the game headless and print the final state",
	Long: `sim steps the game without a window. The pointer circles the arena;
every --every frames it alternates a left click (waypoint) and a right click
(shot at the enemy). The final state is printed as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if simFrames < 1 || simEvery < 1 {
			return fmt.Errorf("frames and every must be positive")
		}
		return simulate(cmd.OutOrStdout(), cfg.Game, simFrames, simEvery, logger)
	},
}

// simReport is what sim prints.
type simReport struct {
	State  game.Snapshot  `yaml:"state"`
	Sounds map[string]int `yaml:"sounds"`
	Dashes int            `yaml:"dashes"`
}

// pointerAt is the scripted pointer for frame i.
func pointerAt(c game.Config, g *game.Game, i, every int) game.Pointer {
	angle := float64(i) / 60
	hover := motion.V(c.Width/2+math.Cos(angle)*c.Width/3, c.Height/2+math.Sin(angle)*c.Height/3)
	p := game.Pointer{Hover: &hover}
	if i%every == 0 {
		if (i/every)%2 == 0 {
			p.LClick = &hover
		} else {
			enemy := g.Enemy.Pos.Vec()
			p.RClick = &enemy
		}
	}
	return p
}

func simulate(w io.Writer, c game.Config, frames, every int, log *zap.Logger) error {
	bank, err := audio.NewBank(nil, audio.Config{}, log.Named("audio"))
	if err != nil {
		return fmt.Errorf("failed to build sounds: %w", err)
	}
	g := game.New(motion.NewClock(), c, bank, log.Named("game"))
	defer g.Dispose()

	for i := 1; i <= frames; i++ {
		g.Step(pointerAt(c, g, i, every), motion.Rate)
	}

	report := simReport{State: g.Snapshot(), Sounds: map[string]int{}, Dashes: g.Enemy.Dashes()}
	for _, s := range []audio.Sound{audio.SoundDash, audio.SoundShot, audio.SoundHit, audio.SoundLevelUp} {
		report.Sounds[s.String()] = bank.Played(s)
	}
	log.Info("simulation done", zap.Int("frames", frames), zap.Int("hits", report.State.Hits))

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return enc.Close()
}

func init() {
	simCmd.Flags().IntVar(&simFrames, "frames", 600, "Frames to simulate")
	simCmd.Flags().IntVar(&simEvery, "every", 45, "Frames between scripted clicks")
}
