package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/sprig/game"
	"github.com/phanxgames/sprig/motion"
	"github.com/phanxgames/sprig/term"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ttyCmd plays in the terminal.
var ttyCmd = &cobra.Command{
	Use:   "tty",
	Short: "Play in the terminal (mouse required)",
	RunE: func(cmd *cobra.Command, args []string) error {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to init terminal: %w", err)
		}
		defer screen.Fini()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
		defer stop()

		g := game.New(motion.NewClock(), cfg.Game, nil, logger.Named("game"))
		defer g.Dispose()

		err = term.New(screen, g, cfg.Term.FPS, logger.Named("term")).Run(ctx)
		logger.Info("terminal closed", zap.Int("frames", g.Clock.Count()))
		return err
	},
}
