package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/sprig/app"
	"github.com/phanxgames/sprig/audio"
	"github.com/phanxgames/sprig/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath string
	verbose    bool
	mute       bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd opens the game window.
var rootCmd = &cobra.Command{
	Use:   "sprig",
	Short: "sprig - a tiny reactive arcade game",
	Long: `sprig is a small arcade game: walk the player along waypoints with the
left mouse button, shoot the dashing enemy with the right one.

Run without arguments to open the game window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.Logging.Debug = true
		}
		if mute {
			cfg.Audio.Mute = true
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		logger, err = newLogger(cfg.Logging, cmd.Name() == "tty")
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

// newLogger builds a production logger. A terminal frontend owns stderr, so
// it only logs when a file is configured.
func newLogger(c config.LoggingConfig, ownsTerminal bool) (*zap.Logger, error) {
	if ownsTerminal && c.File == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	if c.Debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if c.File != "" {
		zc.OutputPaths = []string{c.File}
		zc.ErrorOutputPaths = []string{c.File}
	}
	return zc.Build()
}

func runWindow(cmd *cobra.Command, args []string) error {
	var out audio.Output
	if !cfg.Audio.Mute {
		eo, err := audio.NewEbitenOutput()
		if err != nil {
			logger.Warn("audio disabled", zap.Error(err))
		} else {
			out = eo
		}
	}
	bank, err := audio.NewBank(out, cfg.Audio, logger.Named("audio"))
	if err != nil {
		return fmt.Errorf("failed to build sounds: %w", err)
	}

	a := app.New(cfg, bank, logger)
	defer a.Dispose()
	if err := a.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	s := a.Game.Snapshot()
	logger.Info("window closed", zap.Int("frames", s.Frame), zap.Int("hits", s.Hits))
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "sprig.yaml", "Config file (missing file uses defaults)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging and scene debug checks")
	rootCmd.PersistentFlags().BoolVar(&mute, "mute", false, "Disable sound")

	rootCmd.AddCommand(ttyCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
