package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"flycam/internal/config"
	"flycam/internal/game"
	"flycam/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

const defaultConfigPath = "config.yaml"

type options struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "flycam",
		Short:        "Fly keyboard-controlled entities around a debug scene",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", defaultConfigPath, "path to the YAML config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "override logging.level from the config")

	root.AddCommand(&cobra.Command{
		Use:   "keys",
		Short: "Print the effective key bindings and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			return printBindings(cmd.OutOrStdout(), cfg)
		},
	})
	return root
}

// loadConfig reads the config file, falling back to defaults when the
// default path does not exist.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) || opts.configPath != defaultConfigPath {
			return nil, err
		}
		cfg = config.DefaultConfig()
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	return cfg, nil
}

func run(opts *options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("config loaded", zap.String("path", opts.configPath))

	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		return err
	}
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", zap.Error(err))
		return err
	}
	logger.Info("bye")
	return nil
}

func printBindings(w io.Writer, cfg *config.Config) error {
	rows := []struct {
		name string
		keys []string
	}{
		{"forward", cfg.Keys.Forward},
		{"back", cfg.Keys.Back},
		{"left", cfg.Keys.Left},
		{"right", cfg.Keys.Right},
		{"up", cfg.Keys.Up},
		{"down", cfg.Keys.Down},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-8s %v\n", r.name, r.keys); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "speed    %.2f u/s (normalize diagonal: %v)\n", cfg.GetMoveSpeed(), cfg.Movement.NormalizeDiagonal)
	return err
}
