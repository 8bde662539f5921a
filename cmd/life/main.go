package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"mad-life/internal/app"
	"mad-life/internal/core"
	_ "mad-life/internal/sims/life"
	"mad-life/internal/telemetry"
)

func main() {
	cfg := app.NewConfig()
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "interactive Game of Life",
		Long: `life runs Conway's Game of Life on a toroidal grid in a window.
Space pauses, N steps while paused, the mouse paints cells and the
wheel zooms.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configFile != "" {
				if err := cfg.LoadFile(configFile, cmd.Flags()); err != nil {
					return err
				}
			}
			return cfg.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setup(cfg)
			if err != nil {
				return err
			}
			return runGUI(cfg, log)
		},
	}
	cfg.Bind(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	rootCmd.AddCommand(benchCmd(cfg))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "engines",
		Short: "list registered engines",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(core.EngineNames(), "\n"))
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func setup(cfg *app.Config) (*slog.Logger, error) {
	log, err := cfg.NewLogger(os.Stderr)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(log)
	return log, nil
}

func newEngine(cfg *app.Config, cellSize int) (core.Engine, error) {
	factory, ok := core.Engines()[cfg.Engine]
	if !ok {
		return nil, fmt.Errorf("unknown engine %q (have %s)", cfg.Engine, strings.Join(core.EngineNames(), ", "))
	}
	return factory(core.EngineOptions{
		Width:         cfg.Width,
		Height:        cfg.Height,
		CellPixelSize: cellSize,
		Seed:          cfg.Seed,
	})
}

func perfReporter(cfg *app.Config) (*telemetry.PerfWriter, error) {
	return telemetry.NewPerfFile(cfg.PerfCSV)
}
