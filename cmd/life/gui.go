//go:build ebiten

package main

import (
	"errors"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-life/internal/app"
	"mad-life/internal/control"
	"mad-life/internal/ui"
)

func runGUI(cfg *app.Config, log *slog.Logger) error {
	engine, err := newEngine(cfg, cfg.InitialCellSize(ui.PanelWidth))
	if err != nil {
		return err
	}
	perf, err := perfReporter(cfg)
	if err != nil {
		return err
	}
	defer perf.Close()

	var reporters []control.Reporter
	if perf != nil {
		reporters = append(reporters, perf)
	}
	game, err := app.New(engine, cfg.ControlConfig(log, reporters...))
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle("mad-life: " + engine.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting", "engine", engine.Name(), "width", cfg.Width, "height", cfg.Height, "cell_size", engine.CellPixelSize())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
