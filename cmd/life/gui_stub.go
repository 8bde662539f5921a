//go:build !ebiten

package main

import (
	"errors"
	"log/slog"

	"mad-life/internal/app"
)

func runGUI(*app.Config, *slog.Logger) error {
	return errors.New("the GUI build of mad-life requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/life` or use the bench command")
}
