package main

import (
	"github.com/spf13/cobra"

	"mad-life/internal/app"
	"mad-life/internal/control"
)

func benchCmd(cfg *app.Config) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "run the frame loop headless and report throughput",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := setup(cfg)
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, max(cfg.CellSize, 1))
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
			log.Info("starting headless run", "engine", engine.Name(), "width", cfg.Width, "height", cfg.Height, "frames", frames)
			res, err := app.RunHeadless(cmd.Context(), engine, cfg.ControlConfig(log, reporters...), frames)
			if err != nil {
				return err
			}
			log.Info("headless run finished", "generation", res.Generation, "throughput", res.Throughput)
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 1000, "host frames to run")
	return cmd
}
