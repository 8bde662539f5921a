package app

import (
	"context"
	"errors"
	"image"
	"time"

	"mad-life/internal/control"
	"mad-life/internal/core"
	"mad-life/internal/render"
)

// BenchResult summarises a headless run.
type BenchResult struct {
	Generation uint64
	Throughput control.Throughput
}

// RunHeadless drives the controller loop against an in-memory surface for
// the given number of host frames, flushing the frame queue by hand.
func RunHeadless(ctx context.Context, engine core.Engine, cfg control.Config, frames int) (BenchResult, error) {
	if frames <= 0 {
		return BenchResult{}, errors.New("frames must be positive")
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	surface := render.NewMemorySurface(image.Point{})
	queue := &control.FrameQueue{}
	ctrl, err := control.New(engine, surface, queue, cfg)
	if err != nil {
		return BenchResult{}, err
	}
	if err := ctrl.Start(); err != nil {
		return BenchResult{}, err
	}
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return BenchResult{Generation: ctrl.Generation()}, err
		}
		queue.Flush()
		ctrl.Poll(now())
		if err := ctrl.Fault(); err != nil {
			return BenchResult{Generation: ctrl.Generation()}, err
		}
	}
	t, _ := ctrl.Metrics().Finish(now())
	return BenchResult{Generation: ctrl.Generation(), Throughput: t}, nil
}
