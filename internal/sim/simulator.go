// Package sim drives a full generation run: it seeds the dot field, plays
// the trajectories forward, and renders every frame.
//
// A run has two phases. The trajectory phase is sequential because each
// frame's positions depend on the previous frame's bounces; it produces an
// immutable per-frame snapshot of visible spots. The render phase then
// rasterizes and blurs those snapshots on a pool of workers, since no frame
// depends on any other once the snapshots exist.
package sim

import (
	"context"
	"math/rand"
	"time"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/field"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/render"
)

// Run generates the full frame sequence for cfg. The same configuration and
// seed always produce the same population, trajectories and pixels. obs may
// be nil. On context cancellation the partial result is discarded and the
// context's error is returned.
func Run(ctx context.Context, cfg *config.Config, obs Observer) (*Result, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	rng := rand.New(rand.NewSource(cfg.Seed))
	pop, err := field.NewPopulation(cfg.Dots, float64(cfg.Width), float64(cfg.Height), rng)
	if err != nil {
		return nil, err
	}

	traj, err := Trajectories(ctx, pop, cfg)
	if err != nil {
		return nil, err
	}

	renderer, err := render.NewRenderer(cfg.Width, cfg.Height, cfg.Blur.KernelSize, cfg.Blur.Sigma)
	if err != nil {
		return nil, err
	}

	frames, err := renderFrames(ctx, renderer, traj, cfg.Workers, obs)
	if err != nil {
		return nil, err
	}

	return &Result{
		Frames:     frames,
		Population: pop,
		Elapsed:    time.Since(start),
	}, nil
}

// Trajectories advances the population frame by frame and snapshots the
// spot list for each frame. Dots move before they are snapshotted, so frame
// zero already reflects one step, and the population is left in its final
// state. The snapshots alias nothing and may be rendered concurrently.
func Trajectories(ctx context.Context, pop field.Population, cfg *config.Config) ([][]render.Spot, error) {
	width := float64(cfg.Width)
	height := float64(cfg.Height)

	traj := make([][]render.Spot, cfg.Frames)
	for frame := 0; frame < cfg.Frames; frame++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		spots := make([]render.Spot, len(pop))
		for i := range pop {
			d := &pop[i]
			d.Advance(width, height)
			spots[i] = render.Spot{
				X: int(d.X),
				Y: int(d.Y),
				R: d.Radius(frame, cfg.Dots.MaxSize),
			}
		}
		traj[frame] = spots
	}
	return traj, nil
}
