package sim

import (
	"context"
	"image"
	"runtime"
	"sync"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/render"
)

// renderFrames rasterizes every snapshot on workers goroutines, each owning
// a contiguous index range so frames land in order without coordination.
// workers <= 0 means one worker per CPU.
func renderFrames(ctx context.Context, r *render.Renderer, traj [][]render.Spot, workers int, obs Observer) ([]*image.RGBA, error) {
	n := len(traj)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	frames := make([]*image.RGBA, n)
	errs := make([]error, workers)

	var mu sync.Mutex
	done := 0
	report := func() {
		mu.Lock()
		done++
		if obs != nil {
			obs.OnFrame(done, n)
		}
		mu.Unlock()
	}

	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}

		go func(id, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					errs[id] = ctx.Err()
					return
				default:
				}
				frames[i] = r.Frame(traj[i])
				report()
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return frames, nil
}
