package sim

import (
	"image"
	"time"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/field"
)

// Observer receives progress during a run. OnFrame is called once per
// rendered frame with the number of frames completed so far; calls are
// serialized, but completion order is not frame order when rendering runs
// on several workers.
type Observer interface {
	OnFrame(done, total int)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(done, total int)

func (f ObserverFunc) OnFrame(done, total int) { f(done, total) }

// Result is a completed generation run: every rendered frame in sequence
// order plus the population the frames were rendered from. The population's
// initial positions and categories are what the manifest records.
type Result struct {
	Frames     []*image.RGBA
	Population field.Population
	Elapsed    time.Duration
}
