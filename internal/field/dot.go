package field

import (
	"math"

	"github.com/google/uuid"
)

// PulseRate is the angular pulsation rate in radians per frame. At 30 fps
// this works out to roughly 57 pulsations per minute.
const PulseRate = 0.2

// Category classifies a dot's behavior over the run.
type Category int

const (
	// Moving dots drift with a fixed velocity and bounce off frame edges.
	// They pulsate like stationary dots but are not true events.
	Moving Category = iota

	// StaticBright dots never move and never pulsate; they render at twice
	// the maximum dot size in every frame.
	StaticBright

	// StationaryPulsating dots neither move nor stay bright. They are the
	// true events a detector should find.
	StationaryPulsating
)

func (c Category) String() string {
	switch c {
	case Moving:
		return "moving"
	case StaticBright:
		return "static-bright"
	case StationaryPulsating:
		return "stationary-pulsating"
	default:
		return "unknown"
	}
}

// Dot is a single simulated fluorophore. Position is continuous; it is
// truncated to pixel coordinates only when a frame is rasterized.
type Dot struct {
	ID                 uuid.UUID
	X, Y               float64
	InitialX, InitialY float64
	VX, VY             float64
	Phase              float64
	Category           Category
}

// Advance moves the dot by one frame step within a width x height field.
// Non-moving dots are unaffected. A moving dot that reaches or crosses an
// edge has that velocity component reflected and its position clamped back
// into bounds, each axis independently.
func (d *Dot) Advance(width, height float64) {
	if d.Category != Moving {
		return
	}
	d.X += d.VX
	d.Y += d.VY

	if d.X <= 0 || d.X >= width {
		d.VX = -d.VX
		d.X = math.Max(0, math.Min(width, d.X))
	}
	if d.Y <= 0 || d.Y >= height {
		d.VY = -d.VY
		d.Y = math.Max(0, math.Min(height, d.Y))
	}
}

// Radius returns the dot's radius in pixels at the given frame. Static
// bright dots are always 2*maxSize. Everything else follows the shared
// sinusoid, mapped from [-1,1] to [0,maxSize] and truncated, so a dot
// vanishes entirely at the bottom of its cycle.
func (d *Dot) Radius(frame, maxSize int) int {
	if d.Category == StaticBright {
		return maxSize * 2
	}
	pulse := math.Sin(float64(frame)*PulseRate + d.Phase)
	return int(float64(maxSize) * (pulse + 1) / 2)
}

// TrueEvent reports whether the dot is ground-truth positive, which is
// exactly the stationary pulsating category.
func (d *Dot) TrueEvent() bool {
	return d.Category == StationaryPulsating
}

// Pulsating reports whether the dot's radius varies over time.
func (d *Dot) Pulsating() bool {
	return d.Category != StaticBright
}
