package field

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
)

// spawnMargin keeps moving dots away from the edges at creation so they
// travel a while before their first bounce.
const spawnMargin = 50.0

// Population is the full set of dots for a run, in creation order: moving
// first, then static bright, then stationary pulsating. Manifest records
// are emitted in this same order.
type Population []Dot

// PlanCounts returns the category split a configuration produces: fractions
// are floored and the remainder is stationary, which can go negative when
// the fractions oversubscribe the count.
func PlanCounts(cfg config.DotConfig) (moving, staticBright, stationary int) {
	moving = int(float64(cfg.Count) * cfg.MovingFrac)
	staticBright = int(float64(cfg.Count) * cfg.StaticFrac)
	stationary = cfg.Count - moving - staticBright
	return moving, staticBright, stationary
}

// NewPopulation builds a dot field from the configuration. Category counts
// follow [PlanCounts]; a negative stationary remainder is rejected. All
// randomness comes from rng.
func NewPopulation(cfg config.DotConfig, width, height float64, rng *rand.Rand) (Population, error) {
	numMoving, numStatic, numStationary := PlanCounts(cfg)
	if numStationary < 0 {
		return nil, fmt.Errorf("field: category fractions exceed dot count (%d moving + %d static bright > %d)",
			numMoving, numStatic, cfg.Count)
	}

	pop := make(Population, 0, cfg.Count)

	for i := 0; i < numMoving; i++ {
		x, y := spawnInset(width, height, rng)
		dot, err := newDot(x, y, Moving, cfg.MaxSpeed, rng)
		if err != nil {
			return nil, err
		}
		pop = append(pop, dot)
	}
	for i := 0; i < numStatic; i++ {
		dot, err := newDot(rng.Float64()*width, rng.Float64()*height, StaticBright, 0, rng)
		if err != nil {
			return nil, err
		}
		pop = append(pop, dot)
	}
	for i := 0; i < numStationary; i++ {
		dot, err := newDot(rng.Float64()*width, rng.Float64()*height, StationaryPulsating, 0, rng)
		if err != nil {
			return nil, err
		}
		pop = append(pop, dot)
	}

	return pop, nil
}

func newDot(x, y float64, cat Category, maxSpeed float64, rng *rand.Rand) (Dot, error) {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return Dot{}, fmt.Errorf("field: generating dot id: %w", err)
	}
	d := Dot{
		ID:       id,
		X:        x,
		Y:        y,
		InitialX: x,
		InitialY: y,
		Phase:    rng.Float64() * 2 * math.Pi,
		Category: cat,
	}
	if cat == Moving {
		// A zero draw on both axes is allowed; the dot just never bounces.
		d.VX = (rng.Float64()*2 - 1) * maxSpeed
		d.VY = (rng.Float64()*2 - 1) * maxSpeed
	}
	return d, nil
}

// spawnInset places a point inside the spawn margin, or anywhere in bounds
// when the field is too small to carry the inset.
func spawnInset(width, height float64, rng *rand.Rand) (float64, float64) {
	x := insetCoord(width, rng)
	y := insetCoord(height, rng)
	return x, y
}

func insetCoord(bound float64, rng *rand.Rand) float64 {
	span := bound - 2*spawnMargin
	if span <= 0 {
		return rng.Float64() * bound
	}
	return spawnMargin + rng.Float64()*span
}

// CountByCategory tallies the population per category in one pass.
func (p Population) CountByCategory() (moving, staticBright, stationary int) {
	for i := range p {
		switch p[i].Category {
		case Moving:
			moving++
		case StaticBright:
			staticBright++
		case StationaryPulsating:
			stationary++
		}
	}
	return moving, staticBright, stationary
}
