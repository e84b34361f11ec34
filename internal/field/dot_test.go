package field

import (
	"math"
	"testing"
)

func TestRadius_PulsatingCycle(t *testing.T) {
	tests := []struct {
		name     string
		phase    float64
		frame    int
		maxSize  int
		expected int
	}{
		{"zero phase frame zero", 0, 0, 5, 2},
		{"peak of cycle", math.Pi / 2, 0, 5, 5},
		{"bottom of cycle", 3 * math.Pi / 2, 0, 5, 0},
		{"truncates toward zero", 0, 0, 7, 3},
		{"frame advances the cycle", math.Pi/2 - PulseRate, 1, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Dot{Phase: tt.phase, Category: StationaryPulsating}
			if got := d.Radius(tt.frame, tt.maxSize); got != tt.expected {
				t.Errorf("expected radius %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestRadius_StaysInRange(t *testing.T) {
	d := Dot{Phase: 1.234, Category: Moving}
	for frame := 0; frame < 200; frame++ {
		r := d.Radius(frame, 5)
		if r < 0 || r > 5 {
			t.Fatalf("frame %d: radius %d outside [0,5]", frame, r)
		}
	}
}

func TestRadius_VanishesSomewhereInCycle(t *testing.T) {
	// One full cycle spans 2*pi/PulseRate frames, about 32 at rate 0.2.
	d := Dot{Phase: 0.7, Category: StationaryPulsating}
	sawZero := false
	for frame := 0; frame < 40; frame++ {
		if d.Radius(frame, 5) == 0 {
			sawZero = true
			break
		}
	}
	if !sawZero {
		t.Error("expected the dot to vanish at the bottom of its cycle")
	}
}

func TestRadius_StaticBright(t *testing.T) {
	d := Dot{Phase: 2.1, Category: StaticBright}
	for _, frame := range []int{0, 1, 17, 499} {
		if got := d.Radius(frame, 5); got != 10 {
			t.Errorf("frame %d: expected radius 10, got %d", frame, got)
		}
	}
}

func TestAdvance_NonMovingStaysPut(t *testing.T) {
	for _, cat := range []Category{StaticBright, StationaryPulsating} {
		d := Dot{X: 100, Y: 200, VX: 3, VY: 3, Category: cat}
		d.Advance(512, 512)
		if d.X != 100 || d.Y != 200 {
			t.Errorf("%s dot moved to (%g, %g)", cat, d.X, d.Y)
		}
	}
}

func TestAdvance_Moves(t *testing.T) {
	d := Dot{X: 100, Y: 200, VX: 1.5, VY: -0.5, Category: Moving}
	d.Advance(512, 512)
	if d.X != 101.5 || d.Y != 199.5 {
		t.Errorf("expected (101.5, 199.5), got (%g, %g)", d.X, d.Y)
	}
	if d.VX != 1.5 || d.VY != -0.5 {
		t.Errorf("velocity changed without a bounce: (%g, %g)", d.VX, d.VY)
	}
}

func TestAdvance_BounceRightEdge(t *testing.T) {
	d := Dot{X: 511, Y: 100, VX: 2, VY: 0, Category: Moving}
	d.Advance(512, 512)
	if d.VX != -2 {
		t.Errorf("expected reflected vx -2, got %g", d.VX)
	}
	if d.X != 512 {
		t.Errorf("expected clamp to 512, got %g", d.X)
	}
}

func TestAdvance_BounceLeftEdge(t *testing.T) {
	d := Dot{X: 1, Y: 100, VX: -2, VY: 0, Category: Moving}
	d.Advance(512, 512)
	if d.VX != 2 {
		t.Errorf("expected reflected vx 2, got %g", d.VX)
	}
	if d.X != 0 {
		t.Errorf("expected clamp to 0, got %g", d.X)
	}
}

func TestAdvance_BouncesAxesIndependently(t *testing.T) {
	d := Dot{X: 1, Y: 511, VX: -3, VY: 3, Category: Moving}
	d.Advance(512, 512)
	if d.VX != 3 || d.VY != -3 {
		t.Errorf("expected both axes reflected, got (%g, %g)", d.VX, d.VY)
	}
	if d.X != 0 || d.Y != 512 {
		t.Errorf("expected clamps to (0, 512), got (%g, %g)", d.X, d.Y)
	}
}

func TestTrueEvent(t *testing.T) {
	tests := []struct {
		cat      Category
		expected bool
	}{
		{Moving, false},
		{StaticBright, false},
		{StationaryPulsating, true},
	}
	for _, tt := range tests {
		d := Dot{Category: tt.cat}
		if got := d.TrueEvent(); got != tt.expected {
			t.Errorf("%s: expected TrueEvent %v, got %v", tt.cat, tt.expected, got)
		}
	}
}

func TestPulsating(t *testing.T) {
	tests := []struct {
		cat      Category
		expected bool
	}{
		{Moving, true},
		{StaticBright, false},
		{StationaryPulsating, true},
	}
	for _, tt := range tests {
		d := Dot{Category: tt.cat}
		if got := d.Pulsating(); got != tt.expected {
			t.Errorf("%s: expected Pulsating %v, got %v", tt.cat, tt.expected, got)
		}
	}
}

func TestCategoryString(t *testing.T) {
	if Moving.String() != "moving" {
		t.Errorf("unexpected string: %s", Moving)
	}
	if Category(99).String() != "unknown" {
		t.Errorf("unexpected string for invalid category: %s", Category(99))
	}
}
