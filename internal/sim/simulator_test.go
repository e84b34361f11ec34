package sim

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/field"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.Frames = 10
	cfg.Seed = 99
	cfg.Workers = 2
	cfg.Dots.Count = 20
	cfg.Blur.KernelSize = 5
	cfg.Blur.Sigma = 1.5
	return cfg
}

func TestRun_ProducesOrderedFrames(t *testing.T) {
	cfg := testConfig()
	result, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(result.Frames))
	}
	for i, frame := range result.Frames {
		if frame == nil {
			t.Fatalf("frame %d is nil", i)
		}
		if frame.Bounds().Dx() != 64 || frame.Bounds().Dy() != 64 {
			t.Errorf("frame %d: expected 64x64, got %v", i, frame.Bounds())
		}
	}
	if len(result.Population) != 20 {
		t.Errorf("expected 20 dots, got %d", len(result.Population))
	}

	moving, static, stationary := result.Population.CountByCategory()
	if moving != 2 || static != 1 || stationary != 17 {
		t.Errorf("expected 2/1/17 split, got %d/%d/%d", moving, static, stationary)
	}
}

func TestRun_Deterministic(t *testing.T) {
	a, err := Run(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	b, err := Run(context.Background(), testConfig(), nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	for i := range a.Frames {
		if !bytes.Equal(a.Frames[i].Pix, b.Frames[i].Pix) {
			t.Fatalf("frame %d differs between identically seeded runs", i)
		}
	}
	for i := range a.Population {
		if a.Population[i].ID != b.Population[i].ID {
			t.Fatalf("dot %d id differs between identically seeded runs", i)
		}
	}

	other := testConfig()
	other.Seed = 100
	c, err := Run(context.Background(), other, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	same := true
	for i := range a.Frames {
		if !bytes.Equal(a.Frames[i].Pix, c.Frames[i].Pix) {
			same = false
			break
		}
	}
	if same {
		t.Error("different seeds produced identical frame sequences")
	}
}

func TestRun_NilConfig(t *testing.T) {
	_, err := Run(context.Background(), nil, nil)
	if !errors.Is(err, ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Blur.KernelSize = 4
	if _, err := Run(context.Background(), cfg, nil); err == nil {
		t.Error("expected validation error for even kernel")
	}
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, testConfig(), nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if result != nil {
		t.Error("expected nil result after cancellation")
	}
}

func TestRun_ObserverSeesEveryFrame(t *testing.T) {
	cfg := testConfig()

	seen := make(map[int]bool)
	total := 0
	obs := ObserverFunc(func(done, n int) {
		seen[done] = true
		total = n
	})

	if _, err := Run(context.Background(), cfg, obs); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if total != cfg.Frames {
		t.Errorf("expected observer total %d, got %d", cfg.Frames, total)
	}
	for i := 1; i <= cfg.Frames; i++ {
		if !seen[i] {
			t.Errorf("observer never saw completion count %d", i)
		}
	}
}

func TestRun_MoreWorkersThanFrames(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 3
	cfg.Workers = 16

	result, err := Run(context.Background(), cfg, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if len(result.Frames) != 3 {
		t.Errorf("expected 3 frames, got %d", len(result.Frames))
	}
}

func TestTrajectories_AdvanceBeforeSnapshot(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 3

	pop := field.Population{{
		X: 10, Y: 20, InitialX: 10, InitialY: 20,
		VX: 2, VY: -1,
		Category: field.Moving,
	}}

	traj, err := Trajectories(context.Background(), pop, cfg)
	if err != nil {
		t.Fatalf("trajectories failed: %v", err)
	}

	wantX := []int{12, 14, 16}
	wantY := []int{19, 18, 17}
	for frame := range traj {
		if len(traj[frame]) != 1 {
			t.Fatalf("frame %d: expected 1 spot, got %d", frame, len(traj[frame]))
		}
		s := traj[frame][0]
		if s.X != wantX[frame] || s.Y != wantY[frame] {
			t.Errorf("frame %d: expected (%d,%d), got (%d,%d)",
				frame, wantX[frame], wantY[frame], s.X, s.Y)
		}
	}
}

func TestTrajectories_BounceShowsUpInSnapshots(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 2

	pop := field.Population{{
		X: 2, Y: 30, InitialX: 2, InitialY: 30,
		VX: -3, VY: 0,
		Category: field.Moving,
	}}

	traj, err := Trajectories(context.Background(), pop, cfg)
	if err != nil {
		t.Fatalf("trajectories failed: %v", err)
	}

	if traj[0][0].X != 0 {
		t.Errorf("expected clamp to edge in frame 0, got x=%d", traj[0][0].X)
	}
	if traj[1][0].X != 3 {
		t.Errorf("expected reflected travel in frame 1, got x=%d", traj[1][0].X)
	}
}

func TestTrajectories_RadiiFollowPulsation(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 40

	pop := field.Population{{
		X: 32, Y: 32, InitialX: 32, InitialY: 32,
		Phase:    1.1,
		Category: field.StationaryPulsating,
	}}
	probe := pop[0]

	traj, err := Trajectories(context.Background(), pop, cfg)
	if err != nil {
		t.Fatalf("trajectories failed: %v", err)
	}

	for frame := range traj {
		want := probe.Radius(frame, cfg.Dots.MaxSize)
		if got := traj[frame][0].R; got != want {
			t.Errorf("frame %d: expected radius %d, got %d", frame, want, got)
		}
	}
}

func TestTrajectories_StaticBrightConstant(t *testing.T) {
	cfg := testConfig()
	cfg.Frames = 5

	pop := field.Population{{
		X: 32, Y: 32, InitialX: 32, InitialY: 32,
		Phase:    0.4,
		Category: field.StaticBright,
	}}

	traj, err := Trajectories(context.Background(), pop, cfg)
	if err != nil {
		t.Fatalf("trajectories failed: %v", err)
	}

	want := cfg.Dots.MaxSize * 2
	for frame := range traj {
		s := traj[frame][0]
		if s.R != want {
			t.Errorf("frame %d: expected radius %d, got %d", frame, want, s.R)
		}
		if s.X != 32 || s.Y != 32 {
			t.Errorf("frame %d: static dot moved to (%d,%d)", frame, s.X, s.Y)
		}
	}
}
