package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/manifest"
)

func TestRenderPlan(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Seed = 42
	out := RenderPlan(cfg, 20, 10, 170)

	for _, want := range []string{
		"creating 200 dots",
		"moving & pulsating", "20",
		"static bright", "10",
		"stationary & pulsating", "170",
		"kernel 15", "sigma 5",
		"seed: 42",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	s := manifest.Summary{TrueEvents: 170, FalseEvents: 30, Total: 200}
	out := RenderSummary(s, cfg, 1500*time.Millisecond)

	for _, want := range []string{
		"true events", "170",
		"false events", "30",
		"total dots", "200",
		"500 (512x512 @ 30 fps)",
		"1.5s",
		"pulsating_dots.tif",
		"dot_list.json",
		"tiff stores no frame rate",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderSummary_NoRateNoteForGIF(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = config.FormatGIF
	cfg.Output = "dots.gif"

	out := RenderSummary(manifest.Summary{}, cfg, time.Second)
	if strings.Contains(out, "stores no frame rate") {
		t.Error("gif output should not carry the tiff rate note")
	}
}
