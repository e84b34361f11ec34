package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/manifest"
)

// RenderPlan describes what a run is about to generate.
func RenderPlan(cfg *config.Config, moving, staticBright, stationary int) string {
	var b strings.Builder
	b.WriteString(Title.Render(fmt.Sprintf("creating %d dots", cfg.Dots.Count)))
	b.WriteString("\n")
	b.WriteString(line("moving & pulsating", fmt.Sprintf("%d", moving)))
	b.WriteString(line("static bright (2x size)", fmt.Sprintf("%d", staticBright)))
	b.WriteString(line("stationary & pulsating", fmt.Sprintf("%d", stationary)))
	b.WriteString(Subtle.Render(fmt.Sprintf("gaussian blur: kernel %d, sigma %g",
		cfg.Blur.KernelSize, cfg.Blur.Sigma)))
	b.WriteString("\n")
	b.WriteString(Subtle.Render(fmt.Sprintf("seed: %d", cfg.Seed)))
	b.WriteString("\n")
	return b.String()
}

// RenderSummary reports a finished run: the ground-truth split, the frame
// sequence parameters, and where everything landed.
func RenderSummary(s manifest.Summary, cfg *config.Config, elapsed time.Duration) string {
	var b strings.Builder
	b.WriteString(Title.Render("ground truth"))
	b.WriteString("\n")
	b.WriteString(line("true events", fmt.Sprintf("%d", s.TrueEvents)))
	b.WriteString(line("false events", fmt.Sprintf("%d", s.FalseEvents)))
	b.WriteString(line("total dots", fmt.Sprintf("%d", s.Total)))
	b.WriteString("\n")
	b.WriteString(Title.Render("sequence"))
	b.WriteString("\n")
	b.WriteString(line("frames", fmt.Sprintf("%d (%dx%d @ %d fps)",
		cfg.Frames, cfg.Width, cfg.Height, cfg.FPS)))
	b.WriteString(line("elapsed", elapsed.Round(time.Millisecond).String()))
	b.WriteString(line("output", fmt.Sprintf("%s (%s)", cfg.Output, cfg.Format)))
	b.WriteString(line("manifest", cfg.Manifest))
	if cfg.Format == config.FormatTIFF {
		b.WriteString(Subtle.Render("tiff stores no frame rate; frames are ordered sequentially"))
		b.WriteString("\n")
	}
	return b.String()
}

func line(label, value string) string {
	return "  " + Label.Render(fmt.Sprintf("%-24s", label)) + Value.Render(value) + "\n"
}
