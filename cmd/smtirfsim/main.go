package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/field"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/manifest"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/output"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/sim"
	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/ui"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

// progressEvery controls how often generate reports finished frames.
const progressEvery = 50

var (
	width        int
	height       int
	frames       int
	fps          int
	seed         int64
	workers      int
	dotCount     int
	movingFrac   float64
	staticFrac   float64
	maxSize      int
	minSize      int
	maxSpeed     float64
	kernelSize   int
	sigma        float64
	outputPath   string
	manifestPath string
	format       string
	// Config file
	configFile string
	// Preset name
	preset string
	// Pulse plot parameters
	pulsePhase   float64
	pulseFrames  int
	pulseMaxSize int
	pulseFPS     int
)

// main is the entry point for the smtirfsim CLI; it registers commands and
// flags and executes the root command.
// It exits the process with status 1 if command execution returns an error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "smtirfsim",
		Short: "synthetic smTIRF test sequence generator",
	}

	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "generate a frame sequence with ground truth",
		Args:  cobra.NoArgs,
		RunE:  runGenerate,
	}
	generateCmd.Flags().IntVar(&width, "width", config.DefaultWidth, "frame width in pixels")
	generateCmd.Flags().IntVar(&height, "height", config.DefaultHeight, "frame height in pixels")
	generateCmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of frames")
	generateCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	generateCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	generateCmd.Flags().IntVar(&workers, "workers", 0, "render workers (0 = all cpus)")
	generateCmd.Flags().IntVar(&dotCount, "dots", config.DefaultDotCount, "number of dots")
	generateCmd.Flags().Float64Var(&movingFrac, "moving", config.DefaultMovingFrac, "fraction of moving dots")
	generateCmd.Flags().Float64Var(&staticFrac, "static-bright", config.DefaultStaticFrac, "fraction of static bright dots")
	generateCmd.Flags().IntVar(&maxSize, "max-size", config.DefaultMaxDotSize, "maximum dot radius")
	generateCmd.Flags().IntVar(&minSize, "min-size", config.DefaultMinDotSize, "minimum dot radius")
	generateCmd.Flags().Float64Var(&maxSpeed, "speed", config.DefaultMaxSpeed, "maximum dot speed (px/frame)")
	generateCmd.Flags().IntVar(&kernelSize, "kernel", config.DefaultBlurKernel, "gaussian blur kernel size")
	generateCmd.Flags().Float64Var(&sigma, "sigma", config.DefaultBlurSigma, "gaussian blur sigma")
	generateCmd.Flags().StringVar(&outputPath, "output", config.DefaultOutputPath, "output path")
	generateCmd.Flags().StringVar(&manifestPath, "manifest", config.DefaultManifestPath, "ground truth manifest path")
	generateCmd.Flags().StringVar(&format, "format", config.FormatTIFF, "output format (tiff, gif, png)")
	generateCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	generateCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	pulseCmd := &cobra.Command{
		Use:   "pulse",
		Short: "plot the dot pulsation curve",
		RunE:  plotPulse,
	}
	pulseCmd.Flags().Float64Var(&pulsePhase, "phase", 0.0, "pulsation phase offset (radians)")
	pulseCmd.Flags().IntVar(&pulseFrames, "frames", 100, "frames to plot")
	pulseCmd.Flags().IntVar(&pulseMaxSize, "max-size", config.DefaultMaxDotSize, "maximum dot radius")
	pulseCmd.Flags().IntVar(&pulseFPS, "fps", config.DefaultFPS, "frame rate for the pulses/min figure")

	inspectCmd := &cobra.Command{
		Use:   "inspect [manifest]",
		Short: "summarize a ground truth manifest",
		Args:  cobra.ExactArgs(1),
		RunE:  inspectManifest,
	}

	rootCmd.AddCommand(generateCmd, presetsCmd, pulseCmd, inspectCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// Load preset if specified
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Apply preset values
		width = p.Width
		height = p.Height
		frames = p.Frames
		fps = p.FPS
		workers = p.Workers
		dotCount = p.Dots.Count
		movingFrac = p.Dots.MovingFrac
		staticFrac = p.Dots.StaticFrac
		maxSize = p.Dots.MaxSize
		minSize = p.Dots.MinSize
		maxSpeed = p.Dots.MaxSpeed
		kernelSize = p.Blur.KernelSize
		sigma = p.Blur.Sigma
		outputPath = p.Output
		manifestPath = p.Manifest
		format = p.Format
		if p.Seed != 0 {
			seed = p.Seed
		}
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		fc, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		// Apply config values (CLI flags override config)
		if !cmd.Flags().Changed("width") {
			width = fc.Width
		}
		if !cmd.Flags().Changed("height") {
			height = fc.Height
		}
		if !cmd.Flags().Changed("frames") {
			frames = fc.Frames
		}
		if !cmd.Flags().Changed("fps") {
			fps = fc.FPS
		}
		if !cmd.Flags().Changed("workers") {
			workers = fc.Workers
		}
		if !cmd.Flags().Changed("dots") {
			dotCount = fc.Dots.Count
		}
		if !cmd.Flags().Changed("moving") {
			movingFrac = fc.Dots.MovingFrac
		}
		if !cmd.Flags().Changed("static-bright") {
			staticFrac = fc.Dots.StaticFrac
		}
		if !cmd.Flags().Changed("max-size") {
			maxSize = fc.Dots.MaxSize
		}
		if !cmd.Flags().Changed("min-size") {
			minSize = fc.Dots.MinSize
		}
		if !cmd.Flags().Changed("speed") {
			maxSpeed = fc.Dots.MaxSpeed
		}
		if !cmd.Flags().Changed("kernel") {
			kernelSize = fc.Blur.KernelSize
		}
		if !cmd.Flags().Changed("sigma") {
			sigma = fc.Blur.Sigma
		}
		if !cmd.Flags().Changed("output") {
			outputPath = fc.Output
		}
		if !cmd.Flags().Changed("manifest") {
			manifestPath = fc.Manifest
		}
		if !cmd.Flags().Changed("format") {
			format = fc.Format
		}
		if fc.Seed != 0 && !cmd.Flags().Changed("seed") {
			seed = fc.Seed
		}
	}

	cfg := &config.Config{
		Width:   width,
		Height:  height,
		Frames:  frames,
		FPS:     fps,
		Seed:    seed,
		Workers: workers,
		Dots: config.DotConfig{
			Count:      dotCount,
			MovingFrac: movingFrac,
			StaticFrac: staticFrac,
			MaxSize:    maxSize,
			MinSize:    minSize,
			MaxSpeed:   maxSpeed,
		},
		Blur: config.BlurConfig{
			KernelSize: kernelSize,
			Sigma:      sigma,
		},
		Output:   outputPath,
		Manifest: manifestPath,
		Format:   format,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	moving, staticBright, stationary := field.PlanCounts(cfg.Dots)
	fmt.Print(ui.RenderPlan(cfg, moving, staticBright, stationary))

	fmt.Printf("generating %d frames...\n", cfg.Frames)
	obs := sim.ObserverFunc(func(done, total int) {
		if done%progressEvery == 0 || done == total {
			fmt.Printf("frame %d/%d\n", done, total)
		}
	})

	result, err := sim.Run(context.Background(), cfg, obs)
	if err != nil {
		return err
	}

	records := manifest.Build(result.Population)
	if err := manifest.WriteFile(cfg.Manifest, records); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	if err := output.Save(cfg.Output, cfg.Format, result.Frames, cfg.FPS); err != nil {
		return fmt.Errorf("failed to write frames: %w", err)
	}

	fmt.Println()
	fmt.Print(ui.RenderSummary(manifest.Summarize(records), cfg, result.Elapsed))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	names := config.ListPresets()
	if len(names) == 0 {
		fmt.Println("no presets found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tFRAMES\tDOTS\tMOVING\tSTATIC\tBLUR")

	for _, name := range names {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%d\t%.2f\t%.2f\t%d/%.1f\n",
			name,
			p.Width, p.Height,
			p.Frames,
			p.Dots.Count,
			p.Dots.MovingFrac,
			p.Dots.StaticFrac,
			p.Blur.KernelSize, p.Blur.Sigma,
		)
	}

	return w.Flush()
}

func plotPulse(cmd *cobra.Command, args []string) error {
	if pulseFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", pulseFrames)
	}
	if pulseMaxSize <= 0 {
		return fmt.Errorf("max size must be positive, got %d", pulseMaxSize)
	}

	data := make([]float64, pulseFrames)
	for i := range data {
		data[i] = float64(pulseMaxSize) * (math.Sin(float64(i)*field.PulseRate+pulsePhase) + 1) / 2
	}

	caption := fmt.Sprintf("dot radius over frames (max %d, phase %.2f)", pulseMaxSize, pulsePhase)
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	fmt.Println()

	period := 2 * math.Pi / field.PulseRate
	fmt.Printf("period: %.1f frames\n", period)
	if pulseFPS > 0 {
		perMinute := float64(pulseFPS) * 60 * field.PulseRate / (2 * math.Pi)
		fmt.Printf("pulses/min: %.1f (at %d fps)\n", perMinute, pulseFPS)
	}

	return nil
}

func inspectManifest(cmd *cobra.Command, args []string) error {
	records, err := manifest.Load(args[0])
	if err != nil {
		return err
	}
	s := manifest.Summarize(records)

	fmt.Printf("manifest: %s\n", args[0])
	fmt.Printf("dots: %d\n\n", s.Total)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tCOUNT\tTRUE EVENT")
	fmt.Fprintf(w, "stationary pulsating\t%d\tyes\n", s.Stationary)
	fmt.Fprintf(w, "moving\t%d\tno\n", s.Moving)
	fmt.Fprintf(w, "static bright\t%d\tno\n", s.StaticBright)
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\ntrue events: %d\n", s.TrueEvents)
	fmt.Printf("false events: %d\n", s.FalseEvents)

	bad := 0
	for _, r := range records {
		if !consistentRecord(r) {
			bad++
		}
	}
	if bad > 0 {
		fmt.Println(ui.Warn.Render(fmt.Sprintf("%d records carry inconsistent flags", bad)))
	}

	return nil
}

// consistentRecord reports whether a record's flags agree with each other: a
// dot is at most one of moving and static bright, only stationary pulsating
// dots are true events, and every dot except the static bright ones pulses.
func consistentRecord(r manifest.Record) bool {
	if r.IsMoving && r.IsStaticBright {
		return false
	}
	if r.IsTrueEvent != (!r.IsMoving && !r.IsStaticBright) {
		return false
	}
	return r.IsPulsating == !r.IsStaticBright
}
