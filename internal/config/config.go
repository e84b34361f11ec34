package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWidth        = 512
	DefaultHeight       = 512
	DefaultFrames       = 500
	DefaultFPS          = 30
	DefaultDotCount     = 200
	DefaultMovingFrac   = 0.1
	DefaultStaticFrac   = 0.05
	DefaultMaxDotSize   = 5
	DefaultMinDotSize   = 3
	DefaultMaxSpeed     = 2.0
	DefaultBlurKernel   = 15
	DefaultBlurSigma    = 5.0
	DefaultOutputPath   = "pulsating_dots.tif"
	DefaultManifestPath = "dot_list.json"
)

const (
	FormatTIFF = "tiff"
	FormatGIF  = "gif"
	FormatPNG  = "png"
)

type Config struct {
	Width    int        `yaml:"width"`
	Height   int        `yaml:"height"`
	Frames   int        `yaml:"frames"`
	FPS      int        `yaml:"fps"`
	Seed     int64      `yaml:"seed"`
	Workers  int        `yaml:"workers"`
	Dots     DotConfig  `yaml:"dots"`
	Blur     BlurConfig `yaml:"blur"`
	Output   string     `yaml:"output"`
	Manifest string     `yaml:"manifest"`
	Format   string     `yaml:"format"`
}

type DotConfig struct {
	Count      int     `yaml:"count"`
	MovingFrac float64 `yaml:"moving_fraction"`
	StaticFrac float64 `yaml:"static_bright_fraction"`
	MaxSize    int     `yaml:"max_size"`
	MinSize    int     `yaml:"min_size"`
	MaxSpeed   float64 `yaml:"max_speed"`
}

type BlurConfig struct {
	KernelSize int     `yaml:"kernel_size"`
	Sigma      float64 `yaml:"sigma"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Frames: DefaultFrames,
		FPS:    DefaultFPS,
		Dots: DotConfig{
			Count:      DefaultDotCount,
			MovingFrac: DefaultMovingFrac,
			StaticFrac: DefaultStaticFrac,
			MaxSize:    DefaultMaxDotSize,
			MinSize:    DefaultMinDotSize,
			MaxSpeed:   DefaultMaxSpeed,
		},
		Blur: BlurConfig{
			KernelSize: DefaultBlurKernel,
			Sigma:      DefaultBlurSigma,
		},
		Output:   DefaultOutputPath,
		Manifest: DefaultManifestPath,
		Format:   FormatTIFF,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the configuration before any frames are generated, so a
// bad value fails the run up front instead of producing a broken sequence.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("frame dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("frame count must be positive, got %d", c.Frames)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.Dots.Count < 0 {
		return fmt.Errorf("dot count must be non-negative, got %d", c.Dots.Count)
	}
	if c.Dots.MovingFrac < 0 || c.Dots.MovingFrac > 1 {
		return fmt.Errorf("moving fraction must be in [0,1], got %g", c.Dots.MovingFrac)
	}
	if c.Dots.StaticFrac < 0 || c.Dots.StaticFrac > 1 {
		return fmt.Errorf("static bright fraction must be in [0,1], got %g", c.Dots.StaticFrac)
	}
	if c.Dots.MovingFrac+c.Dots.StaticFrac > 1 {
		return fmt.Errorf("category fractions must sum to at most 1, got %g",
			c.Dots.MovingFrac+c.Dots.StaticFrac)
	}
	if c.Dots.MaxSize <= 0 {
		return fmt.Errorf("max dot size must be positive, got %d", c.Dots.MaxSize)
	}
	if c.Dots.MinSize < 0 || c.Dots.MinSize > c.Dots.MaxSize {
		return fmt.Errorf("min dot size must be in [0,%d], got %d", c.Dots.MaxSize, c.Dots.MinSize)
	}
	if c.Dots.MaxSpeed < 0 {
		return fmt.Errorf("max speed must be non-negative, got %g", c.Dots.MaxSpeed)
	}
	if c.Blur.KernelSize <= 0 || c.Blur.KernelSize%2 == 0 {
		return fmt.Errorf("blur kernel size must be odd and positive, got %d", c.Blur.KernelSize)
	}
	if c.Blur.Sigma <= 0 {
		return fmt.Errorf("blur sigma must be positive, got %g", c.Blur.Sigma)
	}
	switch c.Format {
	case FormatTIFF, FormatGIF, FormatPNG:
	default:
		return fmt.Errorf("unknown output format: %s", c.Format)
	}
	return nil
}
