package config

import "sort"

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"quick": {
		Width: 128, Height: 128, Frames: 50, FPS: 30,
		Dots: DotConfig{
			Count: 40, MovingFrac: 0.1, StaticFrac: 0.05,
			MaxSize: 5, MinSize: 3, MaxSpeed: 2.0,
		},
		Blur:     BlurConfig{KernelSize: 15, Sigma: 5.0},
		Output:   "quick_dots.tif",
		Manifest: "quick_dot_list.json",
		Format:   FormatTIFF,
	},
	"dense": {
		Width: 512, Height: 512, Frames: 500, FPS: 30,
		Dots: DotConfig{
			Count: 400, MovingFrac: 0.2, StaticFrac: 0.1,
			MaxSize: 5, MinSize: 3, MaxSpeed: 2.0,
		},
		Blur:     BlurConfig{KernelSize: 15, Sigma: 5.0},
		Output:   "dense_dots.tif",
		Manifest: "dense_dot_list.json",
		Format:   FormatTIFF,
	},
	"sparse": {
		Width: 512, Height: 512, Frames: 500, FPS: 30,
		Dots: DotConfig{
			Count: 60, MovingFrac: 0.1, StaticFrac: 0.0,
			MaxSize: 5, MinSize: 3, MaxSpeed: 2.0,
		},
		Blur:     BlurConfig{KernelSize: 15, Sigma: 5.0},
		Output:   "sparse_dots.tif",
		Manifest: "sparse_dot_list.json",
		Format:   FormatTIFF,
	},
	"crisp": {
		Width: 512, Height: 512, Frames: 500, FPS: 30,
		Dots: DotConfig{
			Count: 200, MovingFrac: 0.1, StaticFrac: 0.05,
			MaxSize: 5, MinSize: 3, MaxSpeed: 2.0,
		},
		Blur:     BlurConfig{KernelSize: 5, Sigma: 1.5},
		Output:   "crisp_dots.tif",
		Manifest: "crisp_dot_list.json",
		Format:   FormatTIFF,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	out := *cfg
	return &out
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
