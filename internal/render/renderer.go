package render

import (
	"fmt"
	"image"
)

// Renderer produces finished frames for a fixed geometry and blur setting.
// Frame is safe to call from multiple goroutines: the kernel is read-only
// and every call allocates its own buffers.
type Renderer struct {
	Width  int
	Height int
	kernel []float64
}

func NewRenderer(width, height, kernelSize int, sigma float64) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: frame dimensions must be positive, got %dx%d", width, height)
	}
	if kernelSize <= 0 || kernelSize%2 == 0 {
		return nil, fmt.Errorf("render: kernel size must be odd and positive, got %d", kernelSize)
	}
	if sigma <= 0 {
		return nil, fmt.Errorf("render: sigma must be positive, got %g", sigma)
	}
	return &Renderer{
		Width:  width,
		Height: height,
		kernel: Kernel(kernelSize, sigma),
	}, nil
}

// Frame rasterizes the spots and softens the result.
func (r *Renderer) Frame(spots []Spot) *image.RGBA {
	return Blur(Rasterize(spots, r.Width, r.Height), r.kernel)
}
