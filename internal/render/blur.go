package render

import (
	"image"
	"math"
)

// Kernel builds a normalized 1-D Gaussian of the given extent. Size must be
// odd and positive; sigma must be positive.
func Kernel(size int, sigma float64) []float64 {
	if size <= 0 {
		return nil
	}
	k := make([]float64, size)
	center := float64(size-1) / 2
	sum := 0.0
	for i := range k {
		d := float64(i) - center
		k[i] = math.Exp(-d * d / (2 * sigma * sigma))
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	return k
}

// Blur convolves the image with the kernel horizontally then vertically,
// operating on R, G and B with float accumulation and a single rounding at
// the end. Borders reflect without repeating the edge pixel. Alpha comes
// out fully opaque. The source image is not modified.
func Blur(src *image.RGBA, kernel []float64) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if len(kernel) <= 1 {
		copy(dst.Pix, src.Pix)
		return dst
	}
	half := len(kernel) / 2

	// Horizontal pass into a float buffer, three channels per pixel.
	tmp := make([]float64, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, bl float64
			for j, kv := range kernel {
				sx := reflect(x+j-half, w)
				i := src.PixOffset(b.Min.X+sx, b.Min.Y+y)
				r += kv * float64(src.Pix[i])
				g += kv * float64(src.Pix[i+1])
				bl += kv * float64(src.Pix[i+2])
			}
			o := (y*w + x) * 3
			tmp[o] = r
			tmp[o+1] = g
			tmp[o+2] = bl
		}
	}

	// Vertical pass back to bytes.
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, bl float64
			for j, kv := range kernel {
				sy := reflect(y+j-half, h)
				o := (sy*w + x) * 3
				r += kv * tmp[o]
				g += kv * tmp[o+1]
				bl += kv * tmp[o+2]
			}
			i := dst.PixOffset(x, y)
			dst.Pix[i] = clampByte(r)
			dst.Pix[i+1] = clampByte(g)
			dst.Pix[i+2] = clampByte(bl)
			dst.Pix[i+3] = 255
		}
	}
	return dst
}

// reflect maps an out-of-range index back into [0,n) by mirroring about the
// edges without duplicating the border sample.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*(n-1) - i
		}
	}
	return i
}

func clampByte(v float64) uint8 {
	v += 0.5
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
