package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Spot is one dot's footprint in one frame: truncated pixel coordinates and
// the radius to draw. A non-positive radius means the dot is invisible this
// frame.
type Spot struct {
	X, Y, R int
}

// Rasterize draws filled white discs on a fresh black background. Discs are
// painted in slice order and clipped at the frame edges. A pixel belongs to
// a disc when dx*dx+dy*dy <= r*r.
func Rasterize(spots []Spot, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 255}), image.Point{}, draw.Src)

	for _, s := range spots {
		if s.R <= 0 {
			continue
		}
		fillDisc(img, s)
	}
	return img
}

func fillDisc(img *image.RGBA, s Spot) {
	r2 := s.R * s.R
	for dy := -s.R; dy <= s.R; dy++ {
		y := s.Y + dy
		if y < 0 || y >= img.Rect.Max.Y {
			continue
		}
		for dx := -s.R; dx <= s.R; dx++ {
			x := s.X + dx
			if x < 0 || x >= img.Rect.Max.X {
				continue
			}
			if dx*dx+dy*dy <= r2 {
				i := img.PixOffset(x, y)
				img.Pix[i] = 255
				img.Pix[i+1] = 255
				img.Pix[i+2] = 255
				img.Pix[i+3] = 255
			}
		}
	}
}
