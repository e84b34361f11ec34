package output

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
)

// grayPalette is an identity ramp: palette index i is gray level i. Frames
// are grayscale by construction, so a pixel's red channel is already its
// palette index and conversion needs no color search.
var grayPalette = func() color.Palette {
	p := make(color.Palette, 256)
	for i := range p {
		v := uint8(i)
		p[i] = color.RGBA{v, v, v, 255}
	}
	return p
}()

// WriteGIF encodes the frames as an endlessly looping animated GIF. The
// per-frame delay is 100/fps in the format's 10ms units, so the configured
// rate survives as closely as GIF timing allows.
func WriteGIF(w io.Writer, frames []*image.RGBA, fps int) error {
	if len(frames) == 0 {
		return errors.New("output: no frames to encode")
	}
	if fps <= 0 {
		return errors.New("output: fps must be positive")
	}

	delay := 100 / fps

	anim := &gif.GIF{
		Image:     make([]*image.Paletted, len(frames)),
		Delay:     make([]int, len(frames)),
		LoopCount: 0,
	}
	for i, frame := range frames {
		anim.Image[i] = toGrayPaletted(frame)
		anim.Delay[i] = delay
	}
	return gif.EncodeAll(w, anim)
}

func toGrayPaletted(frame *image.RGBA) *image.Paletted {
	b := frame.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), grayPalette)
	for y := 0; y < b.Dy(); y++ {
		src := frame.PixOffset(b.Min.X, b.Min.Y+y)
		dst := p.PixOffset(0, y)
		for x := 0; x < b.Dx(); x++ {
			p.Pix[dst+x] = frame.Pix[src+x*4]
		}
	}
	return p
}
