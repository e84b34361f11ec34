package output

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// WritePNGSequence writes one zero-padded PNG per frame into dir, creating
// the directory if needed. frame_0000.png is the first frame.
func WritePNGSequence(dir string, frames []*image.RGBA) error {
	if len(frames) == 0 {
		return errors.New("output: no frames to encode")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for i, frame := range frames {
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, frame); err != nil {
			return fmt.Errorf("output: frame %d: %w", i, err)
		}
	}
	return nil
}

func writePNG(path string, frame *image.RGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, frame); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
