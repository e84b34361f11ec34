package output

import (
	"fmt"
	"image"
	"os"

	"github.com/dinosaurus-rexx/smTIRF-simulation-002/internal/config"
)

// Save writes the frame sequence to path in the named format. For the PNG
// format, path is the sequence directory; otherwise it is a single file
// that is removed again if encoding fails partway.
func Save(path, format string, frames []*image.RGBA, fps int) error {
	if format == config.FormatPNG {
		return WritePNGSequence(path, frames)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	var encErr error
	switch format {
	case config.FormatTIFF:
		encErr = WriteTIFF(f, frames)
	case config.FormatGIF:
		encErr = WriteGIF(f, frames, fps)
	default:
		encErr = fmt.Errorf("output: unknown format: %s", format)
	}

	closeErr := f.Close()
	if encErr != nil {
		os.Remove(path)
		return encErr
	}
	if closeErr != nil {
		os.Remove(path)
		return closeErr
	}
	return nil
}
