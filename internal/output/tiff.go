package output

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"math"
)

// Baseline TIFF tag and type constants, little-endian layout.
const (
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagCompression     = 259
	tagPhotometric     = 262
	tagStripOffsets    = 273
	tagSamplesPerPixel = 277
	tagRowsPerStrip    = 278
	tagStripByteCounts = 279
	tagXResolution     = 282
	tagYResolution     = 283
	tagResolutionUnit  = 296

	typeShort    = 3
	typeLong     = 4
	typeRational = 5

	compressionNone = 1
	photometricRGB  = 2
	resolutionInch  = 2
)

// Each page carries 12 directory entries plus the out-of-line values for
// BitsPerSample and the two resolution rationals.
const (
	ifdEntryCount = 12
	ifdSize       = 2 + ifdEntryCount*12 + 4
	extSize       = 6 + 8 + 8
)

type ifdEntry struct {
	tag   uint16
	typ   uint16
	count uint32
	value uint32
}

// WriteTIFF encodes the frames as one multi-page TIFF: for every page a
// single uncompressed RGB strip followed by its directory, directories
// chained in frame order. All frames must share dimensions. Readers that
// only look at the first directory see a valid single-image TIFF.
func WriteTIFF(w io.Writer, frames []*image.RGBA) error {
	if len(frames) == 0 {
		return errors.New("output: no frames to encode")
	}
	width := frames[0].Bounds().Dx()
	height := frames[0].Bounds().Dy()
	for i, f := range frames {
		if f.Bounds().Dx() != width || f.Bounds().Dy() != height {
			return fmt.Errorf("output: frame %d is %dx%d, want %dx%d",
				i, f.Bounds().Dx(), f.Bounds().Dy(), width, height)
		}
	}

	stripLen := width * height * 3
	stripPad := stripLen % 2 // directories must start on a word boundary
	blockSize := stripLen + stripPad + ifdSize + extSize

	totalSize := 8 + int64(len(frames))*int64(blockSize)
	if totalSize > math.MaxUint32 {
		return fmt.Errorf("output: sequence does not fit 32-bit tiff offsets (%d bytes)", totalSize)
	}

	enc := &tiffEncoder{w: bufio.NewWriterSize(w, 1<<20)}

	// Header: byte order, magic, offset of the first directory.
	enc.bytes('I', 'I')
	enc.u16(42)
	enc.u32(uint32(8 + stripLen + stripPad))

	row := make([]byte, width*3)
	for i, frame := range frames {
		base := 8 + i*blockSize
		stripOff := base
		ifdOff := base + stripLen + stripPad
		extOff := ifdOff + ifdSize

		next := uint32(0)
		if i < len(frames)-1 {
			next = uint32(ifdOff + blockSize)
		}

		enc.strip(frame, row)
		if stripPad == 1 {
			enc.bytes(0)
		}

		entries := [ifdEntryCount]ifdEntry{
			{tagImageWidth, typeLong, 1, uint32(width)},
			{tagImageLength, typeLong, 1, uint32(height)},
			{tagBitsPerSample, typeShort, 3, uint32(extOff)},
			{tagCompression, typeShort, 1, compressionNone},
			{tagPhotometric, typeShort, 1, photometricRGB},
			{tagStripOffsets, typeLong, 1, uint32(stripOff)},
			{tagSamplesPerPixel, typeShort, 1, 3},
			{tagRowsPerStrip, typeLong, 1, uint32(height)},
			{tagStripByteCounts, typeLong, 1, uint32(stripLen)},
			{tagXResolution, typeRational, 1, uint32(extOff + 6)},
			{tagYResolution, typeRational, 1, uint32(extOff + 14)},
			{tagResolutionUnit, typeShort, 1, resolutionInch},
		}

		enc.u16(ifdEntryCount)
		for _, e := range entries {
			enc.u16(e.tag)
			enc.u16(e.typ)
			enc.u32(e.count)
			enc.u32(e.value)
		}
		enc.u32(next)

		// Out-of-line values: 8 bits per sample, then 72/1 dpi twice.
		enc.u16(8)
		enc.u16(8)
		enc.u16(8)
		enc.u32(72)
		enc.u32(1)
		enc.u32(72)
		enc.u32(1)
	}

	if enc.err != nil {
		return enc.err
	}
	return enc.w.Flush()
}

// tiffEncoder wraps the buffered writer with sticky error handling so the
// layout code above stays free of per-write error plumbing.
type tiffEncoder struct {
	w   *bufio.Writer
	err error
}

func (e *tiffEncoder) bytes(b ...byte) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Write(b)
}

func (e *tiffEncoder) u16(v uint16) {
	if e.err != nil {
		return
	}
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, e.err = e.w.Write(buf[:])
}

func (e *tiffEncoder) u32(v uint32) {
	if e.err != nil {
		return
	}
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], v)
	_, e.err = e.w.Write(buf[:])
}

// strip writes the frame's pixels as packed RGB rows, dropping alpha.
func (e *tiffEncoder) strip(frame *image.RGBA, row []byte) {
	if e.err != nil {
		return
	}
	b := frame.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := frame.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			row[x*3] = frame.Pix[i]
			row[x*3+1] = frame.Pix[i+1]
			row[x*3+2] = frame.Pix[i+2]
			i += 4
		}
		if _, err := e.w.Write(row); err != nil {
			e.err = err
			return
		}
	}
}
