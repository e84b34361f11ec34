// Package output persists rendered frame sequences.
//
// Three containers are supported:
//
//   - [WriteTIFF]: multi-page baseline TIFF, 8-bit RGB, uncompressed, with
//     one page per frame chained in sequence order
//   - [WriteGIF]: animated GIF on a 256-level gray palette, frame delay
//     derived from the configured rate
//   - [WritePNGSequence]: numbered PNG files in a directory
//
// [Save] dispatches on the configured format name and cleans up a partly
// written file when encoding fails. TIFF carries no frame-rate metadata;
// the rate only shapes GIF delays.
package output
