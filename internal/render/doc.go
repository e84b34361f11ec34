// Package render turns dot snapshots into grayscale frame images.
//
// Rendering is stateless: a frame is fully described by its [Spot] list, so
// frames can be rendered in any order or in parallel once trajectories are
// known.
//
//   - [Spot]: pixel position and radius of one visible dot
//   - [Rasterize]: filled white discs on a black background
//   - [Kernel], [Blur]: separable Gaussian softening
//   - [Renderer]: rasterize plus blur with a precomputed kernel
//
// The blur takes an explicit odd kernel extent and sigma as independent
// parameters, with reflected borders, so tightening sigma without shrinking
// the kernel (or the reverse) behaves the way microscope point-spread tuning
// expects.
package render
