// Package field models the synthetic dot field that frames are rendered from.
//
// The package defines the dot entity and the factory that populates a field
// from a configuration:
//
//   - [Dot]: a single fluorescent dot with position, motion and pulsation state
//   - [Category]: behavioral class (moving, static bright, stationary pulsating)
//   - [Population]: ordered collection of dots, stable across a whole run
//
// Dots pulsate on a shared sinusoid offset by a per-dot phase, so a frame
// index and a maximum size fully determine every radius. Only stationary
// pulsating dots count as true events for detection ground truth; moving and
// static bright dots exist to be rejected.
//
// # Determinism
//
// [NewPopulation] draws every random quantity, dot IDs included, from the
// *rand.Rand it is given. Two populations built from generators with the
// same seed are identical.
package field
