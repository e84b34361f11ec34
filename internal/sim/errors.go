package sim

import "errors"

// Domain errors for generation runs.
var (
	// ErrNilConfig indicates Run was handed no configuration.
	ErrNilConfig = errors.New("sim: nil configuration")
)
