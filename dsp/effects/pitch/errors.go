package pitch

import "errors"

var (
	// ErrInvalidConfiguration indicates a non-positive frame length, an
	// overlap outside [0, 1) or a hop size below one sample.
	ErrInvalidConfiguration = errors.New("pitch: invalid configuration")
	// ErrNotLoaded indicates Shift was called before Load.
	ErrNotLoaded = errors.New("pitch: no buffer loaded")
	// ErrDegenerateSynthesis indicates input too short to form more than one
	// frame, or a pitch ratio that leaves no room for synthesis.
	ErrDegenerateSynthesis = errors.New("pitch: degenerate synthesis")
	// ErrEmptyBuffer indicates a buffer without samples.
	ErrEmptyBuffer = errors.New("pitch: empty buffer")
)
