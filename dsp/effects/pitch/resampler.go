package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-keyshift/dsp/interp"
	"github.com/cwbudde/algo-keyshift/dsp/resample"
)

// Resample interpolates s.Samples to exactly n samples. Output sample j is
// read at position j*len(s.Samples)/n, so the query grid spans
// [0, len(s.Samples)) with the endpoint excluded. Positions past the last
// sample clamp to it.
func Resample(s Synthesis, n int, mode interp.Mode) ([]float64, error) {
	if len(s.Samples) == 0 {
		return nil, fmt.Errorf("%w: nothing to resample", ErrDegenerateSynthesis)
	}

	if n <= 0 {
		return nil, fmt.Errorf("%w: target length %d", ErrEmptyBuffer, n)
	}

	out, err := resample.Stretch(s.Samples, n, resample.WithMode(mode))
	if err != nil {
		return nil, fmt.Errorf("pitch: resample: %w", err)
	}

	return out, nil
}
