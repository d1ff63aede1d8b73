package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-keyshift/dsp/window"
)

// WindowFrames returns a new FrameSet whose frames are multiplied by a
// window of matching length. A frame of length 1 is left unchanged.
// fs is not modified.
func WindowFrames(fs FrameSet, t window.Type) (FrameSet, error) {
	out := FrameSet{
		Frames:    make([]Frame, len(fs.Frames)),
		FrameLen:  fs.FrameLen,
		Hop:       fs.Hop,
		SourceLen: fs.SourceLen,
	}

	// Every frame but the last has the nominal length.
	coeffs := make(map[int][]float64, 2)

	for i, f := range fs.Frames {
		w, ok := coeffs[len(f)]
		if !ok {
			w = window.Generate(t, len(f))
			coeffs[len(f)] = w
		}

		tapered, err := window.ApplyCoefficients(f, w)
		if err != nil {
			return FrameSet{}, fmt.Errorf("pitch: window frame %d: %w", i, err)
		}

		out.Frames[i] = tapered
	}

	return out, nil
}
