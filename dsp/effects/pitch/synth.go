package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-keyshift/dsp/core"
)

// Synthesis is the overlap-added signal produced by Synthesize.
type Synthesis struct {
	Samples []float64
	// Hop is the advance between frame starts in Samples.
	Hop int
	// Ratio is the pitch ratio the hop was scaled by.
	Ratio float64
	// Frames is the number of frames added.
	Frames int
}

// Synthesize overlap-adds the frames of fs into floor(ratio*fs.SourceLen)
// samples. The synthesis hop is chosen so that the last frame ends at the
// new length: floor((newLen - len(last)) / (frames - 1)).
//
// Contributions are accumulated without normalization. Parts of frames
// extending past the new length are dropped.
//
// dst is reused as output storage when it has enough capacity.
func Synthesize(fs FrameSet, ratio float64, dst []float64) (Synthesis, error) {
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		return Synthesis{}, fmt.Errorf("%w: pitch ratio must be > 0 and finite: %f", ErrDegenerateSynthesis, ratio)
	}

	frames := fs.Len()
	if frames <= 1 {
		return Synthesis{}, fmt.Errorf("%w: need at least 2 frames, got %d", ErrDegenerateSynthesis, frames)
	}

	newLen := int(math.Floor(ratio * float64(fs.SourceLen)))
	if newLen <= 0 {
		return Synthesis{}, fmt.Errorf("%w: ratio %f leaves %d samples", ErrDegenerateSynthesis, ratio, newLen)
	}

	span := newLen - len(fs.Last())
	if span < 0 {
		return Synthesis{}, fmt.Errorf("%w: last frame of %d samples exceeds synthesis length %d",
			ErrDegenerateSynthesis, len(fs.Last()), newLen)
	}

	hop := span / (frames - 1)

	out := core.EnsureLen(dst, newLen)
	core.Zero(out)

	offset := 0
	for _, f := range fs.Frames {
		if offset >= newLen {
			break
		}

		end := min(newLen, offset+len(f))
		vecmath.AddBlockInPlace(out[offset:end], f[:end-offset])
		offset += hop
	}

	return Synthesis{
		Samples: out,
		Hop:     hop,
		Ratio:   ratio,
		Frames:  frames,
	}, nil
}
