package pitch

import "fmt"

// Frame is a contiguous slice of source samples.
type Frame []float64

// FrameSet is an ordered list of frames in playback order.
type FrameSet struct {
	Frames []Frame
	// FrameLen is the nominal frame length. Only the last frame may be shorter.
	FrameLen int
	// Hop is the advance between consecutive frame starts.
	Hop int
	// SourceLen is the number of samples the frames were cut from.
	SourceLen int
}

// Len returns the number of frames.
func (fs FrameSet) Len() int { return len(fs.Frames) }

// Last returns the terminal frame, or nil for an empty set.
func (fs FrameSet) Last() Frame {
	if len(fs.Frames) == 0 {
		return nil
	}

	return fs.Frames[len(fs.Frames)-1]
}

// Span returns the source index range [start, end) covered by frame i.
func (fs FrameSet) Span(i int) (start, end int) {
	start = i * fs.Hop
	return start, start + len(fs.Frames[i])
}

// SplitFrames cuts samples into frames of frameLen starting every hop
// samples. It stops after the first frame that reaches the end of samples,
// so the frames cover [0, len(samples)) and the last frame ends exactly at
// len(samples). Frames are copies; samples is not retained.
func SplitFrames(samples []float64, frameLen, hop int) (FrameSet, error) {
	if frameLen <= 0 || hop < 1 {
		return FrameSet{}, fmt.Errorf("%w: frame length %d, hop %d", ErrInvalidConfiguration, frameLen, hop)
	}

	n := len(samples)
	if n == 0 {
		return FrameSet{}, ErrEmptyBuffer
	}

	count := 1
	if frameLen < n {
		count += (n - frameLen + hop - 1) / hop
	}

	fs := FrameSet{
		Frames:    make([]Frame, 0, count),
		FrameLen:  frameLen,
		Hop:       hop,
		SourceLen: n,
	}

	for i := 0; ; i += hop {
		end := min(n, i+frameLen)
		f := make(Frame, end-i)
		copy(f, samples[i:end])
		fs.Frames = append(fs.Frames, f)

		if i+frameLen >= n {
			break
		}
	}

	return fs, nil
}
