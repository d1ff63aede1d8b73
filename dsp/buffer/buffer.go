package buffer

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidSampleRate indicates a non-positive sample rate.
	ErrInvalidSampleRate = errors.New("buffer: sample rate must be > 0")
	// ErrNoChannels indicates a buffer without any channel.
	ErrNoChannels = errors.New("buffer: at least one channel is required")
	// ErrChannelLength indicates channels of differing length.
	ErrChannelLength = errors.New("buffer: channels must have equal length")
)

// Buffer is a planar multi-channel PCM buffer with a sample rate.
//
// Channel slices are owned by the Buffer once passed to New; callers that
// keep using them should pass copies.
type Buffer struct {
	channels   [][]float64
	sampleRate int
}

// New wraps the given channels without copying.
func New(sampleRate int, channels ...[]float64) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	n := len(channels[0])
	for i, ch := range channels[1:] {
		if len(ch) != n {
			return nil, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d",
				ErrChannelLength, i+1, len(ch), n)
		}
	}

	return &Buffer{channels: channels, sampleRate: sampleRate}, nil
}

// Mono returns a single-channel buffer wrapping samples.
func Mono(sampleRate int, samples []float64) (*Buffer, error) {
	return New(sampleRate, samples)
}

// FromInterleaved splits interleaved frames into a planar buffer.
// Trailing samples that do not form a complete frame are dropped.
func FromInterleaved(sampleRate, numChannels int, interleaved []float64) (*Buffer, error) {
	if numChannels <= 0 {
		return nil, ErrNoChannels
	}

	frames := len(interleaved) / numChannels
	channels := make([][]float64, numChannels)
	for c := range channels {
		channels[c] = make([]float64, frames)
	}

	for i := range frames {
		base := i * numChannels
		for c := range channels {
			channels[c][i] = interleaved[base+c]
		}
	}

	return New(sampleRate, channels...)
}

// SampleRate returns the sample rate in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// NumChannels returns the channel count.
func (b *Buffer) NumChannels() int { return len(b.channels) }

// Len returns the number of samples per channel.
func (b *Buffer) Len() int {
	if len(b.channels) == 0 {
		return 0
	}

	return len(b.channels[0])
}

// Channel returns the samples of channel i, or nil when i is out of range.
func (b *Buffer) Channel(i int) []float64 {
	if i < 0 || i >= len(b.channels) {
		return nil
	}

	return b.channels[i]
}

// Duration returns the playback length.
func (b *Buffer) Duration() time.Duration {
	if b.sampleRate <= 0 {
		return 0
	}

	return time.Duration(float64(b.Len()) / float64(b.sampleRate) * float64(time.Second))
}

// Interleaved returns the channels as interleaved frames.
func (b *Buffer) Interleaved() []float64 {
	n := b.Len()
	nch := len(b.channels)
	out := make([]float64, n*nch)

	for c, ch := range b.channels {
		for i, v := range ch {
			out[i*nch+c] = v
		}
	}

	return out
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	channels := make([][]float64, len(b.channels))
	for i, ch := range b.channels {
		channels[i] = append([]float64(nil), ch...)
	}

	return &Buffer{channels: channels, sampleRate: b.sampleRate}
}
