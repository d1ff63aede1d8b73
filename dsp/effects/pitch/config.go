package pitch

import (
	"fmt"
	"math"
)

const (
	// DefaultFrameLength is the nominal frame length in samples.
	DefaultFrameLength = 12000
	// DefaultOverlap is the fraction of a frame shared with the next frame.
	DefaultOverlap = 0.75
)

// Config holds the framing parameters of an Engine.
type Config struct {
	FrameLen int
	Overlap  float64
}

// DefaultConfig returns the default framing parameters.
func DefaultConfig() Config {
	return Config{
		FrameLen: DefaultFrameLength,
		Overlap:  DefaultOverlap,
	}
}

// HopSize returns round((1-Overlap)*FrameLen), the advance between frames.
func (c Config) HopSize() int {
	return int(math.Round((1 - c.Overlap) * float64(c.FrameLen)))
}

// Validate reports whether the configuration yields a usable framer.
func (c Config) Validate() error {
	if c.FrameLen <= 0 {
		return fmt.Errorf("%w: frame length must be > 0: %d", ErrInvalidConfiguration, c.FrameLen)
	}

	if c.Overlap < 0 || c.Overlap >= 1 || math.IsNaN(c.Overlap) {
		return fmt.Errorf("%w: overlap must be in [0, 1): %f", ErrInvalidConfiguration, c.Overlap)
	}

	if hop := c.HopSize(); hop < 1 {
		return fmt.Errorf("%w: hop size must be >= 1: frame length %d, overlap %f gives %d",
			ErrInvalidConfiguration, c.FrameLen, c.Overlap, hop)
	}

	return nil
}
