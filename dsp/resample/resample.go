package resample

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-keyshift/dsp/interp"
)

var (
	// ErrEmptyInput indicates an input without samples.
	ErrEmptyInput = errors.New("resample: empty input")
	// ErrInvalidLength indicates a non-positive target length.
	ErrInvalidLength = errors.New("resample: invalid target length")
)

type config struct {
	mode interp.Mode
}

// Option configures the resampler.
type Option func(*config)

// WithMode selects the interpolation kernel. The default is interp.ModeLinear.
func WithMode(m interp.Mode) Option {
	return func(cfg *config) {
		if m == interp.ModeLinear || m == interp.ModeHermite {
			cfg.mode = m
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{mode: interp.ModeLinear}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Stretch returns input resampled to exactly outLen samples.
func Stretch(input []float64, outLen int, opts ...Option) ([]float64, error) {
	if outLen <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, outLen)
	}

	return StretchInto(make([]float64, outLen), input, opts...)
}

// StretchInto resamples input to len(dst) samples, writing into dst.
// It returns dst for convenience.
func StretchInto(dst, input []float64, opts ...Option) ([]float64, error) {
	if len(input) == 0 {
		return nil, ErrEmptyInput
	}

	if len(dst) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, len(dst))
	}

	cfg := applyOptions(opts)
	step := float64(len(input)) / float64(len(dst))

	for j := range dst {
		dst[j] = interp.At(input, float64(j)*step, cfg.mode)
	}

	return dst, nil
}

// PositionStep returns the input advance per output sample for a stretch
// from inLen to outLen samples.
func PositionStep(inLen, outLen int) (float64, error) {
	if inLen <= 0 {
		return 0, ErrEmptyInput
	}

	if outLen <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidLength, outLen)
	}

	return float64(inLen) / float64(outLen), nil
}
