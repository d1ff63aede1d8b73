package interp

import (
	"fmt"
	"math"
	"strings"
)

// Mode selects the interpolation kernel used by [At].
type Mode int

const (
	// ModeLinear blends the two neighbouring samples.
	ModeLinear Mode = iota
	// ModeHermite uses 4-point cubic Hermite interpolation.
	ModeHermite
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLinear:
		return "linear"
	case ModeHermite:
		return "hermite"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode resolves "linear" or "hermite" (case-insensitive).
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "linear":
		return ModeLinear, nil
	case "hermite":
		return ModeHermite, nil
	default:
		return 0, fmt.Errorf("interp: unknown mode %q", name)
	}
}

// Linear2 interpolates from x0 (t=0) to x1 (t=1).
func Linear2(t, x0, x1 float64) float64 {
	return x0 + t*(x1-x0)
}

// Hermite4 computes cubic 4-point interpolation.
// It interpolates from x0 to x1 using neighbor points xm1 and x2.
func Hermite4(t, xm1, x0, x1, x2 float64) float64 {
	c0 := x0
	c1 := 0.5 * (x1 - xm1)
	c2 := xm1 - 2.5*x0 + 2*x1 - 0.5*x2
	c3 := 0.5*(x2-xm1) + 1.5*(x0-x1)

	return ((c3*t+c2)*t+c1)*t + c0
}

// At evaluates samples at fractional position pos, where integer positions
// map to sample indices. Positions before 0 or past len(samples)-1 clamp to
// the boundary sample. Returns 0 for an empty slice.
func At(samples []float64, pos float64, mode Mode) float64 {
	n := len(samples)
	if n == 0 {
		return 0
	}

	if pos <= 0 {
		return samples[0]
	}

	if pos >= float64(n-1) {
		return samples[n-1]
	}

	idx := int(math.Floor(pos))
	frac := pos - float64(idx)

	if mode == ModeHermite {
		return Hermite4(frac,
			clampAt(samples, idx-1),
			samples[idx],
			samples[idx+1],
			clampAt(samples, idx+2))
	}

	return Linear2(frac, samples[idx], samples[idx+1])
}

func clampAt(x []float64, idx int) float64 {
	if idx < 0 {
		return x[0]
	}

	if idx >= len(x) {
		return x[len(x)-1]
	}

	return x[idx]
}
