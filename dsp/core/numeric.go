package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [min, max].
func Clamp(value, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}

	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
// The comparison is absolute for small magnitudes and relative otherwise.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))

	return diff/largest <= eps
}

// SemitoneRatio converts a pitch offset in 12-tone equal temperament
// semitones to a frequency ratio (2^(semitones/12)).
func SemitoneRatio(semitones float64) float64 {
	return math.Exp2(semitones / 12)
}

// RatioSemitones converts a frequency ratio to semitones.
// Returns NaN for non-positive ratios.
func RatioSemitones(ratio float64) float64 {
	if ratio <= 0 {
		return math.NaN()
	}

	return 12 * math.Log2(ratio)
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
