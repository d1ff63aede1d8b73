// Package time computes time-domain statistics over a block of samples.
package time

import "math"

// Stats holds time-domain signal statistics.
//
//nolint:revive
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	RMS_dB        float64
	Max           float64
	Min           float64
	Peak          float64 // max(|max|, |min|)
	Peak_dB       float64
	CrestFactor   float64 // peak / RMS (linear)
	Energy        float64 // sum of squares
	ZeroCrossings int
}

// ampTodB converts an amplitude value to decibels: 20 * log10(|value|).
// Returns -Inf for zero values.
func ampTodB(value float64) float64 {
	a := math.Abs(value)
	if a == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(a)
}

// Calculate computes all statistics in a single pass.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{
			RMS_dB:  math.Inf(-1),
			Peak_dB: math.Inf(-1),
		}
	}

	var (
		sum           float64
		sumSq         float64
		maxVal        = signal[0]
		minVal        = signal[0]
		zeroCrossings int
	)

	for i, x := range signal {
		sum += x
		sumSq += x * x

		if x > maxVal {
			maxVal = x
		}

		if x < minVal {
			minVal = x
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	rms := math.Sqrt(sumSq / nf)
	peak := math.Max(math.Abs(maxVal), math.Abs(minVal))

	var crest float64
	if rms > 0 {
		crest = peak / rms
	}

	return Stats{
		Length:        n,
		DC:            sum / nf,
		RMS:           rms,
		RMS_dB:        ampTodB(rms),
		Max:           maxVal,
		Min:           minVal,
		Peak:          peak,
		Peak_dB:       ampTodB(peak),
		CrestFactor:   crest,
		Energy:        sumSq,
		ZeroCrossings: zeroCrossings,
	}
}

// RMS returns the root mean square of signal, or 0 when it is empty.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// Peak returns the largest absolute sample value.
func Peak(signal []float64) float64 {
	var peak float64
	for _, x := range signal {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}

	return peak
}

// NormalizedRMS returns RMS/Peak, the level of a signal after peak
// normalization to unity. Silent or empty input yields 0.
func NormalizedRMS(signal []float64) float64 {
	peak := Peak(signal)
	if peak == 0 {
		return 0
	}

	return RMS(signal) / peak
}
