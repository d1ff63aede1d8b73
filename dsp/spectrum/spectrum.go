package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-keyshift/dsp/window"
)

// MaxFFTSize caps the analysis length. Longer inputs are analysed over their
// centered MaxFFTSize samples.
const MaxFFTSize = 1 << 22

const minFFTSize = 16

var (
	// ErrEmptyInput indicates an input without samples.
	ErrEmptyInput = errors.New("spectrum: empty input")
	// ErrInvalidSampleRate indicates a non-positive or non-finite sample rate.
	ErrInvalidSampleRate = errors.New("spectrum: invalid sample rate")
	// ErrSilent indicates that no bin above DC carries energy.
	ErrSilent = errors.New("spectrum: no spectral peak in silent input")
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// MagnitudeSpectrum returns the one-sided magnitude spectrum (fftSize/2+1
// bins) of the Hann-windowed input and the FFT size used.
func MagnitudeSpectrum(samples []float64) ([]float64, int, error) {
	if len(samples) == 0 {
		return nil, 0, ErrEmptyInput
	}

	if len(samples) > MaxFFTSize {
		start := (len(samples) - MaxFFTSize) / 2
		samples = samples[start : start+MaxFFTSize]
	}

	fftSize := max(minFFTSize, nextPowerOf2(len(samples)))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	windowed, err := window.ApplyCoefficients(samples, window.Generate(window.TypeHann, len(samples)))
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	return Magnitude(out[:fftSize/2+1]), fftSize, nil
}

// BinFrequency returns the center frequency in Hz of bin k.
func BinFrequency(k, fftSize int, sampleRate float64) float64 {
	if fftSize <= 0 {
		return 0
	}

	return float64(k) * sampleRate / float64(fftSize)
}

// DominantFrequency estimates the frequency in Hz of the strongest spectral
// component, excluding DC. The peak bin is refined by parabolic
// interpolation over log magnitudes.
func DominantFrequency(samples []float64, sampleRate float64) (float64, error) {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	mag, fftSize, err := MagnitudeSpectrum(samples)
	if err != nil {
		return 0, err
	}

	peak := 0
	for k := 1; k < len(mag); k++ {
		if mag[k] > mag[peak] || peak == 0 {
			peak = k
		}
	}

	if peak == 0 || mag[peak] <= 0 {
		return 0, ErrSilent
	}

	return BinFrequency(peak, fftSize, sampleRate) +
		parabolicOffset(mag, peak)*sampleRate/float64(fftSize), nil
}

// parabolicOffset returns the fractional bin offset in [-0.5, 0.5] of the
// vertex of the parabola through the peak and its neighbours.
func parabolicOffset(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return 0
	}

	a, b, c := mag[k-1], mag[k], mag[k+1]
	if a <= 0 || b <= 0 || c <= 0 {
		return 0
	}

	a, b, c = math.Log(a), math.Log(b), math.Log(c)

	den := a - 2*b + c
	if den == 0 {
		return 0
	}

	p := 0.5 * (a - c) / den
	return math.Max(-0.5, math.Min(0.5, p))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
