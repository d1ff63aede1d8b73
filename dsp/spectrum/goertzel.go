package spectrum

import (
	"fmt"
	"math"
)

// ToneLevel estimates the amplitude of a single frequency component in
// samples using the Goertzel recursion. For a block containing an integer
// number of cycles of A*sin(2*pi*f*t), the result is A.
//
// frequency must be between 0 and sampleRate/2.
func ToneLevel(samples []float64, frequency, sampleRate float64) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptyInput
	}

	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidSampleRate, sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) {
		return 0, fmt.Errorf("goertzel: frequency must be between 0 and sampleRate/2: %v", frequency)
	}

	coeff := 2 * math.Cos(2*math.Pi*frequency/sampleRate)

	var s0, s1 float64
	for _, x := range samples {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	power := s0*s0 + s1*s1 - coeff*s0*s1
	if power <= 0 {
		return 0, nil
	}

	return 2 * math.Sqrt(power) / float64(len(samples)), nil
}
