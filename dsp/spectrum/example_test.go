package spectrum_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-keyshift/dsp/spectrum"
)

func ExampleDominantFrequency() {
	const sampleRate = 44100.0

	tone := make([]float64, 44100)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 440 * float64(i) / sampleRate)
	}

	f, err := spectrum.DominantFrequency(tone, sampleRate)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("%.0f Hz\n", f)
	// Output:
	// 440 Hz
}
