package pitch_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-keyshift/dsp/buffer"
	"github.com/cwbudde/algo-keyshift/dsp/effects/pitch"
)

func ExampleEngine_Shift() {
	const sampleRate = 44100

	tone := make([]float64, 5*sampleRate)
	for i := range tone {
		tone[i] = math.Sin(2 * math.Pi * 400 * float64(i) / sampleRate)
	}

	in, err := buffer.Mono(sampleRate, tone)
	if err != nil {
		panic(err)
	}

	e, err := pitch.NewEngine(pitch.WithFrameLength(12000), pitch.WithOverlap(0.75))
	if err != nil {
		panic(err)
	}

	if err := e.Load(in); err != nil {
		panic(err)
	}

	out, err := e.Shift(7)
	if err != nil {
		panic(err)
	}

	r := e.Result()
	fmt.Println(out.Len(), out.SampleRate())
	fmt.Printf("frames=%d hop=%d synth=%d/%d ratio=%.4f\n", r.Frames, r.Hop, r.SynthLen, r.SynthHop, r.Ratio)

	// Output:
	// 220500 44100
	// frames=71 hop=3000 synth=330376/4569 ratio=1.4983
}

func ExampleSplitFrames() {
	fs, err := pitch.SplitFrames([]float64{1, 2, 3, 4, 5, 6, 7}, 4, 2)
	if err != nil {
		panic(err)
	}

	for _, f := range fs.Frames {
		fmt.Println(f)
	}

	// Output:
	// [1 2 3 4]
	// [3 4 5 6]
	// [5 6 7]
}
