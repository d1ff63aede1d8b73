package core_test

import (
	"fmt"

	"github.com/cwbudde/algo-keyshift/dsp/core"
)

func ExampleSemitoneRatio() {
	fmt.Printf("%.4f %.4f\n", core.SemitoneRatio(7), core.SemitoneRatio(-12))

	// Output:
	// 1.4983 0.5000
}

func ExampleEnsureLen() {
	buf := make([]float64, 2, 4)
	buf[0], buf[1] = 1, 2
	buf = core.EnsureLen(buf, 4)
	core.Zero(buf[:2])
	fmt.Println(buf)

	// Output:
	// [0 0 0 0]
}
