package node_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/tidaw/dsp/node"
)

func ExampleOscillator_Render() {
	osc := node.NewOscillator(1000, 250)
	x := osc.Render(0.005)

	for _, v := range x {
		// +0 folds negative zero so tiny residues print as 0.
		fmt.Printf("%.0f ", math.Round(float64(v))+0)
	}
	fmt.Println()

	// Output:
	// 0 1 0 -1 0
}

func ExampleRegistry_Build() {
	reg := node.DefaultRegistry()

	gain, err := reg.Build(node.Context{SampleRate: 48000, BlockSize: 4}, node.Params{
		Type: node.TypeGain,
		Num:  map[string]float64{"volume": 50},
	})
	if err != nil {
		panic(err)
	}

	out := make([]float32, 4)
	gain.Process(out, []float32{1, -1, 0.5, 0})
	fmt.Println(out)

	// Output:
	// [0.5 -0.5 0.25 0]
}
