package ticks_test

import (
	"fmt"

	"github.com/matzehuels/chartkit/pkg/chart/scale"
	"github.com/matzehuels/chartkit/pkg/chart/ticks"
)

func ExampleAxisTicks() {
	y := scale.NewLinear([2]float64{0, 97}, scale.Range{0, 500})

	for _, tick := range ticks.AxisTicks[float64](y, ticks.Options[float64]{Count: 5}) {
		fmt.Printf("%s@%.1f ", tick.Label, tick.Position)
	}
	fmt.Println()
	// Output: 0@0.0 10@51.5 20@103.1 30@154.6 40@206.2 50@257.7 60@309.3 70@360.8 80@412.4 90@463.9
}

func ExampleNiceStep() {
	fmt.Println(ticks.NiceStep(19.4), ticks.NiceStep(0.034), ticks.NiceStep(730))
	// Output: 10 0.02 500
}
