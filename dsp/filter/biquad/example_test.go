package biquad_test

import (
	"fmt"

	"github.com/cwbudde/algo-wavfilter/dsp/filter/biquad"
)

func ExampleSection_ProcessSample() {
	s := biquad.NewSection(biquad.Coefficients{
		B0: 0.25, B1: 0.5, B2: 0.25,
		A1: -0.2, A2: 0.04,
	})

	// Process an impulse.
	for i := range 4 {
		var x float64
		if i == 0 {
			x = 1
		}

		y := s.ProcessSample(x)
		fmt.Printf("y[%d] = %.6f\n", i, y)
	}
	// Output:
	// y[0] = 0.250000
	// y[1] = 0.550000
	// y[2] = 0.350000
	// y[3] = 0.048000
}

func ExampleSection_Step() {
	s := biquad.NewSection(biquad.Coefficients{B0: 2})

	fmt.Println(s.Step(1000))
	fmt.Println(s.Step(20000))
	fmt.Println(s.Step(-20000))
	// Output:
	// 2000
	// 32767
	// 25536
}

func ExampleChain_Step() {
	chain := biquad.NewChain([]biquad.Coefficients{
		{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04},
		{B0: 0.1, B1: 0.2, B2: 0.1, A1: -0.5, A2: 0.1},
	})

	fmt.Printf("Order: %d, Sections: %d\n", chain.Order(), chain.NumSections())

	for i := range 4 {
		fmt.Printf("y[%d] = %d\n", i, chain.Step(10000))
	}
	// Output:
	// Order: 4, Sections: 2
	// y[0] = 250
	// y[1] = 1425
	// y[2] = 3687
	// y[3] = 5999
}
