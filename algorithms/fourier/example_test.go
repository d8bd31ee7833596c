package fourier_test

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"github.com/RyanBlaney/sonido-synth/algorithms/fourier"
)

func ExampleToPolar() {
	amplitude, phase := fourier.ToPolar(-3, -4)
	fmt.Printf("A=%.1f phase=%.4f\n", amplitude, phase)
	// Output:
	// A=5.0 phase=2.2143
}

func ExampleSynthesize() {
	grid, _ := common.NewTimeGrid(0, 1, 5)
	c := fourier.Coefficients{
		A0:     1,
		Ak:     []float64{1, 0, 0},
		Bk:     []float64{0, 0, 0},
		Omega0: 2 * math.Pi,
	}

	waveform, err := fourier.Synthesize(c, grid)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range waveform {
		fmt.Printf("%.2f ", math.Abs(v))
	}
	fmt.Println()
	// Output:
	// 2.00 1.00 0.00 1.00 2.00
}
