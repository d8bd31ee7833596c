// Package composite superposes sampled signals into a single sequence.
package composite

import (
	"fmt"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"gonum.org/v1/gonum/floats"
)

// Compose returns dcOffset + Σ signals[j][i] for every sample i.
// All signals must have been sampled on the same grid. The inputs are not
// modified.
func Compose(signals [][]float64, dcOffset float64) ([]float64, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("%w: compose needs at least one signal", common.ErrEmptyInput)
	}
	if err := common.RequireFinite(common.Named("dc offset", dcOffset)); err != nil {
		return nil, err
	}

	n := len(signals[0])
	for j, s := range signals[1:] {
		if len(s) != n {
			return nil, fmt.Errorf("%w: signal %d has %d samples, signal 1 has %d",
				common.ErrShapeMismatch, j+2, len(s), n)
		}
	}

	result := make([]float64, n)
	copy(result, signals[0])
	for _, s := range signals[1:] {
		floats.Add(result, s)
	}
	if dcOffset != 0 {
		floats.AddConst(dcOffset, result)
	}

	return result, nil
}
