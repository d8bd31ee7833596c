package resultant

import (
	"math"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"github.com/RyanBlaney/sonido-synth/algorithms/composite"
	"github.com/RyanBlaney/sonido-synth/algorithms/oscillator"
)

// ResultantTone is the single sinusoid reported as equivalent to a sum of
// sinusoids. It is derived on demand and never stored.
type ResultantTone struct {
	Amplitude   float64 `json:"amplitude"`
	FrequencyHz float64 `json:"frequency_hz"`
	PhaseDeg    float64 `json:"phase_deg"` // (-180, 180]
}

// Estimator derives a ResultantTone for a set of sinusoids sampled on a
// fixed grid
type Estimator struct {
	grid *common.TimeGrid
}

// NewEstimator creates an estimator sampling on grid. A nil grid selects
// common.UnitGrid.
func NewEstimator(grid *common.TimeGrid) *Estimator {
	if grid == nil {
		grid = common.UnitGrid()
	}
	return &Estimator{
		grid: grid,
	}
}

// Estimate computes the resultant tone of specs.
//
// Amplitude is half the peak-to-peak range of the composite sampled on the
// estimator's grid. It only matches the true amplitude when the composite is
// periodic and the grid spans at least one period.
//
// Phase is atan2(S, C) of the phasor sum, in degrees. Kind is ignored: every
// term contributes A·sin(φ) to S and A·cos(φ) to C.
//
// Frequency is that of specs[0]; no combined frequency is computed.
//
// An empty specs yields the zero tone and no error.
func (e *Estimator) Estimate(specs []oscillator.SinusoidSpec) (ResultantTone, error) {
	if len(specs) == 0 {
		return ResultantTone{}, nil
	}

	signals, err := oscillator.SampleAll(specs, e.grid)
	if err != nil {
		return ResultantTone{}, err
	}
	sum, err := composite.Compose(signals, 0)
	if err != nil {
		return ResultantTone{}, err
	}

	s, c := PhasorSum(specs)

	return ResultantTone{
		Amplitude:   common.PeakToPeak(sum) / 2,
		FrequencyHz: specs[0].FrequencyHz,
		PhaseDeg:    common.WrapDegrees(common.RadiansToDegrees(math.Atan2(s, c))),
	}, nil
}

// PhasorSum returns S = Σ Aᵢ·sin(φᵢ) and C = Σ Aᵢ·cos(φᵢ)
func PhasorSum(specs []oscillator.SinusoidSpec) (s, c float64) {
	for _, spec := range specs {
		s += spec.Amplitude * math.Sin(spec.Phase)
		c += spec.Amplitude * math.Cos(spec.Phase)
	}
	return s, c
}

// PhasorMagnitude returns hypot(S, C), the exact amplitude of the sum when
// every spec shares one frequency and kind
func PhasorMagnitude(specs []oscillator.SinusoidSpec) float64 {
	return math.Hypot(PhasorSum(specs))
}
