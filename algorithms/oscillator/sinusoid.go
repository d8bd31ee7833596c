package oscillator

import (
	"fmt"
	"math"
	"strings"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
)

// Kind selects the basis function of a sinusoid
type Kind int

const (
	Sin Kind = iota
	Cos
)

func (k Kind) String() string {
	switch k {
	case Sin:
		return "sin"
	case Cos:
		return "cos"
	default:
		return "unknown"
	}
}

// ParseKind accepts "sin" or "cos" in any case
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sin":
		return Sin, nil
	case "cos":
		return Cos, nil
	default:
		return Sin, fmt.Errorf("%w: unknown signal kind %q", common.ErrInvalidParameter, s)
	}
}

// MarshalText encodes the kind as "sin" or "cos"
func (k Kind) MarshalText() ([]byte, error) {
	if k != Sin && k != Cos {
		return nil, fmt.Errorf("%w: unknown signal kind %d", common.ErrInvalidParameter, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes "sin" or "cos"
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// SinusoidSpec describes one sinusoid A·sin(2πft + φ) or A·cos(2πft + φ).
// Phase is in radians. A negative amplitude is allowed and inverts the output.
type SinusoidSpec struct {
	Amplitude   float64 `json:"amplitude"`
	FrequencyHz float64 `json:"frequency_hz"`
	Phase       float64 `json:"phase"`
	Kind        Kind    `json:"kind"`
}

// AngularFrequency returns 2πf in rad/s
func (s SinusoidSpec) AngularFrequency() float64 {
	return 2 * math.Pi * s.FrequencyHz
}

// Validate rejects non-finite parameters and unknown kinds
func (s SinusoidSpec) Validate() error {
	if err := common.RequireFinite(
		common.Named("amplitude", s.Amplitude),
		common.Named("frequency", s.FrequencyHz),
		common.Named("phase", s.Phase),
	); err != nil {
		return err
	}
	if s.Kind != Sin && s.Kind != Cos {
		return fmt.Errorf("%w: unknown signal kind %d", common.ErrInvalidParameter, int(s.Kind))
	}
	return nil
}

// ValueAt evaluates the sinusoid at instant t without validation
func (s SinusoidSpec) ValueAt(t float64) float64 {
	arg := s.AngularFrequency()*t + s.Phase
	if s.Kind == Cos {
		return s.Amplitude * math.Cos(arg)
	}
	return s.Amplitude * math.Sin(arg)
}

// Sample evaluates spec at every instant of grid
func Sample(spec SinusoidSpec, grid *common.TimeGrid) ([]float64, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, grid.Len())
	for i := range out {
		out[i] = spec.ValueAt(grid.At(i))
	}

	return out, nil
}

// SampleAll samples each spec over the same grid, preserving order
func SampleAll(specs []SinusoidSpec, grid *common.TimeGrid) ([][]float64, error) {
	signals := make([][]float64, len(specs))
	for i, spec := range specs {
		sampled, err := Sample(spec, grid)
		if err != nil {
			return nil, fmt.Errorf("signal %d: %w", i+1, err)
		}
		signals[i] = sampled
	}
	return signals, nil
}
