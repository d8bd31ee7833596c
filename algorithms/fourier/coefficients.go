package fourier

import (
	"fmt"
	"math"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"github.com/RyanBlaney/sonido-synth/algorithms/oscillator"
)

// HarmonicCount is the fixed truncation order of the series
const HarmonicCount = 3

// Coefficients holds a truncated real Fourier series
//
//	x(t) = a0 + Σ_{k=1}^{3} ak[k-1]·cos(k·ω0·t) + bk[k-1]·sin(k·ω0·t)
type Coefficients struct {
	A0     float64   `json:"a0"`
	Ak     []float64 `json:"ak"`
	Bk     []float64 `json:"bk"`
	Omega0 float64   `json:"omega0"` // fundamental, rad/s
}

// Harmonic is one term of the series in both rectangular and polar form
type Harmonic struct {
	K           int     `json:"k"`
	Ak          float64 `json:"ak"`
	Bk          float64 `json:"bk"`
	Amplitude   float64 `json:"amplitude"`
	Phase       float64 `json:"phase"` // radians
	FrequencyHz float64 `json:"frequency_hz"`
}

// Validate checks that ak and bk both hold exactly HarmonicCount values and
// that every value is finite
func (c Coefficients) Validate() error {
	if len(c.Ak) != HarmonicCount || len(c.Bk) != HarmonicCount {
		return fmt.Errorf("%w: need exactly %d ak and bk coefficients, got %d and %d",
			common.ErrShapeMismatch, HarmonicCount, len(c.Ak), len(c.Bk))
	}
	if err := common.RequireFinite(common.Named("a0", c.A0), common.Named("omega0", c.Omega0)); err != nil {
		return err
	}
	if err := common.RequireFiniteSlice("ak", c.Ak); err != nil {
		return err
	}
	return common.RequireFiniteSlice("bk", c.Bk)
}

// Harmonics converts every (ak, bk) pair to polar form
func (c Coefficients) Harmonics() ([]Harmonic, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := make([]Harmonic, HarmonicCount)
	for i := range out {
		k := i + 1
		amplitude, phase := ToPolar(c.Ak[i], c.Bk[i])
		out[i] = Harmonic{
			K:           k,
			Ak:          c.Ak[i],
			Bk:          c.Bk[i],
			Amplitude:   amplitude,
			Phase:       phase,
			FrequencyHz: float64(k) * c.Omega0 / (2 * math.Pi),
		}
	}
	return out, nil
}

// ToSinusoids returns one Cos spec per harmonic. Sampling them, summing and
// adding A0 reproduces Synthesize up to floating-point error.
func (c Coefficients) ToSinusoids() ([]oscillator.SinusoidSpec, error) {
	harmonics, err := c.Harmonics()
	if err != nil {
		return nil, err
	}

	specs := make([]oscillator.SinusoidSpec, len(harmonics))
	for i, h := range harmonics {
		specs[i] = oscillator.SinusoidSpec{
			Amplitude:   h.Amplitude,
			FrequencyHz: h.FrequencyHz,
			Phase:       h.Phase,
			Kind:        oscillator.Cos,
		}
	}
	return specs, nil
}

// Synthesize evaluates the truncated series at every instant of grid
func Synthesize(c Coefficients, grid *common.TimeGrid) ([]float64, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	out := make([]float64, grid.Len())
	for i := range out {
		t := grid.At(i)
		v := c.A0
		for k := 1; k <= HarmonicCount; k++ {
			arg := float64(k) * c.Omega0 * t
			v += c.Ak[k-1]*math.Cos(arg) + c.Bk[k-1]*math.Sin(arg)
		}
		out[i] = v
	}

	return out, nil
}
