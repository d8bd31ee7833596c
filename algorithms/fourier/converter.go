package fourier

import (
	"math"
)

// ToPolar re-expresses ak·cos(θ) + bk·sin(θ) as A·cos(θ + φ).
//
//	A = hypot(ak, bk) ≥ 0
//	φ = atan2(-bk, ak)
//
// The negated bk keeps the result consistent with the cos-plus-phase form
// used by oscillator.SinusoidSpec.
func ToPolar(ak, bk float64) (amplitude, phase float64) {
	return math.Hypot(ak, bk), math.Atan2(-bk, ak)
}

// FromPolar is the inverse of ToPolar: ak = A·cos(φ), bk = -A·sin(φ)
func FromPolar(amplitude, phase float64) (ak, bk float64) {
	return amplitude * math.Cos(phase), -amplitude * math.Sin(phase)
}
