// Package oscillator samples single sin or cos tones over a time grid.
//
// Each SinusoidSpec is evaluated as
//
//	x(t) = A·sin(2πf·t + φ)   (Sin)
//	x(t) = A·cos(2πf·t + φ)   (Cos)
//
// for every instant of a common.TimeGrid. Zero frequency yields the constant
// A·sin(φ) or A·cos(φ).
package oscillator
