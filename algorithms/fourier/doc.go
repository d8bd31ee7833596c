// Package fourier converts between rectangular (ak, bk) and polar
// (amplitude, phase) forms of Fourier-series harmonics, and synthesizes a
// waveform from a three-harmonic truncated series.
//
// Conversion convention:
//
//	ak·cos(kω0t) + bk·sin(kω0t) = A·cos(kω0t + φ)
//	A = hypot(ak, bk),  φ = atan2(-bk, ak)
//
// No analysis of sampled data is performed; the coefficients are always
// supplied by the caller.
package fourier
