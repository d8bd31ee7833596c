// Package synth runs complete synthesis passes for an interactive signal
// tool: up to three sin/cos signals, their sum with a DC offset, the
// resultant single-tone estimate, and a three-harmonic Fourier series built
// from user coefficients.
//
// The package returns data only. Parsing user text and rendering plots are
// left to the caller.
//
// Usage:
//
//	s, err := synth.NewSynthesizer(nil) // 1000 samples over 0-1 s
//	res, err := s.Synthesize(synth.Request{
//		Signals: []oscillator.SinusoidSpec{
//			{Amplitude: 1, FrequencyHz: 5, Kind: oscillator.Sin},
//			{Amplitude: 0.5, FrequencyHz: 5, Phase: math.Pi / 2, Kind: oscillator.Cos},
//		},
//		DCOffset: 0.25,
//	})
package synth
