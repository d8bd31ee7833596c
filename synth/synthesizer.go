package synth

import (
	"fmt"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"github.com/RyanBlaney/sonido-synth/algorithms/composite"
	"github.com/RyanBlaney/sonido-synth/algorithms/fourier"
	"github.com/RyanBlaney/sonido-synth/algorithms/oscillator"
	"github.com/RyanBlaney/sonido-synth/algorithms/resultant"
	"github.com/RyanBlaney/sonido-synth/logging"
	"github.com/RyanBlaney/sonido-synth/synth/config"
	"gonum.org/v1/gonum/floats"
)

// Request carries the already-parsed parameters of one synthesis pass
type Request struct {
	Signals      []oscillator.SinusoidSpec `json:"signals"`
	DCOffset     float64                   `json:"dc_offset"`
	Coefficients *fourier.Coefficients     `json:"coefficients,omitempty"`
}

// Result holds every array and summary a renderer needs. All slices have
// the session grid's length.
type Result struct {
	Time      []float64               `json:"time"`
	Signals   [][]float64             `json:"signals"`
	Composite []float64               `json:"composite"`
	Resultant resultant.ResultantTone `json:"resultant"`

	// Set only when the request carries coefficients
	FourierWaveform  []float64                `json:"fourier_waveform,omitempty"`
	Harmonics        []fourier.Harmonic       `json:"harmonics,omitempty"`
	FourierResultant *resultant.ResultantTone `json:"fourier_resultant,omitempty"`
}

// Synthesizer runs synthesis passes over one fixed time grid
type Synthesizer struct {
	config    *config.SynthConfig
	grid      *common.TimeGrid
	estimator *resultant.Estimator
	logger    logging.Logger
}

// NewSynthesizer creates a synthesizer. A nil cfg selects config.DefaultConfig.
func NewSynthesizer(cfg *config.SynthConfig) (*Synthesizer, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synth config: %w", err)
	}

	grid, err := cfg.Grid.Build()
	if err != nil {
		return nil, err
	}

	logger := logging.WithFields(logging.Fields{
		"component": "synthesizer",
	})

	logger.Debug("Synthesizer created", logging.Fields{
		"grid_start":   grid.Start(),
		"grid_end":     grid.End(),
		"grid_samples": grid.Len(),
		"max_signals":  cfg.MaxSignals,
	})

	return &Synthesizer{
		config:    cfg,
		grid:      grid,
		estimator: resultant.NewEstimator(grid),
		logger:    logger,
	}, nil
}

// Grid returns the session grid
func (s *Synthesizer) Grid() *common.TimeGrid {
	return s.grid
}

// Synthesize samples every signal, sums them with the DC offset, estimates
// the resultant tone and, when coefficients are given, synthesizes the
// Fourier-series waveform. Every result is recomputed from scratch.
//
// A request with no signals is valid: the composite is the constant DC
// offset and the resultant is the zero tone.
func (s *Synthesizer) Synthesize(req Request) (*Result, error) {
	logger := s.logger.WithFields(logging.Fields{
		"signals":          len(req.Signals),
		"has_coefficients": req.Coefficients != nil,
	})

	result, err := s.synthesize(req)
	if err != nil {
		logger.Error(err, "Synthesis failed")
		return nil, err
	}

	logger.Debug("Synthesis completed", logging.Fields{
		"resultant_amplitude": result.Resultant.Amplitude,
		"resultant_frequency": result.Resultant.FrequencyHz,
		"resultant_phase_deg": result.Resultant.PhaseDeg,
	})

	return result, nil
}

func (s *Synthesizer) synthesize(req Request) (*Result, error) {
	if len(req.Signals) > s.config.MaxSignals {
		return nil, fmt.Errorf("%w: at most %d signals allowed, got %d",
			common.ErrShapeMismatch, s.config.MaxSignals, len(req.Signals))
	}
	if err := common.RequireFinite(common.Named("dc offset", req.DCOffset)); err != nil {
		return nil, err
	}

	signals, err := oscillator.SampleAll(req.Signals, s.grid)
	if err != nil {
		return nil, err
	}

	var sum []float64
	if len(signals) == 0 {
		sum = make([]float64, s.grid.Len())
		floats.AddConst(req.DCOffset, sum)
	} else {
		sum, err = composite.Compose(signals, req.DCOffset)
		if err != nil {
			return nil, err
		}
	}

	tone, err := s.estimator.Estimate(req.Signals)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Time:      s.grid.Instants(),
		Signals:   signals,
		Composite: sum,
		Resultant: tone,
	}

	if req.Coefficients != nil {
		if err := s.synthesizeSeries(*req.Coefficients, result); err != nil {
			return nil, fmt.Errorf("fourier series: %w", err)
		}
	}

	return result, nil
}

// synthesizeSeries fills the coefficient-derived fields of result
func (s *Synthesizer) synthesizeSeries(coeffs fourier.Coefficients, result *Result) error {
	waveform, err := fourier.Synthesize(coeffs, s.grid)
	if err != nil {
		return err
	}

	harmonics, err := coeffs.Harmonics()
	if err != nil {
		return err
	}

	specs, err := coeffs.ToSinusoids()
	if err != nil {
		return err
	}

	tone, err := s.estimator.Estimate(specs)
	if err != nil {
		return err
	}

	result.FourierWaveform = waveform
	result.Harmonics = harmonics
	result.FourierResultant = &tone
	return nil
}
