package synth_test

import (
	"math"
	"testing"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
	"github.com/RyanBlaney/sonido-synth/algorithms/fourier"
	"github.com/RyanBlaney/sonido-synth/algorithms/oscillator"
	"github.com/RyanBlaney/sonido-synth/logging"
	"github.com/RyanBlaney/sonido-synth/synth"
	"github.com/RyanBlaney/sonido-synth/synth/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// observeLogs routes the global logger into an in-memory zap core for the
// duration of the test
func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	zl := logging.NewZapLogger(zap.New(core))
	zl.SetLevel(logging.DebugLevel)

	prev := logging.GetGlobalLogger()
	logging.SetGlobalLogger(zl)
	t.Cleanup(func() { logging.SetGlobalLogger(prev) })
	return logs
}

func threeSignals() []oscillator.SinusoidSpec {
	return []oscillator.SinusoidSpec{
		{Amplitude: 1, FrequencyHz: 2, Phase: 0, Kind: oscillator.Sin},
		{Amplitude: 0.5, FrequencyHz: 2, Phase: math.Pi / 2, Kind: oscillator.Sin},
		{Amplitude: 0.25, FrequencyHz: 6, Phase: 1, Kind: oscillator.Cos},
	}
}

func TestNewSynthesizer_Defaults(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	assert.Equal(t, 1000, s.Grid().Len())
	assert.Equal(t, 0.0, s.Grid().Start())
	assert.Equal(t, 1.0, s.Grid().End())
}

func TestNewSynthesizer_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Grid = config.GridConfig{Preset: config.GridCustom, Start: 3, End: -3}

	_, err := synth.NewSynthesizer(cfg)
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestSynthesize_FullPass(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	req := synth.Request{
		Signals:  threeSignals(),
		DCOffset: 0.75,
		Coefficients: &fourier.Coefficients{
			A0:     1,
			Ak:     []float64{1, 0, 0},
			Bk:     []float64{0, 0, 0},
			Omega0: 2 * math.Pi,
		},
	}

	res, err := s.Synthesize(req)
	require.NoError(t, err)

	n := s.Grid().Len()
	assert.Len(t, res.Time, n)
	require.Len(t, res.Signals, 3)
	for _, sig := range res.Signals {
		assert.Len(t, sig, n)
	}
	require.Len(t, res.Composite, n)
	for i := range res.Composite {
		want := req.DCOffset + res.Signals[0][i] + res.Signals[1][i] + res.Signals[2][i]
		assert.InDelta(t, want, res.Composite[i], 1e-12)
	}

	assert.Equal(t, 2.0, res.Resultant.FrequencyHz)
	sinSum := 0.5 + 0.25*math.Sin(1)
	cosSum := 1 + 0.25*math.Cos(1)
	assert.InDelta(t, math.Atan2(sinSum, cosSum)*180/math.Pi, res.Resultant.PhaseDeg, 1e-9)

	require.Len(t, res.FourierWaveform, n)
	assert.InDelta(t, 2.0, res.FourierWaveform[0], 1e-12)
	require.Len(t, res.Harmonics, fourier.HarmonicCount)
	assert.InDelta(t, 1.0, res.Harmonics[0].Amplitude, 1e-12)

	require.NotNil(t, res.FourierResultant)
	assert.InDelta(t, 1.0, res.FourierResultant.FrequencyHz, 1e-12)
	assert.InDelta(t, 1.0, res.FourierResultant.Amplitude, 0.01)
	assert.InDelta(t, 0.0, res.FourierResultant.PhaseDeg, 1e-9)
}

func TestSynthesize_NoSignals(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	res, err := s.Synthesize(synth.Request{DCOffset: 1.5})
	require.NoError(t, err)

	assert.Empty(t, res.Signals)
	require.Len(t, res.Composite, s.Grid().Len())
	for _, v := range res.Composite {
		assert.Equal(t, 1.5, v)
	}
	assert.Zero(t, res.Resultant)
	assert.Nil(t, res.FourierWaveform)
	assert.Nil(t, res.FourierResultant)
}

func TestSynthesize_TooManySignals(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	signals := append(threeSignals(), oscillator.SinusoidSpec{Amplitude: 1, FrequencyHz: 1})
	_, err = s.Synthesize(synth.Request{Signals: signals})
	assert.ErrorIs(t, err, common.ErrShapeMismatch)
}

func TestSynthesize_RaisedSignalLimit(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxSignals = 4
	s, err := synth.NewSynthesizer(cfg)
	require.NoError(t, err)

	signals := append(threeSignals(), oscillator.SinusoidSpec{Amplitude: 1, FrequencyHz: 1})
	res, err := s.Synthesize(synth.Request{Signals: signals})
	require.NoError(t, err)
	assert.Len(t, res.Signals, 4)
}

func TestSynthesize_ErrorsAreLogged(t *testing.T) {
	logs := observeLogs(t)

	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	_, err = s.Synthesize(synth.Request{
		Signals: []oscillator.SinusoidSpec{{Amplitude: math.NaN(), FrequencyHz: 1}},
	})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)

	failures := logs.FilterMessage("Synthesis failed").All()
	require.Len(t, failures, 1)
	assert.Equal(t, zapcore.ErrorLevel, failures[0].Level)
	assert.Equal(t, "synthesizer", failures[0].ContextMap()["component"])
}

func TestSynthesize_BadCoefficients(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	_, err = s.Synthesize(synth.Request{
		Signals:      threeSignals(),
		Coefficients: &fourier.Coefficients{Ak: []float64{1, 2}, Bk: []float64{1, 2}},
	})
	assert.ErrorIs(t, err, common.ErrShapeMismatch)
}

func TestSynthesize_InvalidOffset(t *testing.T) {
	s, err := synth.NewSynthesizer(nil)
	require.NoError(t, err)

	_, err = s.Synthesize(synth.Request{DCOffset: math.Inf(-1)})
	assert.ErrorIs(t, err, common.ErrInvalidParameter)
}

func TestSynthesize_SymmetricGrid(t *testing.T) {
	s, err := synth.NewSynthesizer(&config.SynthConfig{
		Grid:       config.GridConfig{Preset: config.GridSymmetric},
		MaxSignals: 3,
	})
	require.NoError(t, err)

	res, err := s.Synthesize(synth.Request{
		Signals: []oscillator.SinusoidSpec{{Amplitude: 2, FrequencyHz: 1, Kind: oscillator.Cos}},
	})
	require.NoError(t, err)

	assert.Equal(t, -2.0, res.Time[0])
	assert.InDelta(t, 2.0, res.Resultant.Amplitude, 0.01)
}
