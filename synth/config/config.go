package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/RyanBlaney/sonido-synth/algorithms/common"
)

type GridPreset string

const (
	GridUnit      GridPreset = "unit"      // 0 to 1 s
	GridSymmetric GridPreset = "symmetric" // -2 to 2 s
	GridCustom    GridPreset = "custom"    // Start/End taken from GridConfig
)

// DefaultMaxSignals matches the three signal slots of the interactive tool
const DefaultMaxSignals = 3

// GridConfig selects the time grid held constant for a session
type GridConfig struct {
	Preset  GridPreset `json:"preset"`
	Start   float64    `json:"start,omitempty"`   // custom only
	End     float64    `json:"end,omitempty"`     // custom only
	Samples int        `json:"samples,omitempty"` // 0 means common.DefaultGridSamples
}

// SynthConfig configures a synthesis session
type SynthConfig struct {
	Grid       GridConfig `json:"grid"`
	MaxSignals int        `json:"max_signals"`
}

// DefaultConfig returns the unit grid with 1000 samples and three signals
func DefaultConfig() *SynthConfig {
	return &SynthConfig{
		Grid: GridConfig{
			Preset:  GridUnit,
			Samples: common.DefaultGridSamples,
		},
		MaxSignals: DefaultMaxSignals,
	}
}

// Load reads a JSON config from path on top of DefaultConfig
func Load(path string) (*SynthConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the grid can be built and the signal limit is positive
func (c *SynthConfig) Validate() error {
	if c.MaxSignals <= 0 {
		return fmt.Errorf("%w: max_signals must be positive, got %d", common.ErrInvalidParameter, c.MaxSignals)
	}
	_, err := c.Grid.Build()
	return err
}

// Build creates the TimeGrid described by the config
func (g GridConfig) Build() (*common.TimeGrid, error) {
	samples := g.Samples
	if samples == 0 {
		samples = common.DefaultGridSamples
	}

	switch g.Preset {
	case GridUnit, "":
		return common.NewTimeGrid(0, 1, samples)
	case GridSymmetric:
		return common.NewTimeGrid(-2, 2, samples)
	case GridCustom:
		return common.NewTimeGrid(g.Start, g.End, samples)
	default:
		return nil, fmt.Errorf("%w: unknown grid preset %q", common.ErrInvalidParameter, g.Preset)
	}
}
