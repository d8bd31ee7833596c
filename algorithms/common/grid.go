package common

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const (
	// DefaultGridSamples is the sample count used by both grid presets
	DefaultGridSamples = 1000
)

// TimeGrid is an ordered, evenly spaced sequence of sample instants in
// seconds. It is read-only once built and shared by every sampling call of a
// session, so peak-to-peak comparisons between results stay meaningful.
type TimeGrid struct {
	start    float64
	end      float64
	instants []float64
}

// NewTimeGrid creates samples evenly spaced instants covering [start, end]
// inclusive of both endpoints
func NewTimeGrid(start, end float64, samples int) (*TimeGrid, error) {
	if err := RequireFinite(Named("grid start", start), Named("grid end", end)); err != nil {
		return nil, err
	}
	if end <= start {
		return nil, fmt.Errorf("%w: grid end (%v) must be greater than start (%v)", ErrInvalidParameter, end, start)
	}
	if samples < 2 {
		return nil, fmt.Errorf("%w: grid needs at least 2 samples, got %d", ErrInvalidParameter, samples)
	}

	instants := make([]float64, samples)
	floats.Span(instants, start, end)
	instants[samples-1] = end // exact endpoint regardless of step rounding

	return &TimeGrid{
		start:    start,
		end:      end,
		instants: instants,
	}, nil
}

// UnitGrid returns 1000 instants over 0-1 s
func UnitGrid() *TimeGrid {
	g, _ := NewTimeGrid(0, 1, DefaultGridSamples)
	return g
}

// SymmetricGrid returns 1000 instants over -2-2 s
func SymmetricGrid() *TimeGrid {
	g, _ := NewTimeGrid(-2, 2, DefaultGridSamples)
	return g
}

// Len returns the number of instants
func (g *TimeGrid) Len() int {
	return len(g.instants)
}

// Start returns the first instant
func (g *TimeGrid) Start() float64 {
	return g.start
}

// End returns the last instant
func (g *TimeGrid) End() float64 {
	return g.end
}

// Duration returns End - Start
func (g *TimeGrid) Duration() float64 {
	return g.end - g.start
}

// Step returns the spacing between consecutive instants
func (g *TimeGrid) Step() float64 {
	return g.Duration() / float64(len(g.instants)-1)
}

// At returns the i-th instant
func (g *TimeGrid) At(i int) float64 {
	return g.instants[i]
}

// Instants returns a copy of the instants
func (g *TimeGrid) Instants() []float64 {
	out := make([]float64, len(g.instants))
	copy(out, g.instants)
	return out
}
