package common

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Numeric helpers shared by the synthesis algorithms, using gonum where it
// already provides the operation

// IsFinite reports whether v is neither NaN nor infinite
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// RequireFinite returns ErrInvalidParameter naming the first non-finite value
func RequireFinite(params ...NamedValue) error {
	for _, p := range params {
		if !IsFinite(p.Value) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidParameter, p.Name, p.Value)
		}
	}
	return nil
}

// NamedValue labels a scalar for validation errors
type NamedValue struct {
	Name  string
	Value float64
}

// Named is shorthand for building a NamedValue
func Named(name string, value float64) NamedValue {
	return NamedValue{Name: name, Value: value}
}

// RequireFiniteSlice checks every element of data
func RequireFiniteSlice(name string, data []float64) error {
	for i, v := range data {
		if !IsFinite(v) {
			return fmt.Errorf("%w: %s[%d] must be finite, got %v", ErrInvalidParameter, name, i, v)
		}
	}
	return nil
}

// PeakToPeak returns max(data) - min(data), or 0 for empty data
func PeakToPeak(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Max(data) - floats.Min(data)
}

// RadiansToDegrees converts an angle in radians to degrees
func RadiansToDegrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// WrapDegrees maps an angle in degrees into (-180, 180]
func WrapDegrees(deg float64) float64 {
	wrapped := math.Mod(deg, 360.0)
	if wrapped <= -180.0 {
		wrapped += 360.0
	} else if wrapped > 180.0 {
		wrapped -= 360.0
	}
	return wrapped
}
