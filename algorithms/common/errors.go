package common

import "errors"

// Error kinds shared by the synthesis algorithms. Callers match them with
// errors.Is; every returned error wraps exactly one of these.
var (
	// ErrInvalidParameter indicates a numeric input that is NaN or infinite,
	// or an enumerated value outside its domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrShapeMismatch indicates sequences whose lengths differ where they
	// must agree, or differ from a fixed required length.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmptyInput indicates an operation that needs at least one signal
	// received none.
	ErrEmptyInput = errors.New("empty input")
)
