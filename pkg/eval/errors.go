package eval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInsufficientData indicates the evaluation set lacks a positive
	// or negative instance, or a curve has too few points to integrate.
	ErrInsufficientData = errors.New("eval: insufficient data")

	// ErrInvalidArgument indicates a malformed input such as an empty
	// threshold set or a threshold outside [0, 1].
	ErrInvalidArgument = errors.New("eval: invalid argument")
)
