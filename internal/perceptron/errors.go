package perceptron

import "errors"

var (
	ErrInvalidSize     = errors.New("input count must be positive")
	ErrLengthMismatch  = errors.New("length mismatch")
	ErrMalformedToken  = errors.New("malformed weight token")
	ErrMalformedRange  = errors.New("range must be a [min, max] pair")
	ErrDegenerateRange = errors.New("degenerate source range")
)
