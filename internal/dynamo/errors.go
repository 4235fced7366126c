package dynamo

import "errors"

// Domain errors shared by the scene packages.
var (
	// ErrInvalidDelta indicates a frame delta that is negative, NaN or Inf.
	ErrInvalidDelta = errors.New("dynamo: invalid frame delta")

	// ErrInvalidState indicates a vector holding NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("dynamo: parameter out of valid bounds")
)

// FrameError wraps an error with the frame it occurred on.
type FrameError struct {
	Frame   int
	Time    float64
	Wrapped error
}

func (e *FrameError) Error() string {
	return e.Wrapped.Error()
}

func (e *FrameError) Unwrap() error {
	return e.Wrapped
}
