package pts

import "github.com/pkg/errors"

var (
	// ErrDimensionMismatch is returned when an operation needs a specific
	// number of components that the receiver or operand does not have.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrIndexOutOfRange is returned by indexed access past the end of a point.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDegenerateVector is returned when a direction is needed from a
	// vector with (almost) zero magnitude.
	ErrDegenerateVector = errors.New("degenerate vector")
)
