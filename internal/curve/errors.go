package curve

import "errors"

// Domain errors for curve operations.
var (
	// ErrEmptyCurve indicates a response curve with no keyframes or
	// non-finite values; such a curve cannot drive an actuator.
	ErrEmptyCurve = errors.New("curve: empty or malformed response curve")

	// ErrPercentBounds indicates a limiter percentage outside [1,100].
	ErrPercentBounds = errors.New("curve: percent out of valid bounds")
)
