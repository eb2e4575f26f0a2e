package approx

import "errors"

var (
	// ErrInvalidGrid is returned for sample grids that cannot be
	// approximated: ragged rows, fewer than two samples on an axis,
	// parameters that are not finite and strictly increasing, or a period
	// end that does not close the axis after its last parameter.
	ErrInvalidGrid = errors.New("invalid sample grid")

	// ErrInvalidTolerance is returned when the distance tolerance is not a
	// finite positive number.
	ErrInvalidTolerance = errors.New("tolerance must be finite and positive")

	// ErrFitterContract is returned when a CurveFitter produces curves that
	// cannot be assembled into a tensor-product surface, for example row
	// curves with differing control point counts for the same knots.
	ErrFitterContract = errors.New("curve fitter violated its contract")
)
