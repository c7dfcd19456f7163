package mathcraft

import "errors"

var (
	// ErrNegative is returned when a circle measure is set to a negative or NaN value.
	ErrNegative = errors.New("negative value")
	// ErrNotSquare is returned when four corners do not have equal side lengths.
	ErrNotSquare = errors.New("points do not form a square")
	// ErrDegenerateLine is returned when a line with a = b = 0 is used
	// where a direction is required.
	ErrDegenerateLine = errors.New("degenerate line: a and b are both zero")
	// ErrTriangleInequality is returned when three lengths cannot be the sides of a triangle.
	ErrTriangleInequality = errors.New("lengths violate the triangle inequality")
)
