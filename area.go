package mathcraft

import (
	"fmt"
	"math"
)

// SquareArea returns the area of a square of the given side length.
func SquareArea(side float64) float64 {
	return side * side
}

// RightTriangleArea returns the area of a right triangle with legs leg1 and leg2.
func RightTriangleArea(leg1, leg2 float64) float64 {
	return leg1 * leg2 / 2
}

// CircleArea returns the area of a circle of the given radius.
func CircleArea(radius float64) float64 {
	return pi * radius * radius
}

// Heron returns the area of a triangle with side lengths sides using Heron's formula.
//
// Each side may exceed the semi-perimeter by at most a relative 1e-9, which
// absorbs the rounding of degenerate (collinear) triangles; their area is 0.
// Lengths that are negative, NaN or violate the triangle inequality by more
// return ErrTriangleInequality.
func Heron(sides [3]float64) (float64, error) {
	a, b, c := sides[0], sides[1], sides[2]
	if !(a >= 0 && b >= 0 && c >= 0) {
		return 0, fmt.Errorf("heron %v: %w", sides, ErrTriangleInequality)
	}
	p := (a + b + c) / 2
	for _, s := range sides {
		if p-s < -tolerance*p {
			return 0, fmt.Errorf("heron %v: %w", sides, ErrTriangleInequality)
		}
	}
	radicand := p * (p - a) * (p - b) * (p - c)
	if radicand < 0 {
		radicand = 0
	}
	area := math.Sqrt(radicand)
	if math.IsNaN(area) {
		return 0, fmt.Errorf("heron %v: %w", sides, ErrTriangleInequality)
	}
	return area, nil
}
