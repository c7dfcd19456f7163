// Package must2 provides constructors for mathcraft shapes that panic instead
// of returning an error. Use it where invalid input is a programming error,
// i.e. for hard-coded geometry.
package must2

import (
	"github.com/soypat/mathcraft"
)

// Circle returns a circle centered at center. It panics if radius < 0.
func Circle(center *mathcraft.Point, radius float64) *mathcraft.Circle {
	c, err := mathcraft.NewCircle(center, radius)
	if err != nil {
		panic(err)
	}
	return c
}

// Square returns the square with corners a, b, c, d. It panics if the
// sides are not of equal length.
func Square(a, b, c, d *mathcraft.Point) *mathcraft.Square {
	s, err := mathcraft.NewSquare(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return s
}

// Triangle returns the triangle with corners a, b and c.
func Triangle(a, b, c *mathcraft.Point) *mathcraft.Triangle {
	t, err := mathcraft.NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// DistanceToLine returns the distance from p to l. It panics if l is degenerate.
func DistanceToLine(p *mathcraft.Point, l mathcraft.Line) float64 {
	d, err := mathcraft.DistanceToLine(p, l)
	if err != nil {
		panic(err)
	}
	return d
}

// Heron returns the area of a triangle with the given side lengths.
// It panics if the lengths violate the triangle inequality.
func Heron(sides [3]float64) float64 {
	area, err := mathcraft.Heron(sides)
	if err != nil {
		panic(err)
	}
	return area
}
