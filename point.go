package mathcraft

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a labeled point in the plane. The label is only used for display.
// Coordinates are read and written through the embedded vector, i.e. p.X and p.Y.
type Point struct {
	Label string
	r2.Vec
}

// NewPoint returns a point at (x, y).
func NewPoint(label string, x, y float64) *Point {
	return &Point{Label: label, Vec: r2.Vec{X: x, Y: y}}
}

// Midpoint returns a new point halfway between a and b.
func Midpoint(label string, a, b *Point) *Point {
	return &Point{
		Label: label,
		Vec:   r2.Scale(0.5, r2.Add(a.Vec, b.Vec)),
	}
}

// String formats the point as "A(0; 4)".
func (p *Point) String() string {
	return fmt.Sprintf("%s(%v; %v)", p.Label, p.X, p.Y)
}
