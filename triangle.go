package mathcraft

import (
	"fmt"
	"strings"

	"github.com/soypat/mathcraft/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Triangle is defined by three corner points. Any three points are accepted,
// collinear ones included, in which case the area is 0.
//
// Sides are named after the opposite corner: a = BC, b = AC, c = AB.
type Triangle struct {
	corners [3]*Point
	// Snapshot taken by NewTriangle.
	c, a, b   float64
	perimeter float64
	area      float64
	bb        d2.Box
}

// NewTriangle returns the triangle with corners a, b and c. It only fails if
// the side lengths cannot be evaluated by Heron's formula, i.e. for NaN or
// infinite coordinates.
func NewTriangle(a, b, c *Point) (*Triangle, error) {
	t := Triangle{
		corners: [3]*Point{a, b, c},
		c:       Distance(a, b),
		a:       Distance(b, c),
		b:       Distance(a, c),
	}
	lengths := t.Lengths()
	area, err := Heron(lengths)
	if err != nil {
		return nil, fmt.Errorf("triangle %s: %w", strings.Join(t.Points(), ", "), err)
	}
	t.area = area
	t.perimeter = SumLengths(lengths[:]...)
	t.bb = d2.Set{a.Vec, b.Vec, c.Vec}.Bounds()
	return &t, nil
}

// Corners returns the corner points A, B and C.
func (t *Triangle) Corners() [3]*Point { return t.corners }

// Points returns the formatted corner points.
func (t *Triangle) Points() []string { return formatPoints(t.corners[:]) }

// Lengths returns the sides in the order c (AB), a (BC), b (AC).
func (t *Triangle) Lengths() [3]float64 { return [3]float64{t.c, t.a, t.b} }

// SideA returns the length of BC.
func (t *Triangle) SideA() float64 { return t.a }

// SideB returns the length of AC.
func (t *Triangle) SideB() float64 { return t.b }

// SideC returns the length of AB.
func (t *Triangle) SideC() float64 { return t.c }

// Perimeter returns the sum of the side lengths.
func (t *Triangle) Perimeter() float64 { return t.perimeter }

// Area returns the area given by Heron's formula.
func (t *Triangle) Area() float64 { return t.area }

// Bounds returns the bounding box of the corners at construction.
func (t *Triangle) Bounds() r2.Box { return r2.Box(t.bb) }

func (t *Triangle) String() string {
	return "triangle with corners " + strings.Join(t.Points(), ", ")
}
