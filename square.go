package mathcraft

import (
	"fmt"
	"strings"

	"github.com/soypat/mathcraft/internal/d2"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/spatial/r2"
)

// Square is a quadrilateral A→B→C→D→A with four equal sides.
//
// Only side lengths are validated: angles and diagonals are not checked, so a
// rhombus is accepted as a square.
type Square struct {
	corners [4]*Point
	// Snapshot taken by NewSquare.
	lengths   [4]float64 // AB, BC, CD, AD
	perimeter float64
	area      float64
	bb        d2.Box
}

// NewSquare returns the square with corners a, b, c, d traced in that order.
// It fails with ErrNotSquare if the four side lengths are not equal within a
// relative tolerance of 1e-9.
func NewSquare(a, b, c, d *Point) (*Square, error) {
	s := Square{corners: [4]*Point{a, b, c, d}}
	s.lengths = [4]float64{
		Distance(a, b),
		Distance(b, c),
		Distance(c, d),
		Distance(a, d),
	}
	for _, l := range s.lengths[1:] {
		if !scalar.EqualWithinRel(s.lengths[0], l, tolerance) {
			return nil, fmt.Errorf("%w: %s", ErrNotSquare, strings.Join(s.Points(), ", "))
		}
	}
	s.perimeter = SumLengths(s.lengths[:]...)
	s.area = SquareArea(s.lengths[0])
	s.bb = d2.Set{a.Vec, b.Vec, c.Vec, d.Vec}.Bounds()
	return &s, nil
}

// Corners returns the corner points in trace order.
func (s *Square) Corners() [4]*Point { return s.corners }

// Points returns the formatted corner points, i.e. "A(0; 0)".
func (s *Square) Points() []string {
	return formatPoints(s.corners[:])
}

// Lengths returns the side lengths AB, BC, CD and AD.
func (s *Square) Lengths() [4]float64 { return s.lengths }

// Side returns the length of side AB.
func (s *Square) Side() float64 { return s.lengths[0] }

// Perimeter returns the sum of the side lengths.
func (s *Square) Perimeter() float64 { return s.perimeter }

// Area returns the square of side AB.
func (s *Square) Area() float64 { return s.area }

// Bounds returns the bounding box of the corners at construction.
func (s *Square) Bounds() r2.Box { return r2.Box(s.bb) }

func (s *Square) String() string {
	return "square with corners " + strings.Join(s.Points(), ", ")
}

func formatPoints(pts []*Point) []string {
	s := make([]string, len(pts))
	for i, p := range pts {
		s[i] = p.String()
	}
	return s
}
