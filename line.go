package mathcraft

import (
	"fmt"
	"math"
	"strings"
)

// Line is a line in general form a·x + b·y + c = 0.
// The zero value is the degenerate all-zero line, which renders as "0 = 0".
type Line struct {
	A, B, C float64
}

// NewLine returns the line a·x + b·y + c = 0.
func NewLine(a, b, c float64) Line {
	return Line{A: a, B: b, C: c}
}

// LineFromPoints returns the line through p1 and p2. If p1 and p2 coincide
// the result is the degenerate all-zero line.
func LineFromPoints(p1, p2 *Point) Line {
	return Line{
		A: p1.Y - p2.Y,
		B: p2.X - p1.X,
		C: p1.X*p2.Y - p2.X*p1.Y,
	}
}

// IsDegenerate returns true if a and b are both zero.
func (l Line) IsDegenerate() bool {
	return l.A == 0 && l.B == 0
}

// IsVertical returns true if the line has no defined slope (b = 0).
// The degenerate line has no slope either and is reported as vertical.
func (l Line) IsVertical() bool {
	return l.B == 0
}

// Slope returns -a/b. ok is false for vertical lines, in which case m is
// meaningless and must not be used.
func (l Line) Slope() (m float64, ok bool) {
	if l.IsVertical() {
		return math.Inf(1), false
	}
	return -l.A / l.B, true
}

// ContainsPoint reports whether p satisfies the line equation exactly.
// Points that lie on the line up to rounding error are rejected; see ContainsPointWithin.
func (l Line) ContainsPoint(p *Point) bool {
	return l.A*p.X+l.B*p.Y+l.C == 0
}

// ContainsPointWithin reports whether the perpendicular distance from p to the
// line is at most tol. A degenerate line contains no points.
func (l Line) ContainsPointWithin(p *Point, tol float64) bool {
	d, err := DistanceToLine(p, l)
	return err == nil && d <= tol
}

// IsPerpendicular returns true if the product of the slopes is exactly -1 or if
// one line is vertical and the other horizontal. A degenerate line has no
// direction and is perpendicular to nothing.
func (l Line) IsPerpendicular(other Line) bool {
	if l.IsDegenerate() || other.IsDegenerate() {
		return false
	}
	m1, ok1 := l.Slope()
	m2, ok2 := other.Slope()
	switch {
	case !ok1 && !ok2:
		return false
	case !ok1:
		return m2 == 0
	case !ok2:
		return m1 == 0
	}
	return m1*m2 == -1
}

// IsParallel returns true if both lines have the same slope or both are vertical.
// A degenerate line is parallel to nothing.
func (l Line) IsParallel(other Line) bool {
	if l.IsDegenerate() || other.IsDegenerate() {
		return false
	}
	m1, ok1 := l.Slope()
	m2, ok2 := other.Slope()
	if !ok1 || !ok2 {
		return ok1 == ok2
	}
	return m1 == m2
}

// DistanceToPoint returns the perpendicular distance from p to the line.
// See DistanceToLine.
func (l Line) DistanceToPoint(p *Point) (float64, error) {
	return DistanceToLine(p, l)
}

// String renders the line equation, i.e. "4x + 4y - 16 = 0". Zero terms are
// omitted and unit coefficients are written without the numeral.
func (l Line) String() string {
	var sb strings.Builder
	writeTerm(&sb, l.A, "x")
	writeTerm(&sb, l.B, "y")
	writeTerm(&sb, l.C, "")
	if sb.Len() == 0 {
		return "0 = 0"
	}
	sb.WriteString(" = 0")
	return sb.String()
}

func writeTerm(sb *strings.Builder, coef float64, variable string) {
	if coef == 0 {
		return
	}
	first := sb.Len() == 0
	switch {
	case first && coef < 0:
		sb.WriteByte('-')
	case !first && coef < 0:
		sb.WriteString(" - ")
	case !first:
		sb.WriteString(" + ")
	}
	abs := math.Abs(coef)
	if abs != 1 || variable == "" {
		fmt.Fprintf(sb, "%v", abs)
	}
	sb.WriteString(variable)
}
