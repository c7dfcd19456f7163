package mathcraft

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Distance returns the euclidean distance between a and b.
func Distance(a, b *Point) float64 {
	return r2.Norm(r2.Sub(a.Vec, b.Vec))
}

// DistanceToLine returns the perpendicular distance from p to l.
// It fails with ErrDegenerateLine if l has a = b = 0.
func DistanceToLine(p *Point, l Line) (float64, error) {
	if l.IsDegenerate() {
		return 0, fmt.Errorf("distance from %v to %v: %w", p, l, ErrDegenerateLine)
	}
	return math.Abs(l.A*p.X+l.B*p.Y+l.C) / math.Hypot(l.A, l.B), nil
}
