// Package mathcraft is a small 2D analytic geometry toolkit. It models points,
// lines in general form, circles, squares and triangles and computes their
// distances, areas, perimeters and containment relations.
//
// Shapes hold shared *Point references. Square and Triangle compute their
// lengths, perimeter and area once at construction; mutating a corner
// afterwards does not update them. Circle derives diameter, circumference and
// area from its radius on every read.
package mathcraft

import (
	"math"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance is the relative tolerance used when comparing computed lengths.
	tolerance = 1e-9
)

// SumLengths returns the sum of lengths, usually the sides of a polygon, i.e. its perimeter.
// The sum is compensated so the result does not depend on accumulated rounding error.
func SumLengths(lengths ...float64) float64 {
	// Neumaier's variant of Kahan summation.
	var sum, comp float64
	for _, v := range lengths {
		t := sum + v
		if math.Abs(sum) >= math.Abs(v) {
			comp += (sum - t) + v
		} else {
			comp += (v - t) + sum
		}
		sum = t
	}
	return sum + comp
}
