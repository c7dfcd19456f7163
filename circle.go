package mathcraft

import (
	"fmt"
	"math"

	"github.com/soypat/mathcraft/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
)

// Circle is a circle with a shared center point. The radius is the only stored
// measure; diameter, circumference and area are computed from it on every read.
type Circle struct {
	center *Point
	radius float64
}

// NewCircle returns a circle centered at center. The center is referenced, not copied.
func NewCircle(center *Point, radius float64) (*Circle, error) {
	c := &Circle{center: center}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

// Center returns the circle's center point.
func (c *Circle) Center() *Point { return c.center }

// SetCenter moves the circle to reference center.
func (c *Circle) SetCenter(center *Point) { c.center = center }

// Radius returns the circle radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius. It fails with ErrNegative if radius < 0.
func (c *Circle) SetRadius(radius float64) error {
	if err := checkMeasure("radius", radius); err != nil {
		return err
	}
	c.radius = radius
	return nil
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() float64 { return 2 * c.radius }

// SetDiameter sets the radius to diameter/2.
func (c *Circle) SetDiameter(diameter float64) error {
	if err := checkMeasure("diameter", diameter); err != nil {
		return err
	}
	c.radius = diameter / 2
	return nil
}

// Circumference returns the length of the circle's boundary.
func (c *Circle) Circumference() float64 { return tau * c.radius }

// SetCircumference sets the radius to circumference/2π.
func (c *Circle) SetCircumference(circumference float64) error {
	if err := checkMeasure("circumference", circumference); err != nil {
		return err
	}
	c.radius = circumference / tau
	return nil
}

// Area returns πr².
func (c *Circle) Area() float64 { return CircleArea(c.radius) }

// SetArea sets the radius to sqrt(area/π).
func (c *Circle) SetArea(area float64) error {
	if err := checkMeasure("area", area); err != nil {
		return err
	}
	c.radius = math.Sqrt(area / pi)
	return nil
}

// Contains reports whether p lies inside the circle. Points exactly on the
// boundary are contained only if includeBoundary is true.
func (c *Circle) Contains(p *Point, includeBoundary bool) bool {
	d := Distance(c.center, p)
	if includeBoundary {
		return d <= c.radius
	}
	return d < c.radius
}

// Bounds returns the square box enclosing the circle at its current center and radius.
func (c *Circle) Bounds() r2.Box {
	return r2.Box(d2.NewBox(c.center.Vec, d2.Elem(c.Diameter())))
}

// String describes the circle by center and radius.
func (c *Circle) String() string {
	return fmt.Sprintf("circle centered at %v with radius %v", c.center, c.radius)
}

func checkMeasure(name string, v float64) error {
	if !(v >= 0) {
		return fmt.Errorf("circle %s %v: %w", name, v, ErrNegative)
	}
	return nil
}
