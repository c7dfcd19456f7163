package d2

import (
	"gonum.org/v1/gonum/spatial/r2"
)

// Box is a 2d axis aligned bounding box.
type Box r2.Box

// NewBox creates a 2d box with a given center and size.
func NewBox(center, size r2.Vec) Box {
	half := r2.Scale(0.5, size)
	return Box{r2.Sub(center, half), r2.Add(center, half)}
}
