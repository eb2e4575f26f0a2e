package approx

import (
	"math"

	"github.com/ungerik/go3d/float64/vec3"
)

// The zero value for BoundingBox is ready to use
type BoundingBox struct {
	Min, Max    vec3.T
	initialized bool
}

// Adds a point to the bounding box, expanding the bounding box if the point is outside of it.
//
// **returns**
// + This BoundingBox for chaining
func (this *BoundingBox) Add(point *vec3.T) *BoundingBox {
	if !this.initialized {
		this.Min, this.Max = *point, *point
		this.initialized = true

		return this
	}

	for i, val := range point {
		this.Max[i] = math.Max(this.Max[i], val)
		this.Min[i] = math.Min(this.Min[i], val)
	}

	return this
}

func (this *BoundingBox) AddRange(points []vec3.T) *BoundingBox {
	for i := range points {
		this.Add(&points[i])
	}
	return this
}

func (this *BoundingBox) IsEmpty() bool {
	return !this.initialized
}

// Contains reports whether point lies in the box grown by tol on every side.
func (this *BoundingBox) Contains(point *vec3.T, tol float64) bool {
	if !this.initialized {
		return false
	}

	for i, val := range point {
		if val < this.Min[i]-tol || val > this.Max[i]+tol {
			return false
		}
	}
	return true
}

// Get length of given axis, or 0 for an index out of range.
func (this *BoundingBox) AxisLength(i int) float64 {
	if !this.initialized || i < 0 || i > len(this.Min)-1 {
		return 0
	}
	return this.Max[i] - this.Min[i]
}

// Get longest axis of bounding box
func (this *BoundingBox) LongestAxis() int {
	id, max := 0, 0.0

	for i := range this.Min {
		if l := this.AxisLength(i); l > max {
			max, id = l, i
		}
	}

	return id
}

// Diagonal is the distance between the box corners, 0 for an empty box.
func (this *BoundingBox) Diagonal() float64 {
	if !this.initialized {
		return 0
	}
	return vec3.Distance(&this.Min, &this.Max)
}

// Bounds returns the box around every sample of the grid.
func (this *SampleGrid) Bounds() BoundingBox {
	var bb BoundingBox
	for _, row := range this.Points {
		bb.AddRange(row)
	}
	return bb
}

// ControlBounds returns the box around the control net. A polynomial or
// positively weighted surface lies inside it.
func (this *Surface) ControlBounds() BoundingBox {
	var bb BoundingBox
	for _, row := range this.ControlPoints() {
		bb.AddRange(row)
	}
	return bb
}
