package approx

import "strconv"

// Degree is the polynomial degree of every curve and surface built here.
const Degree = 3

// SegmentCount is the number of polynomial segments along one axis, or the
// marker that the axis has too few samples to be fitted and must be
// interpolated instead.
type SegmentCount struct {
	n        int
	feasible bool
}

// Infeasible marks an axis that cannot be fitted.
var Infeasible = SegmentCount{}

func Feasible(n int) SegmentCount {
	return SegmentCount{n: n, feasible: true}
}

// Get returns the segment count and whether the axis is feasible.
func (this SegmentCount) Get() (int, bool) {
	return this.n, this.feasible
}

func (this SegmentCount) IsFeasible() bool {
	return this.feasible
}

func (this SegmentCount) String() string {
	if !this.feasible {
		return "infeasible"
	}
	return strconv.Itoa(this.n)
}

// MinSegmentNumber is the fewest segments a curve of the given degree may
// have: one for an open curve, degree for a closed one.
func MinSegmentNumber(closed bool, degree int) int {
	if closed {
		return degree
	}
	return 1
}

// MaxSegmentNumber is the segment count at which a curve through nPoints
// samples has as many control points as samples, so fitting becomes
// interpolation. An open curve with n segments has n+degree control points,
// a closed one has n.
func MaxSegmentNumber(nPoints int, closed bool, degree int) int {
	if closed {
		return nPoints
	}
	return nPoints - degree
}

// clampSegments bounds a segment count to [min, max] for an axis, or reports
// Infeasible when that range is empty.
func clampSegments(n, nPoints int, closed bool) SegmentCount {
	lo := MinSegmentNumber(closed, Degree)
	hi := MaxSegmentNumber(nPoints, closed, Degree)
	if lo > hi {
		return Infeasible
	}

	return Feasible(min(max(n, lo), hi))
}
