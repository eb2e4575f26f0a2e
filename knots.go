package approx

import (
	. "github.com/alexozer/approx/internal"
)

// KnotVector holds the breakpoints b0 < b1 < ... < bn that bound the n
// segments of a curve along one axis. Knot multiplicities are implied by
// the curve type, see KnotData.
type KnotVector []float64

// Uniform splits [start, end] into seg equal segments. It returns nil for an
// Infeasible count; that axis is interpolated and needs no knots.
func Uniform(start, end float64, seg SegmentCount) KnotVector {
	n, ok := seg.Get()
	if !ok || n < 1 {
		return nil
	}

	kv := make(KnotVector, n+1)
	width := (end - start) / float64(n)
	for i := range kv {
		kv[i] = start + float64(i)*width
	}
	// pin the end exactly; start + n*width may round
	kv[n] = end

	return kv
}

func (this KnotVector) Segments() int {
	if len(this) == 0 {
		return 0
	}
	return len(this) - 1
}

func (this KnotVector) Clone() KnotVector {
	return append(KnotVector(nil), this...)
}

// Refine splits every span flagged bad at its midpoint and keeps the good
// ones. The new vector has Segments()+flags.Bad segments and the same end
// points.
func (this KnotVector) Refine(flags SpanFlags) KnotVector {
	if len(flags.Good) != this.Segments() {
		panic("span flags do not match the knot vector")
	}

	refined := make(KnotVector, 0, len(this)+flags.Bad)
	refined = append(refined, this[0])
	for i, good := range flags.Good {
		if !good {
			refined = append(refined, 0.5*(this[i]+this[i+1]))
		}
		refined = append(refined, this[i+1])
	}

	return refined
}

// KnotData describes the knot structure of a cubic curve along one axis: its
// breakpoints and whether it is periodic.
type KnotData struct {
	Breaks KnotVector
	Closed bool
}

func (this KnotData) Segments() int {
	return this.Breaks.Segments()
}

// NControlPoints is the number of distinct control points of a cubic with
// this knot structure.
func (this KnotData) NControlPoints() int {
	if this.Closed {
		return this.Segments()
	}
	return this.Segments() + Degree
}

// Domain returns the parameter range covered by the breakpoints.
func (this KnotData) Domain() (min, max float64) {
	return this.Breaks[0], this.Breaks[len(this.Breaks)-1]
}

// Knots expands the breakpoints into the full knot vector: clamped ends for
// an open curve, periodic extension for a closed one.
func (this KnotData) Knots() []float64 {
	return []float64(this.knotVec())
}

func (this KnotData) knotVec() KnotVec {
	if this.Closed {
		return Periodic(this.Breaks, Degree)
	}
	return Clamped(this.Breaks, Degree)
}

// Multiplicities lists every distinct knot of the full knot vector with its
// multiplicity.
func (this KnotData) Multiplicities() []KnotMultiplicity {
	return this.knotVec().Multiplicities()
}

// Equal reports whether two knot structures are identical.
func (this KnotData) Equal(other KnotData) bool {
	if this.Closed != other.Closed || len(this.Breaks) != len(other.Breaks) {
		return false
	}
	for i, b := range this.Breaks {
		if b != other.Breaks[i] {
			return false
		}
	}
	return true
}

// valid reports whether the breakpoints describe at least one segment and
// increase strictly.
func (this KnotData) valid() bool {
	return len(this.Breaks) >= 2 && KnotVec(this.Breaks).IsIncreasing()
}

// basisSpan evaluates the cubic basis at u and returns the distinct control
// point index of each non-vanishing function together with its value.
func (this KnotData) basisSpan(knots KnotVec, u float64) (indices []int, values []float64) {
	span := knots.Span(Degree, u)
	values = knots.Basis(span, u, Degree)
	indices = this.controlIndices(span)
	return indices, values
}

// controlIndices maps the basis functions of a knot span to distinct control
// point indices; on a closed curve they wrap.
func (this KnotData) controlIndices(span int) []int {
	indices := make([]int, Degree+1)
	n := this.NControlPoints()
	for r := range indices {
		j := span - Degree + r
		if this.Closed {
			j %= n
		}
		indices[r] = j
	}
	return indices
}
