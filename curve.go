package approx

import (
	"errors"

	. "github.com/alexozer/approx/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Curve is a cubic, non-rational B-spline curve, open (clamped) or closed
// (periodic). A closed curve stores only its distinct control points.
type Curve struct {
	knots KnotData

	// full knot vector, derived from knots
	knotVec KnotVec

	// one per distinct control point
	controlPoints []vec3.T
}

func NewCurve(knots KnotData, controlPoints []vec3.T) (*Curve, error) {
	this := newCurveUnchecked(knots, controlPoints)
	if err := this.check(); err != nil {
		return nil, err
	}

	return this, nil
}

func newCurveUnchecked(knots KnotData, controlPoints []vec3.T) *Curve {
	knots.Breaks = knots.Breaks.Clone()
	return &Curve{
		knots:         knots,
		knotVec:       knots.knotVec(),
		controlPoints: append([]vec3.T(nil), controlPoints...),
	}
}

func (this *Curve) check() error {
	if !this.knots.valid() {
		return errors.New("curve breakpoints must be strictly increasing with at least one segment")
	}

	if len(this.controlPoints) != this.knots.NControlPoints() {
		return errors.New("control point count does not match the knot structure")
	}

	return nil
}

func (this *Curve) NSegments() int {
	return this.knots.Segments()
}

func (this *Curve) NControlPoints() int {
	return len(this.controlPoints)
}

func (this *Curve) ControlPointAt(i int) vec3.T {
	return this.controlPoints[i]
}

func (this *Curve) ControlPoints() []vec3.T {
	return append([]vec3.T(nil), this.controlPoints...)
}

func (this *Curve) KnotData() KnotData {
	return KnotData{this.knots.Breaks.Clone(), this.knots.Closed}
}

func (this *Curve) IsClosed() bool {
	return this.knots.Closed
}

func (this *Curve) Domain() (min, max float64) {
	return this.knots.Domain()
}

// Point evaluates the curve at u
// (corresponds to algorithm 3.1 from The NURBS book, Piegl & Tiller 2nd edition)
func (this *Curve) Point(u float64) vec3.T {
	indices, basis := this.knots.basisSpan(this.knotVec, u)

	var position vec3.T
	for r, j := range indices {
		scaled := this.controlPoints[j].Scaled(basis[r])
		position.Add(&scaled)
	}

	return position
}

// Derivatives returns the point and its first numDerivs derivatives at u.
// Derivatives above the degree are zero.
func (this *Curve) Derivatives(u float64, numDerivs int) []vec3.T {
	span := this.knotVec.Span(Degree, u)
	nders := this.knotVec.DerivativeBasis(span, u, Degree, numDerivs)
	indices := this.knots.controlIndices(span)

	ck := make([]vec3.T, numDerivs+1)
	for k := range ck {
		for r, j := range indices {
			scaled := this.controlPoints[j].Scaled(nders[k][r])
			ck[k].Add(&scaled)
		}
	}

	return ck
}
