package approx

import (
	"errors"

	. "github.com/alexozer/approx/internal"
	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

// Surface is a bicubic tensor-product B-spline surface, optionally rational.
// Each axis is open (clamped) or closed (periodic); a closed axis stores only
// its distinct rows or columns of control points.
type Surface struct {
	uKnots, vKnots KnotData

	// full knot vectors, derived from uKnots and vKnots
	uKnotVec, vKnotVec KnotVec

	// control net in homogeneous form, indexed [u][v]
	controlPoints [][]HomoPoint

	rational bool
}

// NewSurface builds a surface from its knot structure and control net
// (indexed [u][v]). weights may be nil for a polynomial surface; otherwise
// it has the shape of controlPoints and every weight must be positive.
func NewSurface(uKnots, vKnots KnotData, controlPoints [][]vec3.T, weights [][]float64) (*Surface, error) {
	if err := checkNet(uKnots, vKnots, controlPoints, weights); err != nil {
		return nil, err
	}

	return newSurfaceUnchecked(uKnots, vKnots, controlPoints, weights), nil
}

func newSurfaceUnchecked(uKnots, vKnots KnotData, controlPoints [][]vec3.T, weights [][]float64) *Surface {
	uKnots.Breaks = uKnots.Breaks.Clone()
	vKnots.Breaks = vKnots.Breaks.Clone()
	return &Surface{
		uKnots:        uKnots,
		vKnots:        vKnots,
		uKnotVec:      uKnots.knotVec(),
		vKnotVec:      vKnots.knotVec(),
		controlPoints: Homogenize2d(controlPoints, weights),
		rational:      weights != nil,
	}
}

func checkNet(uKnots, vKnots KnotData, controlPoints [][]vec3.T, weights [][]float64) error {
	if !uKnots.valid() || !vKnots.valid() {
		return errors.New("surface breakpoints must be strictly increasing with at least one segment")
	}

	if len(controlPoints) != uKnots.NControlPoints() {
		return errors.New("control net rows do not match the u knot structure")
	}
	for _, row := range controlPoints {
		if len(row) != vKnots.NControlPoints() {
			return errors.New("control net columns do not match the v knot structure")
		}
	}

	if weights == nil {
		return nil
	}
	if len(weights) != len(controlPoints) {
		return errors.New("weights do not match the control net")
	}
	for i, row := range weights {
		if len(row) != len(controlPoints[i]) {
			return errors.New("weights do not match the control net")
		}
		for _, w := range row {
			if !(w > 0) {
				return errors.New("weights must be positive")
			}
		}
	}

	return nil
}

func (this *Surface) UKnots() KnotData {
	return KnotData{this.uKnots.Breaks.Clone(), this.uKnots.Closed}
}

func (this *Surface) VKnots() KnotData {
	return KnotData{this.vKnots.Breaks.Clone(), this.vKnots.Closed}
}

func (this *Surface) USegments() int { return this.uKnots.Segments() }
func (this *Surface) VSegments() int { return this.vKnots.Segments() }

func (this *Surface) ControlPoints() [][]vec3.T {
	return Dehomogenize2d(this.controlPoints)
}

// Weights returns the control point weights, or nil for a polynomial
// surface.
func (this *Surface) Weights() [][]float64 {
	if !this.rational {
		return nil
	}
	return Weight2d(this.controlPoints)
}

func (this *Surface) IsRational() bool {
	return this.rational
}

func (this *Surface) DomainU() (min, max float64) {
	return this.uKnots.Domain()
}

func (this *Surface) DomainV() (min, max float64) {
	return this.vKnots.Domain()
}

// Point evaluates the surface at (u, v)
// (corresponds to algorithm 3.5 from The NURBS book, Piegl & Tiller 2nd edition)
func (this *Surface) Point(u, v float64) vec3.T {
	uind, uBasis := this.uKnots.basisSpan(this.uKnotVec, u)
	vind, vBasis := this.vKnots.basisSpan(this.vKnotVec, v)

	var position HomoPoint
	for l, vj := range vind {
		var temp HomoPoint

		// sample u isoline
		for k, ui := range uind {
			scaled := this.controlPoints[ui][vj].Scaled(uBasis[k])
			temp.Add(&scaled)
		}

		// add point from u isoline
		temp.Scale(vBasis[l])
		position.Add(&temp)
	}

	return position.Dehomogenized()
}

// Derivatives returns the partial derivatives of the surface at (u, v):
// skl[k][l] is the k-th derivative in u and l-th in v, for k+l <= numDerivs.
// skl[0][0] is the point itself.
func (this *Surface) Derivatives(u, v float64, numDerivs int) [][]vec3.T {
	ders := this.nonRationalDerivatives(u, v, numDerivs)
	wders := Weight2d(ders)
	skl := make([][]vec3.T, numDerivs+1)
	for k := range skl {
		skl[k] = make([]vec3.T, numDerivs+1-k)
	}

	// (corresponds to algorithm 4.4 from The NURBS book, Piegl & Tiller 2nd edition)
	for k := 0; k <= numDerivs; k++ {
		for l := 0; l <= numDerivs-k; l++ {
			pt := ders[k][l].Vec3

			for j := 1; j <= l; j++ {
				scaled := skl[k][l-j].Scaled(binomial(l, j) * wders[0][j])
				pt.Sub(&scaled)
			}

			for i := 1; i <= k; i++ {
				scaled := skl[k-i][l].Scaled(binomial(k, i) * wders[i][0])
				pt.Sub(&scaled)

				var v2 vec3.T
				for j := 1; j <= l; j++ {
					scaled := skl[k-i][l-j].Scaled(binomial(l, j) * wders[i][j])
					v2.Add(&scaled)
				}

				scaled = v2.Scaled(binomial(k, i))
				pt.Sub(&scaled)
			}

			pt.Scale(1 / wders[0][0])
			skl[k][l] = pt
		}
	}

	return skl
}

// nonRationalDerivatives differentiates the homogeneous surface
// (corresponds to algorithm 3.6 from The NURBS book, Piegl & Tiller 2nd edition)
func (this *Surface) nonRationalDerivatives(u, v float64, numDerivs int) [][]HomoPoint {
	uSpan := this.uKnotVec.Span(Degree, u)
	vSpan := this.vKnotVec.Span(Degree, v)
	uders := this.uKnotVec.DerivativeBasis(uSpan, u, Degree, numDerivs)
	vders := this.vKnotVec.DerivativeBasis(vSpan, v, Degree, numDerivs)
	uind := this.uKnots.controlIndices(uSpan)
	vind := this.vKnots.controlIndices(vSpan)

	skl := make([][]HomoPoint, numDerivs+1)
	temp := make([]HomoPoint, Degree+1)

	for k := range skl {
		skl[k] = make([]HomoPoint, numDerivs+1-k)

		for s, vj := range vind {
			temp[s] = HomoPoint{}
			for r, ui := range uind {
				scaled := this.controlPoints[ui][vj].Scaled(uders[k][r])
				temp[s].Add(&scaled)
			}
		}

		for l := range skl[k] {
			for s := range temp {
				scaled := temp[s].Scaled(vders[l][s])
				skl[k][l].Add(&scaled)
			}
		}
	}

	return skl
}

// Normal returns the unnormalized surface normal Su x Sv at (u, v).
func (this *Surface) Normal(u, v float64) vec3.T {
	derivs := this.Derivatives(u, v, 1)
	return vec3.Cross(&derivs[1][0], &derivs[0][1])
}

// Transform returns a copy of the surface with every control point mapped
// through mat. Weights are kept.
func (this *Surface) Transform(mat *mat4.T) *Surface {
	pts := Dehomogenize2d(this.controlPoints)

	for i := range pts {
		for j := range pts[i] {
			pts[i][j] = mat.MulVec3(&pts[i][j])
		}
	}

	return newSurfaceUnchecked(this.uKnots, this.vKnots, pts, this.Weights())
}
