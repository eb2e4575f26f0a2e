package approx

import (
	"fmt"

	. "github.com/alexozer/approx/internal"
	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// CurveFitter fits cubic curves through ordered samples. The surface
// assembler relies on one property beyond the individual fits: for the same
// params and knots, every call returns curves with identical knot structure
// and control point count.
//
// periodEnd is only meaningful when closed is true; it is the parameter at
// which the curve returns to points[0].
type CurveFitter interface {
	// FitWithKnots returns the least-squares fit with the given knots. When
	// the knots give exactly as many control points as samples, the fit
	// interpolates.
	FitWithKnots(points []vec3.T, params []float64, knots KnotData) (*Curve, error)

	// FitWithTolerance returns a curve with few segments whose distance to
	// every sample, at the sample's parameter, is at most tol.
	FitWithTolerance(points []vec3.T, params []float64, closed bool, periodEnd, tol float64) (*Curve, error)

	// Interpolate returns a curve through every sample at its parameter.
	Interpolate(points []vec3.T, params []float64, closed bool, periodEnd float64) (*Curve, error)
}

// LeastSquaresFitter is the default CurveFitter. It solves the fitting
// systems with QR, falling back to the minimum-norm SVD solution when a knot
// span holds too few samples for the system to be regular.
type LeastSquaresFitter struct{}

var _ CurveFitter = LeastSquaresFitter{}

func (LeastSquaresFitter) FitWithKnots(points []vec3.T, params []float64, knots KnotData) (*Curve, error) {
	if len(points) != len(params) {
		return nil, fmt.Errorf("%d points for %d parameters", len(points), len(params))
	}
	if !knots.valid() {
		return nil, fmt.Errorf("knots %v are not strictly increasing", knots.Breaks)
	}

	knotVec := knots.knotVec()
	design := mat.NewDense(len(points), knots.NControlPoints(), nil)
	for i, u := range params {
		indices, values := knots.basisSpan(knotVec, u)
		for r, j := range indices {
			// wrapped basis functions of a closed curve share a column
			design.Set(i, j, design.At(i, j)+values[r])
		}
	}

	cps, err := SolvePoints(design, points)
	if err != nil {
		return nil, fmt.Errorf("fit %d points with %d segments: %w", len(points), knots.Segments(), err)
	}

	return newCurveUnchecked(knots, cps), nil
}

func (this LeastSquaresFitter) FitWithTolerance(points []vec3.T, params []float64, closed bool, periodEnd, tol float64) (*Curve, error) {
	nPoints := len(points)
	seg := clampSegments(MinSegmentNumber(closed, Degree), nPoints, closed)
	if !seg.IsFeasible() {
		return this.Interpolate(points, params, closed, periodEnd)
	}

	start, end := axisDomain(params, closed, periodEnd)
	kv := Uniform(start, end, seg)

	for {
		crv, err := this.FitWithKnots(points, params, KnotData{kv, closed})
		if err != nil {
			return nil, err
		}

		flags := markSpans(kv, params, func(i int) bool {
			c := crv.Point(params[i])
			return vec3.Distance(&c, &points[i]) > tol
		})
		if flags.Bad == 0 {
			return crv, nil
		}

		next := GrowSegments(seg, flags.Bad, closed, nPoints)
		if !next.IsFeasible() {
			return this.Interpolate(points, params, closed, periodEnd)
		}
		seg, kv = next, kv.Refine(flags)
	}
}

func (this LeastSquaresFitter) Interpolate(points []vec3.T, params []float64, closed bool, periodEnd float64) (*Curve, error) {
	n := len(points)
	if n != len(params) {
		return nil, fmt.Errorf("%d points for %d parameters", n, len(params))
	}
	if n < 2 {
		return nil, fmt.Errorf("cannot interpolate %d points", n)
	}

	if closed {
		// one segment per sample; the last one closes the loop
		breaks := append(KnotVector(params).Clone(), periodEnd)
		return this.FitWithKnots(points, params, KnotData{breaks, true})
	}

	if n <= Degree {
		return interpolateBezier(points, params)
	}

	return this.FitWithKnots(points, params, KnotData{averagedBreaks(params), false})
}

// averagedBreaks places the interior knots of an open interpolating cubic at
// running averages of the parameters, which keeps the system regular
// (Piegl & Tiller eq. 9.8).
func averagedBreaks(params []float64) KnotVector {
	n := len(params)
	breaks := make(KnotVector, 0, n-Degree+1)
	breaks = append(breaks, params[0])
	for j := 1; j <= n-Degree-1; j++ {
		var sum float64
		for i := j; i < j+Degree; i++ {
			sum += params[i]
		}
		breaks = append(breaks, sum/Degree)
	}
	breaks = append(breaks, params[n-1])

	return breaks
}

// interpolateBezier interpolates two or three samples with the Bézier
// polynomial of the lowest degree and raises it to a single cubic segment.
func interpolateBezier(points []vec3.T, params []float64) (*Curve, error) {
	degree := len(points) - 1
	t0, t1 := params[0], params[len(params)-1]

	design := mat.NewDense(len(points), degree+1, nil)
	for i, t := range params {
		design.SetRow(i, bernstein(degree, (t-t0)/(t1-t0)))
	}

	cps, err := SolvePoints(design, points)
	if err != nil {
		return nil, fmt.Errorf("interpolate %d points: %w", len(points), err)
	}

	for ; degree < Degree; degree++ {
		cps = elevateBezier(cps)
	}

	return newCurveUnchecked(KnotData{KnotVector{t0, t1}, false}, cps), nil
}

// elevateBezier raises the degree of a Bézier curve by one without changing
// its shape.
func elevateBezier(cps []vec3.T) []vec3.T {
	p := len(cps) - 1
	elevated := make([]vec3.T, p+2)
	elevated[0], elevated[p+1] = cps[0], cps[p]
	for k := 1; k <= p; k++ {
		a := float64(k) / float64(p+1)
		elevated[k] = vec3.Interpolate(&cps[k], &cps[k-1], a)
	}
	return elevated
}
