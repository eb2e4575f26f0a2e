package approx

import (
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
)

// AssembleSurface reduces the surface fit to two passes of curve fits. Every
// U-row of samples is fitted along V; then, for every control point index of
// the row curves, the row curves' control points at that index are fitted
// along U. The column curves' control points form the control net.
//
// An axis whose segment count is Infeasible is interpolated instead of
// fitted, so with both axes Infeasible the surface passes through every
// sample.
func AssembleSurface(grid *SampleGrid, uSeg, vSeg SegmentCount, uKnots, vKnots KnotVector, fitter CurveFitter) (*Surface, error) {
	rows := make([]*Curve, grid.USize())
	for i := range rows {
		crv, err := fitSection(fitter, grid.row(i), grid.VParams, vSeg, vKnots, grid.VClosed, grid.vPeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("fit u-row %d: %w", i, err)
		}
		rows[i] = crv
	}
	if err := checkSameStructure(rows, "row"); err != nil {
		return nil, err
	}

	m := rows[0].NControlPoints()
	cols := make([]*Curve, m)
	for q := range cols {
		pts := make([]vec3.T, len(rows))
		for i, row := range rows {
			pts[i] = row.ControlPointAt(q)
		}

		crv, err := fitSection(fitter, pts, grid.UParams, uSeg, uKnots, grid.UClosed, grid.uPeriodEnd)
		if err != nil {
			return nil, fmt.Errorf("fit control column %d: %w", q, err)
		}
		cols[q] = crv
	}
	if err := checkSameStructure(cols, "column"); err != nil {
		return nil, err
	}

	net := make([][]vec3.T, cols[0].NControlPoints())
	for p := range net {
		net[p] = make([]vec3.T, m)
		for q, col := range cols {
			net[p][q] = col.ControlPointAt(p)
		}
	}

	srf, err := NewSurface(cols[0].KnotData(), rows[0].KnotData(), net, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFitterContract, err)
	}

	return srf, nil
}

// fitSection fits one cross-section with the given knots, or interpolates
// it when the axis is Infeasible.
func fitSection(fitter CurveFitter, points []vec3.T, params []float64, seg SegmentCount, knots KnotVector, closed bool, periodEnd float64) (*Curve, error) {
	var (
		crv *Curve
		err error
	)
	if seg.IsFeasible() {
		crv, err = fitter.FitWithKnots(points, params, KnotData{knots, closed})
	} else {
		crv, err = fitter.Interpolate(points, params, closed, periodEnd)
	}
	if err == nil && crv == nil {
		err = fmt.Errorf("%w: fitter returned no curve", ErrFitterContract)
	}
	return crv, err
}

func checkSameStructure(curves []*Curve, kind string) error {
	first := curves[0]
	for i, crv := range curves[1:] {
		if crv.NControlPoints() != first.NControlPoints() {
			return fmt.Errorf("%w: %s curve %d has %d control points, %s curve 0 has %d",
				ErrFitterContract, kind, i+1, crv.NControlPoints(), kind, first.NControlPoints())
		}
		if !crv.knots.Equal(first.knots) {
			return fmt.Errorf("%w: %s curve %d has different knots than %s curve 0", ErrFitterContract, kind, i+1, kind)
		}
	}
	return nil
}
