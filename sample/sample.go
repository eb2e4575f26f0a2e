// Package sample builds sample grids for approximation from analytic
// surfaces, corner patches and swept or revolved profiles.
package sample

import (
	"fmt"

	"github.com/alexozer/approx"
	"github.com/ungerik/go3d/float64/vec3"
)

// Linspace returns n parameters evenly spaced over [start, end], both ends
// included. n < 2 yields just start.
func Linspace(start, end float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}

	params := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range params {
		params[i] = start + float64(i)*step
	}
	params[n-1] = end

	return params
}

// ChordLength parameterizes pts by cumulative chord length, normalized to
// [0, 1]. Consecutive points must be distinct.
func ChordLength(pts []vec3.T) ([]float64, error) {
	if len(pts) < 2 {
		return nil, fmt.Errorf("chord length of %d points", len(pts))
	}

	params := make([]float64, len(pts))
	var lsum float64
	for i := 1; i < len(pts); i++ {
		d := vec3.Distance(&pts[i-1], &pts[i])
		if d == 0 {
			return nil, fmt.Errorf("points %d and %d coincide", i-1, i)
		}
		lsum += d
		params[i] = lsum
	}

	// normalize
	for i := range params {
		params[i] /= lsum
	}
	params[len(params)-1] = 1

	return params, nil
}

// FromFunc samples f at every (uParams[i], vParams[j]).
func FromFunc(f func(u, v float64) vec3.T, uParams, vParams []float64, uClosed, vClosed bool, opts ...approx.GridOption) (*approx.SampleGrid, error) {
	pts := make([][]vec3.T, len(uParams))
	for i, u := range uParams {
		pts[i] = make([]vec3.T, len(vParams))
		for j, v := range vParams {
			pts[i][j] = f(u, v)
		}
	}

	return approx.NewSampleGrid(pts, uParams, vParams, uClosed, vClosed, opts...)
}
