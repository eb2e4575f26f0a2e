package approx

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	approxOpt   = cmpopts.EquateApprox(0, 1e-9)
	cmpSegments = cmp.AllowUnexported(SegmentCount{})
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func linspace(start, end float64, n int) []float64 {
	params := make([]float64, n)
	for i := range params {
		params[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return params
}

// angles returns n parameters evenly spaced over [0, 2π), so the default
// period end of a closed axis is 2π.
func angles(n int) []float64 {
	params := make([]float64, n)
	for i := range params {
		params[i] = 2 * math.Pi * float64(i) / float64(n)
	}
	return params
}

func funcGrid(t *testing.T, f func(u, v float64) vec3.T, uParams, vParams []float64, uClosed, vClosed bool) *SampleGrid {
	t.Helper()
	pts := make([][]vec3.T, len(uParams))
	for i, u := range uParams {
		pts[i] = make([]vec3.T, len(vParams))
		for j, v := range vParams {
			pts[i][j] = f(u, v)
		}
	}

	grid, err := NewSampleGrid(pts, uParams, vParams, uClosed, vClosed)
	if err != nil {
		t.Fatal(err)
	}
	return grid
}

func wavy(u, v float64) vec3.T {
	return vec3.T{u, v, 0.2 * math.Sin(3*u) * math.Cos(2*v)}
}

func cylinder(u, v float64) vec3.T {
	return vec3.T{math.Cos(v), math.Sin(v), u}
}

func within(t *testing.T, what string, got, want vec3.T, tol float64) {
	t.Helper()
	if d := vec3.Distance(&got, &want); d > tol {
		t.Errorf("%s: got %v, want %v (distance %g)", what, got, want, d)
	}
}
