package sample

import (
	"github.com/alexozer/approx"
	"github.com/ungerik/go3d/float64/vec3"
)

// Bilinear samples the bilinear patch spanned by four corners on a uN x vN
// grid over [0, 1]^2
//
// **params**
// + corners in counter-clockwise order, p1 at (0, 0), p2 at (1, 0), p3 at (1, 1), p4 at (0, 1)
// + sample counts per axis
//
// **returns**
// + an open SampleGrid
func Bilinear(p1, p2, p3, p4 *vec3.T, uN, vN int) (*approx.SampleGrid, error) {
	return FromFunc(func(u, v float64) vec3.T {
		p1p2 := vec3.Interpolate(p1, p2, u)
		p4p3 := vec3.Interpolate(p4, p3, u)
		return vec3.Interpolate(&p1p2, &p4p3, v)
	}, Linspace(0, 1, uN), Linspace(0, 1, vN), false, false)
}
