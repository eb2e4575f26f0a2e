package approx

import "github.com/ungerik/go3d/float64/vec3"

// ResidualGrid holds, for every sample, its distance to the surface
// evaluated at the sample's parameters. It is indexed [u][v] like the grid.
type ResidualGrid [][]float64

// EvaluateResiduals measures every sample of grid against surface.
func EvaluateResiduals(surface *Surface, grid *SampleGrid) ResidualGrid {
	residuals := make(ResidualGrid, len(grid.Points))
	for i, row := range grid.Points {
		residuals[i] = make([]float64, len(row))
		for j := range row {
			s := surface.Point(grid.UParams[i], grid.VParams[j])
			residuals[i][j] = vec3.Distance(&s, &row[j])
		}
	}

	return residuals
}

// Max returns the largest residual and its position.
func (this ResidualGrid) Max() (r float64, i, j int) {
	for ii, row := range this {
		for jj, d := range row {
			if d > r {
				r, i, j = d, ii, jj
			}
		}
	}
	return r, i, j
}
