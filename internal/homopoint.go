package internal

import "github.com/ungerik/go3d/float64/vec3"

// HomoPoint is a control point in homogeneous form (w*p, w).
type HomoPoint struct {
	Vec3 vec3.T
	W    float64
}

func (this *HomoPoint) Add(pt *HomoPoint) *HomoPoint {
	this.Vec3.Add(&pt.Vec3)
	this.W += pt.W

	return this
}

func (this *HomoPoint) Scale(scale float64) *HomoPoint {
	this.Vec3.Scale(scale)
	this.W *= scale

	return this
}

func (this HomoPoint) Scaled(scale float64) HomoPoint {
	return HomoPoint{this.Vec3.Scaled(scale), this.W * scale}
}

func Homogenized(pt vec3.T, w float64) HomoPoint {
	return HomoPoint{pt.Scaled(w), w}
}

func (this *HomoPoint) Dehomogenized() vec3.T {
	return this.Vec3.Scaled(1 / this.W)
}

// Homogenize2d pairs every control point with its weight. A nil weights
// slice means every weight is 1.
//
// **returns**
// + control net where each point is (wi*pi, wi)
func Homogenize2d(pts [][]vec3.T, weights [][]float64) [][]HomoPoint {
	homoPts := make([][]HomoPoint, len(pts))
	for i, row := range pts {
		homoPts[i] = make([]HomoPoint, len(row))
		for j, pt := range row {
			w := 1.0
			if weights != nil {
				w = weights[i][j]
			}
			homoPts[i][j] = Homogenized(pt, w)
		}
	}

	return homoPts
}

// Dehomogenize a 2d array of pts
//
// **returns**
// + control net with the weights divided out
func Dehomogenize2d(homoPoints [][]HomoPoint) [][]vec3.T {
	result := make([][]vec3.T, len(homoPoints))
	for i, row := range homoPoints {
		result[i] = make([]vec3.T, len(row))
		for j := range row {
			result[i][j] = row[j].Dehomogenized()
		}
	}

	return result
}

// Weight2d extracts the weights of a homogeneous control net.
func Weight2d(homoPoints [][]HomoPoint) (weights [][]float64) {
	weights = make([][]float64, len(homoPoints))
	for i, row := range homoPoints {
		weights[i] = make([]float64, len(row))
		for j := range row {
			weights[i][j] = row[j].W
		}
	}

	return
}
