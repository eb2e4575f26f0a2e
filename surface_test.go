package approx

import (
	"testing"

	"github.com/ungerik/go3d/float64/mat4"
	"github.com/ungerik/go3d/float64/vec3"
)

var (
	p1 = vec3.T{0, 0, 0}
	p2 = vec3.T{2, 0, 1}
	p3 = vec3.T{2, 3, 0}
	p4 = vec3.T{0, 3, -1}
)

func bilinearPoint(u, v float64) vec3.T {
	a := vec3.Interpolate(&p1, &p2, u)
	b := vec3.Interpolate(&p4, &p3, u)
	return vec3.Interpolate(&a, &b, v)
}

// bilinearSurface is the bicubic Bézier patch equal to the bilinear patch
// spanned by p1..p4.
func bilinearSurface(t *testing.T, weights [][]float64) *Surface {
	t.Helper()
	net := make([][]vec3.T, 4)
	for i := range net {
		net[i] = make([]vec3.T, 4)
		for j := range net[i] {
			net[i][j] = bilinearPoint(float64(i)/3, float64(j)/3)
		}
	}

	one := KnotData{KnotVector{0, 1}, false}
	srf, err := NewSurface(one, one, net, weights)
	if err != nil {
		t.Fatal(err)
	}
	return srf
}

func constWeights(w float64) [][]float64 {
	weights := make([][]float64, 4)
	for i := range weights {
		weights[i] = []float64{w, w, w, w}
	}
	return weights
}

func TestSurfacePoint(t *testing.T) {
	for _, srf := range []*Surface{bilinearSurface(t, nil), bilinearSurface(t, constWeights(2))} {
		for _, u := range linspace(0, 1, 5) {
			for _, v := range linspace(0, 1, 7) {
				within(t, "point", srf.Point(u, v), bilinearPoint(u, v), 1e-12)
			}
		}
	}
}

func TestSurfaceDerivatives(t *testing.T) {
	su := func(v float64) vec3.T {
		a := vec3.Sub(&p2, &p1)
		b := vec3.Sub(&p3, &p4)
		return vec3.Interpolate(&a, &b, v)
	}
	sv := func(u float64) vec3.T {
		a := vec3.Sub(&p4, &p1)
		b := vec3.Sub(&p3, &p2)
		return vec3.Interpolate(&a, &b, u)
	}
	suv := vec3.T{p1[0] - p2[0] + p3[0] - p4[0], p1[1] - p2[1] + p3[1] - p4[1], p1[2] - p2[2] + p3[2] - p4[2]}

	for _, srf := range []*Surface{bilinearSurface(t, nil), bilinearSurface(t, constWeights(0.5))} {
		const u, v = 0.3, 0.8
		skl := srf.Derivatives(u, v, 2)
		within(t, "S", skl[0][0], bilinearPoint(u, v), 1e-12)
		within(t, "Su", skl[1][0], su(v), 1e-9)
		within(t, "Sv", skl[0][1], sv(u), 1e-9)
		within(t, "Suv", skl[1][1], suv, 1e-9)
		within(t, "Suu", skl[2][0], vec3.Zero, 1e-9)
		within(t, "Svv", skl[0][2], vec3.Zero, 1e-9)

		n := srf.Normal(u, v)
		a, b := su(v), sv(u)
		within(t, "normal", n, vec3.Cross(&a, &b), 1e-9)
	}
}

func TestSurfaceRational(t *testing.T) {
	srf := bilinearSurface(t, nil)
	if srf.IsRational() || srf.Weights() != nil {
		t.Error("polynomial surface reports weights")
	}

	// a heavier weight pulls the surface toward its control point
	weights := constWeights(1)
	weights[1][1] = 5
	rational := bilinearSurface(t, weights)
	if !rational.IsRational() {
		t.Fatal("weighted surface is not rational")
	}
	diff(t, weights, rational.Weights(), approxOpt)
	diff(t, srf.ControlPoints(), rational.ControlPoints(), approxOpt)

	target := srf.ControlPoints()[1][1]
	plain, pulled := srf.Point(1.0/3, 1.0/3), rational.Point(1.0/3, 1.0/3)
	if vec3.Distance(&pulled, &target) >= vec3.Distance(&plain, &target) {
		t.Error("weight did not pull the surface toward its control point")
	}
}

func TestNewSurfaceInvalid(t *testing.T) {
	one := KnotData{KnotVector{0, 1}, false}
	net := bilinearSurface(t, nil).ControlPoints()

	if _, err := NewSurface(KnotData{KnotVector{0}, false}, one, net, nil); err == nil {
		t.Error("surface without segments was accepted")
	}
	if _, err := NewSurface(KnotData{KnotVector{0, 0.5, 1}, false}, one, net, nil); err == nil {
		t.Error("too few rows were accepted")
	}
	if _, err := NewSurface(one, one, net[:3], nil); err == nil {
		t.Error("ragged net was accepted")
	}
	weights := constWeights(1)
	weights[2][3] = 0
	if _, err := NewSurface(one, one, net, weights); err == nil {
		t.Error("zero weight was accepted")
	}
	if _, err := NewSurface(one, one, net, constWeights(1)[:2]); err == nil {
		t.Error("short weights were accepted")
	}
}

func TestSurfaceClosed(t *testing.T) {
	// a ring of 4 control columns, closed along v
	open := KnotData{KnotVector{0, 1}, false}
	closed := KnotData{KnotVector{0, 1, 2, 3, 4}, true}
	net := make([][]vec3.T, 4)
	for i := range net {
		net[i] = []vec3.T{{1, 0, float64(i)}, {0, 1, float64(i)}, {-1, 0, float64(i)}, {0, -1, float64(i)}}
	}
	srf, err := NewSurface(open, closed, net, nil)
	if err != nil {
		t.Fatal(err)
	}
	if srf.USegments() != 1 || srf.VSegments() != 4 {
		t.Errorf("got %dx%d segments, want 1x4", srf.USegments(), srf.VSegments())
	}
	for _, u := range linspace(0, 1, 4) {
		within(t, "seam", srf.Point(u, 4), srf.Point(u, 0), 1e-12)
	}
	if lo, hi := srf.DomainV(); lo != 0 || hi != 4 {
		t.Errorf("DomainV = [%v, %v], want [0, 4]", lo, hi)
	}
}

func TestSurfaceTransform(t *testing.T) {
	srf := bilinearSurface(t, constWeights(3))
	offset := vec3.T{1, -2, 5}
	mat := mat4.Ident
	mat.SetTranslation(&offset)
	moved := srf.Transform(&mat)

	if !moved.IsRational() {
		t.Error("transform dropped the weights")
	}
	const u, v = 0.4, 0.9
	want := srf.Point(u, v)
	want.Add(&offset)
	within(t, "moved", moved.Point(u, v), want, 1e-12)
}

func TestControlBounds(t *testing.T) {
	srf := bilinearSurface(t, nil)
	bb := srf.ControlBounds()
	for _, u := range linspace(0, 1, 9) {
		for _, v := range linspace(0, 1, 9) {
			p := srf.Point(u, v)
			if !bb.Contains(&p, 1e-12) {
				t.Errorf("point %v outside the control bounds %v..%v", p, bb.Min, bb.Max)
			}
		}
	}
	if bb.LongestAxis() != 1 || bb.AxisLength(1) != 3 {
		t.Errorf("longest axis %d with length %v, want 1 with length 3", bb.LongestAxis(), bb.AxisLength(1))
	}

	var empty BoundingBox
	if !empty.IsEmpty() || empty.Diagonal() != 0 || empty.Contains(&vec3.Zero, 1) {
		t.Error("zero BoundingBox is not empty")
	}
}
