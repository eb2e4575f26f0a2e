package approx

import (
	"testing"

	"github.com/ungerik/go3d/float64/vec3"
)

func TestMarkSpans(t *testing.T) {
	kv := KnotVector{0, 1, 2, 3}
	params := []float64{0, 0.5, 1, 1.5, 2, 3}

	// a parameter on a breakpoint belongs to the span above; the domain end
	// belongs to the last span
	var checked []int
	flags := markSpans(kv, params, func(i int) bool {
		checked = append(checked, i)
		return i == 2 || i == 5
	})
	diff(t, SpanFlags{Good: []bool{true, false, false}, Bad: 2}, flags)

	// once a span is bad its other samples are not checked
	diff(t, []int{0, 1, 2, 4, 5}, checked)

	flags = markSpans(kv, params, func(i int) bool { return i == 3 })
	diff(t, SpanFlags{Good: []bool{true, false, true}, Bad: 1}, flags)
}

func TestCheckConvergence(t *testing.T) {
	grid := funcGrid(t, func(u, v float64) vec3.T { return vec3.T{u, v, 0} },
		[]float64{0, 1, 2}, []float64{0, 1, 2, 3}, false, false)
	uKnots := KnotVector{0, 1, 2}
	vKnots := KnotVector{0, 3}

	residuals := ResidualGrid{
		{0, 0, 0, 0},
		{0, 0.05, 0, 0},
		{0, 0.5, 0, 0},
	}

	c := CheckConvergence(Feasible(2), Feasible(1), uKnots, vKnots, grid, residuals, 0.1)
	want := Convergence{
		Converged: false,
		UBad:      SpanFlags{Good: []bool{true, false}, Bad: 1},
		VBad:      SpanFlags{Good: []bool{false}, Bad: 1},
	}
	diff(t, want, c)

	// an interpolated axis has no spans to blame
	c = CheckConvergence(Feasible(2), Infeasible, uKnots, nil, grid, residuals, 0.1)
	diff(t, Convergence{UBad: SpanFlags{Good: []bool{true, false}, Bad: 1}}, c)

	c = CheckConvergence(Feasible(2), Feasible(1), uKnots, vKnots, grid, residuals, 1)
	if !c.Converged || c.UBad.Bad != 0 || c.VBad.Bad != 0 {
		t.Errorf("got %+v, want converged", c)
	}

	if r, i, j := residuals.Max(); r != 0.5 || i != 2 || j != 1 {
		t.Errorf("Max() = %v at [%d][%d], want 0.5 at [2][1]", r, i, j)
	}
}

func TestGrowSegments(t *testing.T) {
	tests := []struct {
		seg     SegmentCount
		bad     int
		closed  bool
		nPoints int
		want    SegmentCount
	}{
		{Feasible(2), 3, false, 10, Feasible(5)},
		{Feasible(5), 1, false, 10, Feasible(6)},
		{Feasible(5), 2, false, 10, Infeasible},
		{Feasible(3), 3, true, 10, Feasible(6)},
		{Feasible(8), 2, true, 10, Infeasible},
		{Infeasible, 1, false, 10, Infeasible},
	}
	for _, tt := range tests {
		if got := GrowSegments(tt.seg, tt.bad, tt.closed, tt.nPoints); got != tt.want {
			t.Errorf("GrowSegments(%v, %d, %t, %d) = %v, want %v", tt.seg, tt.bad, tt.closed, tt.nPoints, got, tt.want)
		}
	}
}
