package approx

// SpanFlags records, per segment of one axis, whether every sample in the
// segment is within tolerance.
type SpanFlags struct {
	Good []bool
	Bad  int
}

func newSpanFlags(segments int) SpanFlags {
	good := make([]bool, segments)
	for i := range good {
		good[i] = true
	}
	return SpanFlags{Good: good}
}

// markSpans walks params in ascending order, attributing each to the span
// of kv that contains it, and flags a span bad when bad reports a violation
// for one of its parameters. A parameter on a breakpoint belongs to the span
// above it, as in evaluation; parameters past the last breakpoint belong to
// the last span.
func markSpans(kv KnotVector, params []float64, bad func(i int) bool) SpanFlags {
	flags := newSpanFlags(kv.Segments())
	if len(flags.Good) == 0 {
		return flags
	}

	last := len(flags.Good) - 1
	var span int
	for i, t := range params {
		for span < last && t >= kv[span+1] {
			span++
		}
		if flags.Good[span] && bad(i) {
			flags.Good[span] = false
			flags.Bad++
		}
	}

	return flags
}

// Convergence is the outcome of checking a fitted surface against the
// tolerance.
type Convergence struct {
	Converged  bool
	UBad, VBad SpanFlags
}

// CheckConvergence flags the knot spans, per axis, that contain a sample
// whose residual exceeds tol. An Infeasible axis is interpolated and
// contributes no bad spans.
func CheckConvergence(uSeg, vSeg SegmentCount, uKnots, vKnots KnotVector, grid *SampleGrid, residuals ResidualGrid, tol float64) Convergence {
	var c Convergence

	if uSeg.IsFeasible() {
		c.UBad = markSpans(uKnots, grid.UParams, func(i int) bool {
			for _, r := range residuals[i] {
				if r > tol {
					return true
				}
			}
			return false
		})
	}

	if vSeg.IsFeasible() {
		c.VBad = markSpans(vKnots, grid.VParams, func(j int) bool {
			for i := range residuals {
				if residuals[i][j] > tol {
					return true
				}
			}
			return false
		})
	}

	c.Converged = c.UBad.Bad == 0 && c.VBad.Bad == 0
	return c
}

// GrowSegments adds one segment per bad span. It returns Infeasible when the
// axis would reach the point where fitting turns into interpolation, so the
// caller keeps the previous segments and knots for that axis.
func GrowSegments(seg SegmentCount, bad int, closed bool, nPoints int) SegmentCount {
	n, ok := seg.Get()
	if !ok {
		return Infeasible
	}

	candidate := n + bad
	if candidate >= MaxSegmentNumber(nPoints, closed, Degree) {
		return Infeasible
	}
	return Feasible(candidate)
}
