package approx

import (
	"fmt"

	. "github.com/alexozer/approx/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// rankedSections is how many cross-sections each waviness ranking keeps.
const rankedSections = 5

// EstimateSegments guesses starting segment counts for both axes without
// fitting every cross-section. Per axis it ranks the cross-sections by two
// waviness scores, fits the top few of each ranking with a loose tolerance
// (a multiple of tol) and keeps the largest segment count seen, bounded to
// [MinSegmentNumber, MaxSegmentNumber]. An axis whose range is empty is
// Infeasible.
func EstimateSegments(grid *SampleGrid, tol float64, fitter CurveFitter) (u, v SegmentCount, err error) {
	return estimateSegments(grid, tol*defaultProbeFactor, fitter)
}

func estimateSegments(grid *SampleGrid, probeTol float64, fitter CurveFitter) (u, v SegmentCount, err error) {
	bounds := grid.Bounds()
	minChord := bounds.Diagonal() * Epsilon

	uSections := make([][]vec3.T, grid.VSize())
	for j := range uSections {
		uSections[j] = grid.column(j)
	}
	u, err = estimateAxis(uSections, grid.UParams, grid.UClosed, grid.uPeriodEnd, probeTol, minChord, fitter)
	if err != nil {
		return Infeasible, Infeasible, fmt.Errorf("estimate u segments: %w", err)
	}

	vSections := make([][]vec3.T, grid.USize())
	for i := range vSections {
		vSections[i] = grid.row(i)
	}
	v, err = estimateAxis(vSections, grid.VParams, grid.VClosed, grid.vPeriodEnd, probeTol, minChord, fitter)
	if err != nil {
		return Infeasible, Infeasible, fmt.Errorf("estimate v segments: %w", err)
	}

	return u, v, nil
}

func estimateAxis(sections [][]vec3.T, params []float64, closed bool, periodEnd, probeTol, minChord float64, fitter CurveFitter) (SegmentCount, error) {
	nPoints := len(params)
	if !clampSegments(0, nPoints, closed).IsFeasible() {
		return Infeasible, nil
	}

	byZigzag := NewTopK[float64, int](rankedSections)
	bySignChanges := NewTopK[int, int](rankedSections)
	for s, pts := range sections {
		zigzag, signChanges := waviness(pts, closed, minChord)
		byZigzag.Offer(zigzag, s)
		bySignChanges.Offer(signChanges, s)
	}

	candidates := make([]int, 0, byZigzag.Len()+bySignChanges.Len())
	seen := make(map[int]bool, byZigzag.Len())
	for _, e := range byZigzag.Entries() {
		candidates = append(candidates, e.Item)
		seen[e.Item] = true
	}
	for _, e := range bySignChanges.Entries() {
		if !seen[e.Item] {
			candidates = append(candidates, e.Item)
		}
	}

	guess := 0
	for _, s := range candidates {
		crv, err := fitter.FitWithTolerance(sections[s], params, closed, periodEnd, probeTol)
		if err != nil {
			return Infeasible, fmt.Errorf("probe section %d: %w", s, err)
		}
		if crv == nil {
			return Infeasible, fmt.Errorf("%w: fitter returned no curve", ErrFitterContract)
		}
		guess = max(guess, crv.NSegments())
	}

	return clampSegments(guess, nPoints, closed), nil
}

// waviness scores a polyline: zigzag sums the magnitudes of the cross
// products of successive unit chords at interior points, signChanges counts
// successive cross products that point in opposing directions. A closed
// polyline is walked cyclically, so every point is interior. Chords no
// longer than minChord count as straight.
func waviness(pts []vec3.T, closed bool, minChord float64) (zigzag float64, signChanges int) {
	n := len(pts)
	if n < 3 && !closed {
		return 0, 0
	}

	nChords := n - 1
	if closed {
		nChords = n
	}
	chords := make([]vec3.T, nChords)
	for k := range chords {
		d := vec3.Sub(&pts[(k+1)%n], &pts[k])
		if l := d.Length(); l > minChord {
			chords[k] = d.Scaled(1 / l)
		}
	}

	var crosses []vec3.T
	if closed {
		crosses = make([]vec3.T, 0, n)
		for k := range chords {
			prev := chords[(k+nChords-1)%nChords]
			crosses = append(crosses, vec3.Cross(&prev, &chords[k]))
		}
	} else {
		crosses = make([]vec3.T, 0, n-2)
		for k := 1; k < nChords; k++ {
			crosses = append(crosses, vec3.Cross(&chords[k-1], &chords[k]))
		}
	}

	for k := range crosses {
		zigzag += crosses[k].Length()
		if k > 0 && vec3.Dot(&crosses[k-1], &crosses[k]) < 0 {
			signChanges++
		}
	}
	if closed && len(crosses) > 1 && vec3.Dot(&crosses[len(crosses)-1], &crosses[0]) < 0 {
		signChanges++
	}

	return zigzag, signChanges
}
