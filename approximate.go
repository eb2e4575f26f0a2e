package approx

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// Status tells how an approximation ended.
type Status int

const (
	// StatusConverged means every sample is within the tolerance of a
	// fitted surface.
	StatusConverged Status = iota

	// StatusInterpolated means the tolerance could not be met within the
	// segment bounds, so the surface interpolates every sample instead.
	StatusInterpolated
)

func (this Status) String() string {
	switch this {
	case StatusConverged:
		return "converged"
	case StatusInterpolated:
		return "interpolated"
	}
	return fmt.Sprintf("Status(%d)", int(this))
}

// Round records one fit/evaluate round.
type Round struct {
	USegments, VSegments SegmentCount
	UBad, VBad           int
	MaxResidual          float64
}

// Result is the outcome of Approximate.
type Result struct {
	Surface *Surface
	Status  Status

	// Iterations counts the fit/evaluate rounds of the refinement loop. The
	// interpolation fallback is not counted.
	Iterations int

	// USegments and VSegments are the fitted segment counts per axis,
	// Infeasible for an interpolated axis.
	USegments, VSegments SegmentCount

	// MaxResidual is the largest distance from a sample to Surface.
	MaxResidual float64

	// Rounds holds the state of every round in order.
	Rounds []Round
}

// Approximate builds a bicubic B-spline surface whose distance to every
// sample of grid is at most tol, using as few segments as it can find. It
// starts from segment counts estimated on a few cross-sections, then splits
// only the knot spans that hold samples out of tolerance until the surface
// converges. When no axis can be refined further the surface through every
// sample is returned with StatusInterpolated; that is not an error.
//
// **params**
// + context, checked before each round; cancellation aborts with its error
// + the samples, never modified
// + finite positive distance tolerance
//
// **returns**
// + the result, or an error for an invalid tolerance, a misbehaving fitter
// or a cancelled context
func Approximate(ctx context.Context, grid *SampleGrid, tol float64, opts ...Option) (*Result, error) {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTolerance, tol)
	}
	if grid == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalidGrid)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}
	log = log.With(slog.Int("uSamples", grid.USize()), slog.Int("vSamples", grid.VSize()), slog.Float64("tol", tol))

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("approximate: %w", err)
	}

	uSeg, vSeg, err := estimateSegments(grid, tol*o.probeFactor, o.fitter)
	if err != nil {
		return nil, err
	}
	log.Debug("initial segments", slog.String("u", uSeg.String()), slog.String("v", vSeg.String()))

	res := &Result{}
	if !uSeg.IsFeasible() && !vSeg.IsFeasible() {
		log.Warn("both axes too small to fit, interpolating")
		return interpolateGrid(ctx, grid, o.fitter, res, log)
	}

	uKnots := axisKnots(grid.UDomain, uSeg)
	vKnots := axisKnots(grid.VDomain, vSeg)

	for res.Iterations < o.maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("approximate round %d: %w", res.Iterations+1, err)
		}
		res.Iterations++

		srf, err := AssembleSurface(grid, uSeg, vSeg, uKnots, vKnots, o.fitter)
		if err != nil {
			return nil, fmt.Errorf("approximate round %d: %w", res.Iterations, err)
		}

		residuals := EvaluateResiduals(srf, grid)
		maxRes, _, _ := residuals.Max()
		conv := CheckConvergence(uSeg, vSeg, uKnots, vKnots, grid, residuals, tol)
		res.Rounds = append(res.Rounds, Round{
			USegments:   uSeg,
			VSegments:   vSeg,
			UBad:        conv.UBad.Bad,
			VBad:        conv.VBad.Bad,
			MaxResidual: maxRes,
		})
		log.Debug("round",
			slog.Int("round", res.Iterations),
			slog.String("uSegments", uSeg.String()),
			slog.String("vSegments", vSeg.String()),
			slog.Int("uBad", conv.UBad.Bad),
			slog.Int("vBad", conv.VBad.Bad),
			slog.Float64("maxResidual", maxRes))

		if conv.Converged {
			res.Surface = srf
			res.Status = StatusConverged
			res.USegments, res.VSegments = uSeg, vSeg
			res.MaxResidual = maxRes
			log.Info("approximation converged",
				slog.Int("rounds", res.Iterations),
				slog.String("uSegments", uSeg.String()),
				slog.String("vSegments", vSeg.String()),
				slog.Float64("maxResidual", maxRes))
			return res, nil
		}

		grew := false
		if conv.UBad.Bad > 0 {
			if next := GrowSegments(uSeg, conv.UBad.Bad, grid.UClosed, grid.USize()); next.IsFeasible() {
				uSeg, uKnots = next, uKnots.Refine(conv.UBad)
				grew = true
			}
		}
		if conv.VBad.Bad > 0 {
			if next := GrowSegments(vSeg, conv.VBad.Bad, grid.VClosed, grid.VSize()); next.IsFeasible() {
				vSeg, vKnots = next, vKnots.Refine(conv.VBad)
				grew = true
			}
		}
		if !grew {
			log.Warn("tolerance not reachable within segment bounds, interpolating",
				slog.Int("rounds", res.Iterations), slog.Float64("maxResidual", maxRes))
			return interpolateGrid(ctx, grid, o.fitter, res, log)
		}
	}

	log.Warn("iteration cap reached, interpolating", slog.Int("maxIterations", o.maxIterations))
	return interpolateGrid(ctx, grid, o.fitter, res, log)
}

func axisKnots(domain func() (float64, float64), seg SegmentCount) KnotVector {
	start, end := domain()
	return Uniform(start, end, seg)
}

// interpolateGrid finishes res with the surface through every sample.
func interpolateGrid(ctx context.Context, grid *SampleGrid, fitter CurveFitter, res *Result, log *slog.Logger) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("approximate interpolation: %w", err)
	}

	srf, err := AssembleSurface(grid, Infeasible, Infeasible, nil, nil, fitter)
	if err != nil {
		return nil, fmt.Errorf("approximate interpolation: %w", err)
	}

	res.Surface = srf
	res.Status = StatusInterpolated
	res.USegments, res.VSegments = Infeasible, Infeasible
	res.MaxResidual, _, _ = EvaluateResiduals(srf, grid).Max()
	log.Info("approximation interpolated",
		slog.Int("rounds", res.Iterations),
		slog.Int("uSegments", srf.USegments()),
		slog.Int("vSegments", srf.VSegments()),
		slog.Float64("maxResidual", res.MaxResidual))

	return res, nil
}
