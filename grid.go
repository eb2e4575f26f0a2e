package approx

import (
	"fmt"
	"math"

	. "github.com/alexozer/approx/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// SampleGrid is a structured grid of samples to approximate: Points[i][j]
// was sampled at parameters (UParams[i], VParams[j]). A closed axis wraps
// around, so the sample after the last is the first again, reached at the
// axis' period end.
//
// A SampleGrid is never modified by this package and may be shared between
// concurrent approximations.
type SampleGrid struct {
	Points           [][]vec3.T
	UParams, VParams []float64
	UClosed, VClosed bool

	uPeriodEnd, vPeriodEnd float64
}

// GridOption configures NewSampleGrid.
type GridOption func(*gridOptions)

type gridOptions struct {
	uPeriodEnd, vPeriodEnd *float64
}

// WithUPeriodEnd sets the parameter at which a closed U axis returns to its
// first sample. It must be greater than the last U parameter.
func WithUPeriodEnd(t float64) GridOption {
	return func(o *gridOptions) {
		o.uPeriodEnd = &t
	}
}

// WithVPeriodEnd is WithUPeriodEnd for the V axis.
func WithVPeriodEnd(t float64) GridOption {
	return func(o *gridOptions) {
		o.vPeriodEnd = &t
	}
}

// NewSampleGrid validates its input and builds a grid. points is indexed
// [u][v]. Without an explicit period end, a closed axis is closed after one
// mean parameter spacing past its last sample.
//
// The slices are not copied; the caller must not modify them while the grid
// is in use.
func NewSampleGrid(points [][]vec3.T, uParams, vParams []float64, uClosed, vClosed bool, opts ...GridOption) (*SampleGrid, error) {
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	uN, vN := len(uParams), len(vParams)
	if uN < 2 || vN < 2 {
		return nil, fmt.Errorf("%w: need at least 2 samples per axis, have %dx%d", ErrInvalidGrid, uN, vN)
	}
	if len(points) != uN {
		return nil, fmt.Errorf("%w: %d rows of points for %d u parameters", ErrInvalidGrid, len(points), uN)
	}
	for i, row := range points {
		if len(row) != vN {
			return nil, fmt.Errorf("%w: row %d has %d points, want %d", ErrInvalidGrid, i, len(row), vN)
		}
		for j, pt := range row {
			for _, c := range pt {
				if math.IsNaN(c) || math.IsInf(c, 0) {
					return nil, fmt.Errorf("%w: point [%d][%d] is not finite", ErrInvalidGrid, i, j)
				}
			}
		}
	}
	if !KnotVec(uParams).IsIncreasing() {
		return nil, fmt.Errorf("%w: u parameters are not strictly increasing", ErrInvalidGrid)
	}
	if !KnotVec(vParams).IsIncreasing() {
		return nil, fmt.Errorf("%w: v parameters are not strictly increasing", ErrInvalidGrid)
	}

	uEnd, err := periodEnd(uParams, o.uPeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: u axis: %v", ErrInvalidGrid, err)
	}
	vEnd, err := periodEnd(vParams, o.vPeriodEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: v axis: %v", ErrInvalidGrid, err)
	}

	return &SampleGrid{
		Points:     points,
		UParams:    uParams,
		VParams:    vParams,
		UClosed:    uClosed,
		VClosed:    vClosed,
		uPeriodEnd: uEnd,
		vPeriodEnd: vEnd,
	}, nil
}

func periodEnd(params []float64, explicit *float64) (float64, error) {
	last := params[len(params)-1]
	if explicit == nil {
		return last + (last-params[0])/float64(len(params)-1), nil
	}

	end := *explicit
	if math.IsNaN(end) || math.IsInf(end, 0) || end <= last {
		return 0, fmt.Errorf("period end %v does not follow last parameter %v", end, last)
	}
	return end, nil
}

func (this *SampleGrid) USize() int { return len(this.UParams) }
func (this *SampleGrid) VSize() int { return len(this.VParams) }

// UPeriodEnd is the parameter at which a closed U axis wraps to its first
// sample.
func (this *SampleGrid) UPeriodEnd() float64 { return this.uPeriodEnd }

// VPeriodEnd is the parameter at which a closed V axis wraps to its first
// sample.
func (this *SampleGrid) VPeriodEnd() float64 { return this.vPeriodEnd }

// UDomain is the parameter range a U curve spans: up to the last sample when
// open, up to the period end when closed.
func (this *SampleGrid) UDomain() (min, max float64) {
	return axisDomain(this.UParams, this.UClosed, this.uPeriodEnd)
}

// VDomain is UDomain for the V axis.
func (this *SampleGrid) VDomain() (min, max float64) {
	return axisDomain(this.VParams, this.VClosed, this.vPeriodEnd)
}

func axisDomain(params []float64, closed bool, end float64) (float64, float64) {
	if closed {
		return params[0], end
	}
	return params[0], params[len(params)-1]
}

// row returns the samples with fixed U index i, ordered along V.
func (this *SampleGrid) row(i int) []vec3.T {
	return this.Points[i]
}

// column returns the samples with fixed V index j, ordered along U.
func (this *SampleGrid) column(j int) []vec3.T {
	col := make([]vec3.T, len(this.Points))
	for i, row := range this.Points {
		col[i] = row[j]
	}
	return col
}
