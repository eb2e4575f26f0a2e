package internal

import (
	"errors"
	"fmt"

	"github.com/ungerik/go3d/float64/vec3"
	"gonum.org/v1/gonum/mat"
)

// rankCond is the relative singular value below which a direction of the
// design matrix is treated as absent.
const rankCond = 1e-12

var ErrRankDeficient = errors.New("design matrix has rank zero")

// SolvePoints solves the least-squares system design * X = points, where each
// row of design holds the basis values of one sample and X has one control
// point per column of design. Well-conditioned systems are solved by QR;
// singular or underdetermined ones fall back to the minimum-norm SVD
// solution.
func SolvePoints(design *mat.Dense, points []vec3.T) ([]vec3.T, error) {
	rows, cols := design.Dims()
	if rows != len(points) {
		panic(fmt.Sprintf("design matrix has %d rows for %d points", rows, len(points)))
	}

	rhs := mat.NewDense(rows, 3, nil)
	for i, pt := range points {
		rhs.SetRow(i, pt[:])
	}

	x := mat.NewDense(cols, 3, nil)

	solved := false
	if rows >= cols {
		var qr mat.QR
		qr.Factorize(design)
		solved = qr.SolveTo(x, false, rhs) == nil
	}

	if !solved {
		var svd mat.SVD
		if !svd.Factorize(design, mat.SVDThin) {
			return nil, fmt.Errorf("svd of %dx%d design matrix did not converge", rows, cols)
		}
		rank := svd.Rank(rankCond)
		if rank == 0 {
			return nil, ErrRankDeficient
		}
		x.Zero()
		svd.SolveTo(x, rhs, rank)
	}

	result := make([]vec3.T, cols)
	for i := range result {
		result[i] = vec3.T{x.At(i, 0), x.At(i, 1), x.At(i, 2)}
	}

	return result, nil
}
