package internal

// Basis computes the degree+1 non-vanishing basis functions at u for the
// knot span knotSpanIndex
// (corresponds to algorithm 2.2 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **params**
// + integer knot span index, as returned by Span
// + float parameter
// + integer degree of function
//
// **returns**
// + values of N[knotSpanIndex-degree] ... N[knotSpanIndex] at u
//
func (this KnotVec) Basis(knotSpanIndex int, u float64, degree int) []float64 {
	basis := make([]float64, degree+1)
	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	basis[0] = 1

	for j := 1; j <= degree; j++ {
		left[j] = u - this[knotSpanIndex+1-j]
		right[j] = this[knotSpanIndex+j] - u
		var saved float64

		for r := 0; r < j; r++ {
			temp := basis[r] / (right[r+1] + left[j-r])
			basis[r] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}

		basis[j] = saved
	}

	return basis
}

// DerivativeBasis computes the non-vanishing basis functions and their
// derivatives up to numDerivs at u
// (corresponds to algorithm 2.3 from The NURBS book, Piegl & Tiller 2nd edition)
//
// **returns**
// + (numDerivs+1) x (degree+1) values; row k holds the k-th derivatives.
// Rows above degree are zero.
func (this KnotVec) DerivativeBasis(knotSpanIndex int, u float64, degree, numDerivs int) [][]float64 {
	p := degree
	ndu := zeros2d(p+1, p+1)

	left := make([]float64, p+1)
	right := make([]float64, p+1)

	ndu[0][0] = 1

	for j := 1; j <= p; j++ {
		left[j] = u - this[knotSpanIndex+1-j]
		right[j] = this[knotSpanIndex+j] - u
		var saved float64

		for r := 0; r < j; r++ {
			// lower triangle holds knot differences
			ndu[j][r] = right[r+1] + left[j-r]
			temp := ndu[r][j-1] / ndu[j][r]

			ndu[r][j] = saved + right[r+1]*temp
			saved = left[j-r] * temp
		}
		ndu[j][j] = saved
	}

	ders := zeros2d(numDerivs+1, p+1)
	for j := 0; j <= p; j++ {
		ders[0][j] = ndu[j][p]
	}

	top := numDerivs
	if top > p {
		top = p
	}

	a := zeros2d(2, p+1)
	var j1, j2 int

	for r := 0; r <= p; r++ {
		s1, s2 := 0, 1
		a[0][0] = 1

		for k := 1; k <= top; k++ {
			var d float64
			rk := r - k
			pk := p - k

			if r >= k {
				a[s2][0] = a[s1][0] / ndu[pk+1][rk]
				d = a[s2][0] * ndu[rk][pk]
			}

			if rk >= -1 {
				j1 = 1
			} else {
				j1 = -rk
			}

			if r-1 <= pk {
				j2 = k - 1
			} else {
				j2 = p - r
			}

			for j := j1; j <= j2; j++ {
				a[s2][j] = (a[s1][j] - a[s1][j-1]) / ndu[pk+1][rk+j]
				d += a[s2][j] * ndu[rk+j][pk]
			}

			if r <= pk {
				a[s2][k] = -a[s1][k-1] / ndu[pk+1][r]
				d += a[s2][k] * ndu[r][pk]
			}

			ders[k][r] = d

			s1, s2 = s2, s1
		}
	}

	acc := p
	for k := 1; k <= top; k++ {
		for j := 0; j <= p; j++ {
			ders[k][j] *= float64(acc)
		}
		acc *= p - k
	}

	return ders
}

func zeros2d(n, m int) [][]float64 {
	result := make([][]float64, n)
	for i := range result {
		result[i] = make([]float64, m)
	}

	return result
}
