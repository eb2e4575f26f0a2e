package internal

import (
	"math"
)

// Epsilon is the parametric resolution used to compare knot values.
const Epsilon = 1e-10

type KnotVec []float64

func (this KnotVec) Clone() KnotVec {
	return append(KnotVec(nil), this...)
}

func (this KnotVec) Domain() float64 {
	return this[len(this)-1] - this[0]
}

// Clamped expands breakpoints b0 < b1 < ... < bn into a knot vector whose end
// knots are repeated degree+1 times. The resulting curve has
// len(breaks)-1+degree basis functions.
func Clamped(breaks []float64, degree int) KnotVec {
	knots := make(KnotVec, 0, len(breaks)+2*degree)
	for i := 0; i < degree; i++ {
		knots = append(knots, breaks[0])
	}
	knots = append(knots, breaks...)
	for i := 0; i < degree; i++ {
		knots = append(knots, breaks[len(breaks)-1])
	}

	return knots
}

// Periodic expands breakpoints b0 < ... < bn, where bn closes the loop, into
// the knot vector of a periodic spline: degree extra knots are copied from the
// far end on each side, shifted by the period bn-b0. The domain of the result
// is [knots[degree], knots[len-degree-1]] = [b0, bn], and basis function j
// belongs to unique control point j mod n.
func Periodic(breaks []float64, degree int) KnotVec {
	n := len(breaks) - 1
	period := breaks[n] - breaks[0]

	// b(k) is breakpoint k extended periodically to any integer k
	b := func(k int) float64 {
		q := k / n
		r := k % n
		if r < 0 {
			r += n
			q--
		}
		return breaks[r] + float64(q)*period
	}

	knots := make(KnotVec, 0, n+1+2*degree)
	for k := -degree; k <= n+degree; k++ {
		knots = append(knots, b(k))
	}

	return knots
}

// Find the span on the knot Array without supplying n
//
// **params**
// + integer degree of function
// + float parameter
//
// **returns**
// + the index of the knot span
//
func (this KnotVec) Span(degree int, u float64) int {
	m := len(this) - 1
	n := m - degree - 1

	return this.SpanGivenN(n, degree, u)
}

// Find the span on the knot Array knots of the given parameter
// (corresponds to algorithm 2.1 from The NURBS book, Piegl & Tiller 2nd edition)
//
// Parameters outside the domain are attributed to the first or last span.
//
// **params**
// + integer number of basis functions - 1 = knots.length - degree - 2
// + integer degree of function
// + parameter
//
// **returns**
// + the index of the knot span
//
func (this KnotVec) SpanGivenN(n int, degree int, u float64) int {
	if u >= this[n+1] {
		// the last non-empty span, so the upper domain end evaluates inside it
		span := n
		for span > degree && this[span] >= this[n+1] {
			span--
		}
		return span
	}

	if u < this[degree] {
		return degree
	}

	low, high := degree, n+1
	mid := (low + high) / 2

	for u < this[mid] || u >= this[mid+1] {
		if u < this[mid] {
			high = mid
		} else {
			low = mid
		}

		mid = (low + high) / 2
	}

	return mid
}

//
// Determine the multiplicities of the values in a knot vector
//
// **returns**
// + slice of (knot value, multiplicity) pairs in knot order
//
func (this KnotVec) Multiplicities() []KnotMultiplicity {
	mults := []KnotMultiplicity{{this[0], 0}}

	var currI int
	for _, knot := range this {
		if math.Abs(knot-mults[currI].Knot) > Epsilon {
			mults = append(mults, KnotMultiplicity{knot, 0})
			currI++
		}

		mults[currI].Mult++
	}

	return mults
}

func (this KnotVec) IsNonDecreasing() bool {
	rep := this[0]
	for _, knot := range this[1:] {
		if knot < rep-Epsilon {
			return false
		}
		rep = knot
	}
	return true
}

// IsIncreasing reports whether every knot is strictly greater than the
// previous one and all knots are finite.
func (this KnotVec) IsIncreasing() bool {
	for i, knot := range this {
		if math.IsNaN(knot) || math.IsInf(knot, 0) {
			return false
		}
		if i > 0 && knot <= this[i-1] {
			return false
		}
	}
	return true
}

type KnotMultiplicity struct {
	Knot float64
	Mult int
}
