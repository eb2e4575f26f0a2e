package approx

// binomial returns the binomial coefficient n choose k.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}

	if k > n-k {
		k = n - k // optimization
	}

	r := 1.0
	for d := 1; d <= k; d++ {
		r *= float64(n) / float64(d)
		n--
	}

	return r
}

// bernstein returns the degree+1 Bernstein polynomials of the given degree
// at s in [0, 1].
func bernstein(degree int, s float64) []float64 {
	b := make([]float64, degree+1)
	for k := range b {
		b[k] = binomial(degree, k) * powi(s, k) * powi(1-s, degree-k)
	}
	return b
}

func powi(x float64, n int) float64 {
	r := 1.0
	for ; n > 0; n-- {
		r *= x
	}
	return r
}
