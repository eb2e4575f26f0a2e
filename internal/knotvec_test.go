package internal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClamped(t *testing.T) {
	got := Clamped([]float64{0, 0.5, 1}, 3)
	diff(t, KnotVec{0, 0, 0, 0, 0.5, 1, 1, 1, 1}, got)
}

func TestPeriodic(t *testing.T) {
	// breaks 0, 1, 2, 3, 4 with period 4
	got := Periodic([]float64{0, 1, 2, 3, 4}, 3)
	diff(t, KnotVec{-3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7}, got)

	// non-uniform breaks repeat their spacing
	got = Periodic([]float64{0, 1, 3, 6}, 3)
	diff(t, KnotVec{-6, -5, -3, 0, 1, 3, 6, 7, 9, 12}, got)
}

func TestSpan(t *testing.T) {
	kv := Clamped([]float64{0, 1, 2, 3}, 3)
	tests := []struct {
		u    float64
		want int
	}{
		{-1, 3},
		{0, 3},
		{0.5, 3},
		{1, 4},
		{2.5, 5},
		{3, 5},
		{4, 5},
	}
	for _, tt := range tests {
		if got := kv.Span(3, tt.u); got != tt.want {
			t.Errorf("Span(%v) = %d, want %d", tt.u, got, tt.want)
		}
	}
}

func TestMultiplicities(t *testing.T) {
	got := Clamped([]float64{0, 0.5, 1}, 3).Multiplicities()
	want := []KnotMultiplicity{{0, 4}, {0.5, 1}, {1, 4}}
	diff(t, want, got)
}

func TestIsIncreasing(t *testing.T) {
	tests := []struct {
		kv   KnotVec
		want bool
	}{
		{KnotVec{0, 1, 2}, true},
		{KnotVec{0, 1, 1}, false},
		{KnotVec{0, 2, 1}, false},
		{KnotVec{0, math.NaN(), 2}, false},
		{KnotVec{0, 1, math.Inf(1)}, false},
	}
	for _, tt := range tests {
		if got := tt.kv.IsIncreasing(); got != tt.want {
			t.Errorf("%v.IsIncreasing() = %t, want %t", tt.kv, got, tt.want)
		}
	}

	if !(KnotVec{0, 0, 1, 1}).IsNonDecreasing() {
		t.Error("clamped knots should be non-decreasing")
	}
}

func TestBasisPartitionOfUnity(t *testing.T) {
	kvs := []KnotVec{
		Clamped([]float64{0, 0.3, 0.5, 1}, 3),
		Periodic([]float64{0, 1, 3, 6}, 3),
	}
	for _, kv := range kvs {
		lo, hi := kv[3], kv[len(kv)-4]
		for i := 0; i <= 20; i++ {
			u := lo + (hi-lo)*float64(i)/20
			span := kv.Span(3, u)
			var sum float64
			for _, b := range kv.Basis(span, u, 3) {
				if b < -1e-12 {
					t.Errorf("negative basis value %g at %g", b, u)
				}
				sum += b
			}
			if math.Abs(sum-1) > 1e-12 {
				t.Errorf("basis sums to %g at %g", sum, u)
			}
		}
	}
}

func TestDerivativeBasis(t *testing.T) {
	kv := Clamped([]float64{0, 0.4, 1}, 3)
	const u = 0.7
	span := kv.Span(3, u)
	ders := kv.DerivativeBasis(span, u, 3, 4)

	diff(t, kv.Basis(span, u, 3), ders[0], cmpopts.EquateApprox(0, 1e-12))

	// derivatives of a partition of unity sum to zero
	for k := 1; k <= 3; k++ {
		var sum float64
		for _, d := range ders[k] {
			sum += d
		}
		if math.Abs(sum) > 1e-9 {
			t.Errorf("derivative %d sums to %g", k, sum)
		}
	}
	diff(t, []float64{0, 0, 0, 0}, ders[4])

	// compare the first derivative against a central difference
	const h = 1e-6
	lo := kv.Basis(span, u-h, 3)
	hi := kv.Basis(span, u+h, 3)
	for r := range lo {
		approx := (hi[r] - lo[r]) / (2 * h)
		if math.Abs(approx-ders[1][r]) > 1e-5 {
			t.Errorf("d/du N[%d] = %g, finite difference %g", r, ders[1][r], approx)
		}
	}
}
