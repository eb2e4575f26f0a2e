package sample_test

import (
	"context"
	"fmt"

	"github.com/alexozer/approx"
	"github.com/alexozer/approx/sample"
)

func ExampleCylinder() {
	grid, err := sample.Cylinder(1, 2, 5, 16)
	if err != nil {
		panic(err)
	}

	const tol = 1e-3
	res, err := approx.Approximate(context.Background(), grid, tol)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.MaxResidual <= tol, res.Surface.VKnots().Closed)
	// Output: true true
}
