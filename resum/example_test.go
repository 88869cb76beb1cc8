// SPDX-License-Identifier: MIT

package resum_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/borelpade/resum"
)

// ExampleEstimate predicts C6 of the QED anomalous-magnetic-moment series
// from C1..C5.
func ExampleEstimate() {
	c := []float64{0.5, -0.328478965, 1.181241456, -1.912245764, 6.8}
	c6, err := resum.Estimate(c)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("C6 ≈ %.4f\n", c6)
	// Output:
	// C6 ≈ -20.8813
}

// ExampleEstimate_illConditioned shows the typed failure for a degenerate series.
func ExampleEstimate_illConditioned() {
	_, err := resum.Estimate([]float64{1, 4, 12, 48, 600})

	var cerr *resum.ConditionError
	fmt.Println(errors.Is(err, resum.ErrIllConditionedSeries), errors.As(err, &cerr), cerr.Order)
	// Output:
	// true true [2/2]
}

// ExampleSigned applies the alternating-sign convention outside the estimator.
func ExampleSigned() {
	c6, _ := resum.Estimate([]float64{0.5, -0.328478965, 1.181241456, -1.912245764, 6.8})
	flipped, _ := resum.Signed(c6, -1)
	fmt.Printf("%.4f\n", flipped)
	// Output:
	// 20.8813
}
