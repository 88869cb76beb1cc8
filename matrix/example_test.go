// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/borelpade/matrix"
)

// ExampleSolve solves a 2×2 system and shows the singular-system error path.
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 1, 2, 3})
	x, err := matrix.Solve(a, []float64{1, 2}, 1e-12)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("x=[%.4f %.4f]\n", x[0], x[1])

	s, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 2, 4})
	_, err = matrix.Solve(s, []float64{1, 1}, 1e-12)
	fmt.Println("singular:", errors.Is(err, matrix.ErrSingular))
	// Output:
	// x=[0.1000 0.6000]
	// singular: true
}

// ExampleToeplitz builds the constant-diagonal matrix of a [2/2] Padé system.
func ExampleToeplitz() {
	t, _ := matrix.Toeplitz([]float64{3, 4}, []float64{3, 2})
	fmt.Print(t)
	// Output:
	// [3 2]
	// [4 3]
}
