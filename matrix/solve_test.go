// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/borelpade/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-12

// solvers lists every SolveFunc that accepts an n×n system.
var solvers = map[string]matrix.SolveFunc{
	"LU":    matrix.Solve,
	"Gonum": matrix.SolveGonum,
}

func TestLU_ReconstructsPA(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	f, err := matrix.LU(a)
	require.NoError(t, err)

	// (L·U)[i][j] must equal A[Perm[i]][j]
	var i, j, k int
	for i = 0; i < 3; i++ {
		for j = 0; j < 3; j++ {
			var sum float64
			for k = 0; k < 3; k++ {
				l, _ := f.L.At(i, k)
				u, _ := f.U.At(k, j)
				sum += l * u
			}
			want, _ := a.At(f.Perm[i], j)
			assert.InDelta(t, want, sum, tol, "PA[%d][%d]", i, j)
		}
	}
	assert.InDelta(t, -1.0, f.Det(), tol)
}

func TestLU_PivotsZeroLeadingEntry(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{0, 1, 1, 0})
	f, err := matrix.LU(a)
	require.NoError(t, err, "row pivoting must handle a zero leading entry")
	assert.Equal(t, []int{1, 0}, f.Perm)
	assert.Equal(t, -1.0, f.Sign)
	assert.InDelta(t, -1.0, f.Det(), tol)
}

func TestLU_Errors(t *testing.T) {
	_, err := matrix.LU(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.LU(mustDense(t, 2, 3, make([]float64, 6)))
	assert.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.LU(mustDense(t, 2, 2, []float64{1, 2, 0, 0}))
	assert.ErrorIs(t, err, matrix.ErrSingular, "zero pivot column")
}

func TestSolve_AllSolversAgree(t *testing.T) {
	a := mustDense(t, 3, 3, []float64{
		2, 1, 1,
		1, 3, 2,
		1, 0, 0,
	})
	b := []float64{4, 5, 6}
	want := []float64{6, 15, -23}

	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			x, err := solve(a, b, tol)
			require.NoError(t, err)
			assert.InDeltaSlice(t, want, x, 1e-9)

			// the interface path must match the *Dense path
			x2, err := solve(hide{a}, b, tol)
			require.NoError(t, err)
			assert.InDeltaSlice(t, x, x2, 1e-15)
		})
	}
}

func TestSolve_RejectsSingular(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1, 2, 2, 4})
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve(a, []float64{1, 1}, tol)
			assert.ErrorIs(t, err, matrix.ErrSingular)
		})
	}
	_, err := matrix.SolveCramer(a, []float64{1, 1}, tol)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_RejectsTinyDeterminant(t *testing.T) {
	// det = 1e-14: well-posed in exact arithmetic, below a 1e-12 tolerance.
	a := mustDense(t, 2, 2, []float64{1e-7, 0, 0, 1e-7})
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve(a, []float64{1, 1}, 1e-12)
			assert.ErrorIs(t, err, matrix.ErrSingular)

			x, err := solve(a, []float64{1, 1}, 0)
			require.NoError(t, err, "eps=0 only rejects an exact zero")
			assert.InDeltaSlice(t, []float64{1e7, 1e7}, x, 1e-3)
		})
	}
}

func TestSolve_SingularErrorCarriesDeterminant(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{1e-7, 0, 0, 1e-7})
	all := map[string]matrix.SolveFunc{
		"LU":     matrix.Solve,
		"Gonum":  matrix.SolveGonum,
		"Cramer": matrix.SolveCramer,
	}
	for name, solve := range all {
		t.Run(name, func(t *testing.T) {
			_, err := solve(a, []float64{1, 1}, 1e-12)
			var serr *matrix.SingularError
			require.ErrorAs(t, err, &serr)
			assert.ErrorIs(t, err, matrix.ErrSingular)
			assert.InDelta(t, 1e-14, serr.Det, 1e-20)
			assert.Equal(t, 1e-12, serr.Eps)
			assert.Contains(t, err.Error(), "|det|=1e-14")
		})
	}
}

func TestSolve_Validation(t *testing.T) {
	a := mustDense(t, 2, 2, []float64{4, 1, 2, 3})
	for name, solve := range solvers {
		t.Run(name, func(t *testing.T) {
			_, err := solve(a, []float64{1}, tol)
			assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

			_, err = solve(a, []float64{1, math.NaN()}, tol)
			assert.ErrorIs(t, err, matrix.ErrNaNInf)

			_, err = solve(a, []float64{1, 2}, -1)
			assert.ErrorIs(t, err, matrix.ErrBadTolerance)

			_, err = solve(nil, []float64{1, 2}, tol)
			assert.ErrorIs(t, err, matrix.ErrNilMatrix)
		})
	}
}

func TestSolve2_Cramer(t *testing.T) {
	x1, x2, det, err := matrix.Solve2(4, 1, 2, 3, 1, 2, tol)
	require.NoError(t, err)
	assert.Equal(t, 10.0, det)
	assert.InDelta(t, 0.1, x1, tol)
	assert.InDelta(t, 0.6, x2, tol)

	_, _, det, err = matrix.Solve2(3, 3, 3, 3, 1, 1, 0)
	assert.ErrorIs(t, err, matrix.ErrSingular)
	assert.Equal(t, 0.0, det)

	_, _, _, err = matrix.Solve2(1, 0, 0, 1, math.Inf(1), 0, tol)
	assert.ErrorIs(t, err, matrix.ErrNaNInf)

	x, err := matrix.SolveCramer(mustDense(t, 2, 2, []float64{4, 1, 2, 3}), []float64{1, 2}, tol)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.1, 0.6}, x, tol)

	_, err = matrix.SolveCramer(mustDense(t, 1, 1, []float64{1}), []float64{1}, tol)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}
