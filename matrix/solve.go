// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// SolveFunc is the common shape of the square solvers in this package.
// Implementations must reject |det(a)| < eps with ErrSingular, as a
// *SingularError whenever the determinant is known. A zero pivot met during
// factorisation surfaces as a plain wrapped ErrSingular (det exactly 0).
type SolveFunc func(a Matrix, b []float64, eps float64) ([]float64, error)

// illConditioned reports whether det fails the |det| < eps rule.
// An exactly zero determinant is always rejected, even with eps == 0.
func illConditioned(det, eps float64) bool {
	return det == 0 || math.Abs(det) < eps || math.IsNaN(det)
}

// singularErrorf tags ErrSingular with the offending determinant.
func singularErrorf(op string, det, eps float64) error {
	return &SingularError{Op: op, Det: det, Eps: eps}
}

// Solve solves the square system a·x = b with the package LU kernel.
//
// Stage 1: validate (square, conformable, finite, eps ≥ 0).
// Stage 2: factorise with partial pivoting.
// Stage 3: reject |det| < eps; substitute.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrNaNInf,
// ErrBadTolerance, ErrSingular (all wrapped with "Solve").
//
// Complexity: O(n³).
func Solve(a Matrix, b []float64, eps float64) ([]float64, error) {
	if err := validateSystem(a, b, eps); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	f, err := LU(a)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if det := f.Det(); illConditioned(det, eps) {
		return nil, singularErrorf(opSolve, det, eps)
	}

	return f.SolveVec(b)
}

// Solve2 solves the 2×2 system
//
//	[a11 a12] [x1]   [b1]
//	[a21 a22] [x2] = [b2]
//
// by Cramer's rule. It returns the determinant alongside the solution so
// callers can report it; |det| < eps yields ErrSingular.
//
// Complexity: O(1).
func Solve2(a11, a12, a21, a22, b1, b2, eps float64) (x1, x2, det float64, err error) {
	if err = ValidateTolerance(eps); err != nil {
		return 0, 0, 0, matrixErrorf(opSolve2, err)
	}
	if err = ValidateFinite([]float64{a11, a12, a21, a22, b1, b2}); err != nil {
		return 0, 0, 0, matrixErrorf(opSolve2, err)
	}

	det = a11*a22 - a12*a21
	if illConditioned(det, eps) {
		return 0, 0, det, singularErrorf(opSolve2, det, eps)
	}
	x1 = (b1*a22 - a12*b2) / det
	x2 = (a11*b2 - b1*a21) / det

	return x1, x2, det, nil
}

// SolveCramer adapts Solve2 to the SolveFunc shape; a must be 2×2.
func SolveCramer(a Matrix, b []float64, eps float64) ([]float64, error) {
	if err := validateSystem(a, b, eps); err != nil {
		return nil, matrixErrorf(opSolve2, err)
	}
	if a.Rows() != 2 {
		return nil, matrixErrorf(opSolve2, ErrBadShape)
	}
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolve2, err)
	}
	x1, x2, _, err := Solve2(d.data[0], d.data[1], d.data[2], d.data[3], b[0], b[1], eps)
	if err != nil {
		return nil, err
	}

	return []float64{x1, x2}, nil
}

// SolveGonum solves a·x = b with gonum's LU (LAPACK-style partial pivoting).
// Same contract as Solve; additionally a mat.Condition error reported by
// gonum (condition number beyond mat.ConditionTolerance) maps to ErrSingular.
//
// Complexity: O(n³).
func SolveGonum(a Matrix, b []float64, eps float64) ([]float64, error) {
	if err := validateSystem(a, b, eps); err != nil {
		return nil, matrixErrorf(opSolveGonum, err)
	}
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolveGonum, err)
	}
	if err = ValidateFinite(d.data); err != nil {
		return nil, matrixErrorf(opSolveGonum, err)
	}

	n := d.r
	var lu mat.LU
	lu.Factorize(mat.NewDense(n, n, d.RawRowMajor()))
	if det := lu.Det(); illConditioned(det, eps) {
		return nil, singularErrorf(opSolveGonum, det, eps)
	}

	rhs := make([]float64, n)
	copy(rhs, b)
	var x mat.VecDense
	if err = lu.SolveVecTo(&x, false, mat.NewVecDense(n, rhs)); err != nil {
		var cond mat.Condition
		if errors.As(err, &cond) {
			return nil, &SingularError{Op: opSolveGonum, Det: lu.Det(), Eps: eps, Cond: float64(cond)}
		}

		return nil, matrixErrorf(opSolveGonum, err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}
