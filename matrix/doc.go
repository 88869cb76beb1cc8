// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernels used to fit
// rational approximants: a row-major Dense type, LU factorisation with
// partial pivoting, and three interchangeable solvers for square systems.
//
// 🚀 What lives here?
//
//   - Dense        — flat row-major storage behind the Matrix interface.
//   - Toeplitz     — constant-diagonal builder for Padé denominator systems.
//   - LU / Det     — Doolittle factorisation with row pivoting.
//   - Solve        — LU + forward/backward substitution.
//   - Solve2       — Cramer's rule for 2×2 systems.
//   - SolveGonum   — the same contract backed by gonum.org/v1/gonum/mat.
//
// ⚙️ Numeric policy:
//
//	All three solvers reject a system when |det(A)| < eps (or a pivot is
//	exactly zero) with ErrSingular, so callers can switch implementations
//	without changing what "ill-conditioned" means.
//
// Usage:
//
//	a, _ := matrix.NewDenseFrom(2, 2, []float64{4, 1, 2, 3})
//	x, err := matrix.Solve(a, []float64{1, 2}, 1e-12)
//	if errors.Is(err, matrix.ErrSingular) {
//		// the system has no stable solution
//	}
//
// Complexity:
//
//   - LU/Solve/SolveGonum: O(n³) time, O(n²) memory.
//   - Solve2: O(1).
package matrix
