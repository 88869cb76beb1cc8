// SPDX-License-Identifier: MIT

// Package pade fits [L/M] Padé approximants
//
//	F(t) ≈ P(t)/Q(t),  P = p_0 + … + p_L t^L,  Q = 1 + q_1 t + … + q_M t^M
//
// to the leading L+M+1 Taylor coefficients of a power series, extends the
// series with the linear recurrence that every rational function obeys past
// its numerator degree, and evaluates the Borel–Laplace integral of the
// approximant.
//
// ✨ Key features:
//   - any order with L ≥ 0, M ≥ 1; DiagonalOrder picks [m/m] for n terms
//   - pluggable square solver (matrix.Solve, matrix.SolveGonum, matrix.SolveCramer)
//   - Extend: d_k = p_k − Σ q_i d_{k−i}, one step past the known terms
//   - BorelSum: ∫₀^∞ e^{−t} · xt · F(xt) dt by Gauss–Legendre quadrature (gonum)
//
// Complexity: Fit is O(M³); Taylor/Extend are O(n·M); BorelSum is O(nodes·(L+M)).
package pade
