// SPDX-License-Identifier: MIT

// Package resum estimates the next coefficient of a perturbative power series
// by Borel–Padé resummation.
//
// 🚀 What does it do?
//
//	Given c_1..c_N of S(x) = Σ c_n x^n (N ≥ 5 for the default [2/2] order):
//	  1. Borel-transform: b_n = c_n / n!.
//	  2. Solve the Toeplitz system for the Padé denominator:
//	       [b3 b2] [q1]   [−b4]
//	       [b4 b3] [q2] = [−b5]
//	  3. Extend the rational recurrence: b_{N+1} = −(q1·b_N + q2·b_{N−1}).
//	  4. Undo the Borel scaling: c_{N+1} = b_{N+1} · (N+1)!.
//	     Steps 3 and 4 run together on c, so N may exceed 170.
//
//	A singular or near-singular system (|det| < eps) is reported as
//	ErrIllConditionedSeries, never as a silent NaN. Too few or non-finite
//	coefficients are reported as ErrInvalidInput. A finite fit whose next
//	term overflows float64 is reported as ErrNonFiniteResult.
//
//	eps is an absolute bound on the determinant. For [L/M] the determinant
//	scales as k^M under c → k·c, so a heavily down-scaled series can fall
//	below the default eps; pass a smaller WithEpsilon for such inputs.
//
// ⚙️ Usage:
//
//	c6, err := resum.Estimate([]float64{0.5, -0.328478965, 1.181241456, -1.912245764, 6.8})
//	switch {
//	case errors.Is(err, resum.ErrIllConditionedSeries):
//		// the Padé fit is not trustworthy
//	case errors.Is(err, resum.ErrInvalidInput):
//		// bad input series
//	}
//
// The estimator never applies a sign convention; alternating-series callers
// use Signed explicitly. Estimator values hold no mutable state and are safe
// for concurrent use.
package resum
