// SPDX-License-Identifier: MIT

package pade

import (
	"fmt"

	"github.com/katalvlaran/borelpade/matrix"
	"github.com/katalvlaran/borelpade/series"
)

const opFit = "pade.Fit"

// Fit computes the [L/M] Padé approximant of the series a_0 + a_1 t + …
// from its leading L+M+1 coefficients.
//
// Algorithm Outline:
//  1. Denominator: for k = L+1..L+M solve
//     Σ_{i=1..M} a_{k−i} q_i = −a_k        (a_j = 0 for j < 0)
//     i.e. the Toeplitz system with first column a_L..a_{L+M−1} and first
//     row a_L, a_{L−1}, …, a_{L−M+1}.
//  2. Numerator: p_j = Σ_{i=0..min(j,M)} q_i a_{j−i}, j = 0..L, q_0 = 1.
//
// For [2/2] the system is
//
//	[a2 a1] [q1]   [−a3]
//	[a3 a2] [q2] = [−a4]
//
// A nil solve defaults to matrix.Solve.
//
// Errors:
//   - ErrBadOrder / series.ErrTooShort / series.ErrNonFinite (all series.ErrInvalidInput).
//   - matrix.ErrSingular when the denominator system fails the eps rule.
//
// Complexity: O(M³ + L·M).
func Fit(a []float64, ord Order, solve matrix.SolveFunc, eps float64) (*Approximant, error) {
	if err := ord.Validate(); err != nil {
		return nil, err
	}
	if err := series.Validate(a, ord.Terms()); err != nil {
		return nil, fmt.Errorf("%s%s: %w", opFit, ord, err)
	}
	if solve == nil {
		solve = matrix.Solve
	}

	sys, rhs, err := System(a, ord)
	if err != nil {
		return nil, fmt.Errorf("%s%s: %w", opFit, ord, err)
	}

	qs, err := solve(sys, rhs, eps)
	if err != nil {
		return nil, fmt.Errorf("%s%s: %w", opFit, ord, err)
	}
	det, err := matrix.Det(sys)
	if err != nil {
		return nil, fmt.Errorf("%s%s: %w", opFit, ord, err)
	}

	L, M := ord.L, ord.M
	q := make([]float64, M+1)
	q[0] = 1
	copy(q[1:], qs)

	p := make([]float64, L+1)
	for j := 0; j <= L; j++ {
		for i := 0; i <= j && i <= M; i++ {
			p[j] += q[i] * a[j-i]
		}
	}

	return &Approximant{Order: ord, P: p, Q: q, Det: det}, nil
}

// System returns the M×M Toeplitz matrix and right-hand side whose solution
// is q_1..q_M for the [L/M] approximant of a. It only reads a_0..a_{L+M};
// len(a) < ord.Terms() yields series.ErrTooShort.
func System(a []float64, ord Order) (*matrix.Dense, []float64, error) {
	if err := ord.Validate(); err != nil {
		return nil, nil, err
	}
	if len(a) < ord.Terms() {
		return nil, nil, series.ErrTooShort
	}

	at := func(j int) float64 {
		if j < 0 {
			return 0
		}

		return a[j]
	}

	L, M := ord.L, ord.M
	col := make([]float64, M)
	row := make([]float64, M)
	rhs := make([]float64, M)
	for r := 0; r < M; r++ {
		col[r] = at(L + r)
		row[r] = at(L - r)
		rhs[r] = -at(L + 1 + r)
	}
	sys, err := matrix.Toeplitz(col, row)
	if err != nil {
		return nil, nil, err
	}

	return sys, rhs, nil
}
