// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"math"
)

// LUFactors holds P·A = L·U for a square A.
//
//   - L    — unit lower-triangular factor.
//   - U    — upper-triangular factor.
//   - Perm — row permutation: row i of P·A is row Perm[i] of A.
//   - Sign — +1 or −1, the parity of Perm (used by Det).
type LUFactors struct {
	L    *Dense
	U    *Dense
	Perm []int
	Sign float64
}

// LU computes a Doolittle factorisation of m with partial (row) pivoting.
//
// Algorithm Outline:
//  1. Copy m into a working buffer w; Perm = identity, Sign = +1.
//  2. For k = 0..n−1:
//     pick p = argmax_{i≥k} |w[i][k]|; a zero maximum means the column is
//     already eliminated ⇒ ErrSingular.
//     swap rows p and k (flip Sign), then for i>k:
//     w[i][k] /= w[k][k]; w[i][j] −= w[i][k]·w[k][j] for j>k.
//  3. Split w into unit-lower L and upper U.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare from validation.
//   - ErrSingular on an exactly zero pivot column.
//
// Complexity: O(n³) time, O(n²) memory.
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	if err = ValidateFinite(src.data); err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := src.r
	w := src.RawRowMajor()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, k, p int
		best, v    float64
		pivot      float64
	)
	for k = 0; k < n; k++ {
		// Stage 1: pivot search on column k
		p, best = k, math.Abs(w[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(w[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, ErrSingular)
		}

		// Stage 2: row swap
		if p != k {
			for j = 0; j < n; j++ {
				w[k*n+j], w[p*n+j] = w[p*n+j], w[k*n+j]
			}
			perm[k], perm[p] = perm[p], perm[k]
			sign = -sign
		}

		// Stage 3: eliminate below the pivot
		pivot = w[k*n+k]
		for i = k + 1; i < n; i++ {
			w[i*n+k] /= pivot
			for j = k + 1; j < n; j++ {
				w[i*n+j] -= w[i*n+k] * w[k*n+j]
			}
		}
	}

	L, _ := NewDense(n, n)
	U, _ := NewDense(n, n)
	for i = 0; i < n; i++ {
		L.data[i*n+i] = 1.0
		for j = 0; j < n; j++ {
			if j < i {
				L.data[i*n+j] = w[i*n+j]
			} else {
				U.data[i*n+j] = w[i*n+j]
			}
		}
	}

	return &LUFactors{L: L, U: U, Perm: perm, Sign: sign}, nil
}

// Det returns det(A) = Sign · Π U[i][i].
// Complexity: O(n).
func (f *LUFactors) Det() float64 {
	n := f.U.r
	det := f.Sign
	for i := 0; i < n; i++ {
		det *= f.U.data[i*n+i]
	}

	return det
}

// SolveVec solves A·x = b using the stored factors.
// Stage 1: forward substitution L·y = P·b.
// Stage 2: backward substitution U·x = y.
// Returns ErrDimensionMismatch if len(b) != n and ErrSingular on a zero pivot.
// Complexity: O(n²).
func (f *LUFactors) SolveVec(b []float64) ([]float64, error) {
	n := f.U.r
	if len(b) != n {
		return nil, matrixErrorf(opSolve, ErrDimensionMismatch)
	}

	var (
		i, k  int
		sum   float64
		pivot float64
		y     = make([]float64, n)
		x     = make([]float64, n)
	)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		for k = 0; k < i; k++ {
			sum += f.L.data[i*n+k] * y[k]
		}
		y[i] = b[f.Perm[i]] - sum
	}
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k = i + 1; k < n; k++ {
			sum += f.U.data[i*n+k] * x[k]
		}
		pivot = f.U.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, matrixErrorf(opSolve, ErrSingular)
		}
		x[i] = (y[i] - sum) / pivot
	}

	return x, nil
}

// Det returns det(m) through LU. An exactly zero pivot column yields 0, nil.
func Det(m Matrix) (float64, error) {
	f, err := LU(m)
	if errors.Is(err, ErrSingular) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return f.Det(), nil
}
