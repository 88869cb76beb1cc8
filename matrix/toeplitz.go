// SPDX-License-Identifier: MIT

package matrix

// Toeplitz builds the len(col)×len(row) matrix T with constant diagonals:
//
//	T[i][j] = col[i−j]  for i ≥ j
//	T[i][j] = row[j−i]  for i < j
//
// col[0] and row[0] must agree (both name T[0][0]); otherwise
// ErrDimensionMismatch is returned. Values must be finite.
//
// Complexity: O(len(col)·len(row)).
func Toeplitz(col, row []float64) (*Dense, error) {
	if len(col) == 0 || len(row) == 0 {
		return nil, matrixErrorf(opToeplitz, ErrBadShape)
	}
	if col[0] != row[0] {
		return nil, matrixErrorf(opToeplitz, ErrDimensionMismatch)
	}
	if err := ValidateFinite(col); err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}
	if err := ValidateFinite(row); err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}

	r, c := len(col), len(row)
	t, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if i >= j {
				t.data[i*c+j] = col[i-j]
			} else {
				t.data[i*c+j] = row[j-i]
			}
		}
	}

	return t, nil
}
