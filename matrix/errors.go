// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (optionally wrapped with an op tag) and
// tests check them via errors.Is. No kernel panics on user-triggered input.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX) so the
// surfaced message reads "<Op>: matrix: ...".
var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0),
	// or when a flat backing slice does not hold exactly r*c values.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a right-hand side whose length differs from the matrix order.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a system is singular or numerically unstable:
	// a zero pivot was met, or |det| fell below the caller's tolerance.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrBadTolerance is returned when a negative or non-finite eps is supplied.
	ErrBadTolerance = errors.New("matrix: tolerance must be finite and >= 0")
)

// SingularError reports a system rejected by the |det| < eps rule, or by
// gonum's condition-number check, together with the determinant the solver
// computed. It matches errors.Is(err, ErrSingular).
type SingularError struct {
	Op   string  // solver op tag
	Det  float64 // determinant as computed by the rejecting solver
	Eps  float64 // tolerance in force
	Cond float64 // gonum condition number, 0 unless that check fired
}

// Error implements error.
func (e *SingularError) Error() string {
	if e.Cond != 0 {
		return fmt.Sprintf("%s: condition number %g: %v", e.Op, e.Cond, ErrSingular)
	}

	return fmt.Sprintf("%s: |det|=%g < eps=%g: %v", e.Op, math.Abs(e.Det), e.Eps, ErrSingular)
}

// Unwrap returns ErrSingular.
func (e *SingularError) Unwrap() error { return ErrSingular }
