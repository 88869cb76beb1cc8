// SPDX-License-Identifier: MIT

package resum

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/borelpade/pade"
	"github.com/katalvlaran/borelpade/series"
)

var (
	// ErrIllConditionedSeries indicates that the Padé denominator system is
	// singular or fails the |det| < eps rule. The estimate must not be trusted.
	ErrIllConditionedSeries = errors.New("resum: ill-conditioned series")

	// ErrInvalidInput is the input-validation class (too few or non-finite
	// coefficients, bad options, bad sign). It is distinct from
	// ErrIllConditionedSeries.
	ErrInvalidInput = series.ErrInvalidInput

	// ErrInvalidSign indicates a sign convention other than +1 or −1.
	ErrInvalidSign = fmt.Errorf("%w: sign must be +1 or -1", ErrInvalidInput)

	// ErrSolverOrder indicates a solver that cannot handle the chosen order
	// (Cramer's rule needs M = 2).
	ErrSolverOrder = fmt.Errorf("%w: solver does not support this order", ErrInvalidInput)

	// ErrNonFiniteResult indicates that the extrapolated coefficient overflowed
	// float64 although the fit itself was well conditioned. It is neither an
	// input error nor ErrIllConditionedSeries.
	ErrNonFiniteResult = errors.New("resum: extrapolated coefficient is not finite")
)

// ConditionError carries the details of an ill-conditioned fit.
// It matches errors.Is(err, ErrIllConditionedSeries) and, when present,
// the underlying cause (e.g. matrix.ErrSingular).
type ConditionError struct {
	Order pade.Order // approximant order that was attempted
	Det   float64    // determinant of the denominator system
	Eps   float64    // tolerance that rejected it
	Err   error      // underlying cause, may be nil
}

// Error implements error.
func (e *ConditionError) Error() string {
	msg := fmt.Sprintf("%s: order %s, |det|=%g, eps=%g", ErrIllConditionedSeries, e.Order, math.Abs(e.Det), e.Eps)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

// Unwrap exposes both the sentinel and the cause to errors.Is / errors.As.
func (e *ConditionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIllConditionedSeries}
	}

	return []error{ErrIllConditionedSeries, e.Err}
}
