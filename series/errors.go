// SPDX-License-Identifier: MIT

package series

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is the class of every input-validation failure in this
	// module, such as too few terms or a non-finite value.
	ErrInvalidInput = errors.New("series: invalid input")

	// ErrTooShort indicates fewer coefficients than the requested minimum.
	// It wraps ErrInvalidInput.
	ErrTooShort = fmt.Errorf("%w: too few coefficients", ErrInvalidInput)

	// ErrNonFinite indicates a NaN or ±Inf coefficient. It wraps ErrInvalidInput.
	ErrNonFinite = fmt.Errorf("%w: non-finite coefficient", ErrInvalidInput)
)
