// SPDX-License-Identifier: MIT

package pade

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/borelpade/series"
)

var (
	// ErrBadOrder indicates L < 0 or M < 1. It wraps series.ErrInvalidInput.
	ErrBadOrder = fmt.Errorf("%w: pade order needs L >= 0 and M >= 1", series.ErrInvalidInput)

	// ErrPoleOnContour indicates that Q vanishes or changes sign on the
	// positive real integration contour, so the Laplace integral is undefined.
	ErrPoleOnContour = errors.New("pade: denominator pole on the Borel contour")
)

// DefaultQuadratureNodes is the Gauss–Legendre node count used by BorelSum
// when the caller passes nodes <= 0.
const DefaultQuadratureNodes = 128

// Order is the [L/M] shape of a Padé approximant.
type Order struct {
	L int // numerator degree
	M int // denominator degree
}

// Diagonal22 is the [2/2] order used by the default estimator.
var Diagonal22 = Order{L: 2, M: 2}

// Terms returns L+M+1, the number of coefficients the fit consumes.
func (o Order) Terms() int { return o.L + o.M + 1 }

// String renders the order as "[L/M]".
func (o Order) String() string { return fmt.Sprintf("[%d/%d]", o.L, o.M) }

// Validate rejects L < 0 or M < 1 with ErrBadOrder.
func (o Order) Validate() error {
	if o.L < 0 || o.M < 1 {
		return fmt.Errorf("%s: %w", o, ErrBadOrder)
	}

	return nil
}

// DiagonalOrder returns the largest diagonal order [m/m] whose fit fits in
// n coefficients, i.e. m = (n−1)/2. n < 3 yields ErrBadOrder.
func DiagonalOrder(n int) (Order, error) {
	m := (n - 1) / 2
	if m < 1 {
		return Order{}, fmt.Errorf("n=%d: %w", n, ErrBadOrder)
	}

	return Order{L: m, M: m}, nil
}

// Approximant is a fitted rational function P(t)/Q(t).
// Q[0] is always 1. Values are immutable after Fit returns.
type Approximant struct {
	Order Order
	P     []float64 // p_0..p_L
	Q     []float64 // 1, q_1..q_M
	Det   float64   // determinant of the denominator system
}
