// SPDX-License-Identifier: MIT

package pade

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// horner evaluates Σ c_i t^i.
func horner(c []float64, t float64) float64 {
	v := 0.0
	for i := len(c) - 1; i >= 0; i-- {
		v = v*t + c[i]
	}

	return v
}

// Numerator returns P(t).
func (ap *Approximant) Numerator(t float64) float64 { return horner(ap.P, t) }

// Denominator returns Q(t).
func (ap *Approximant) Denominator(t float64) float64 { return horner(ap.Q, t) }

// Eval returns P(t)/Q(t). At a pole the result is ±Inf or NaN.
func (ap *Approximant) Eval(t float64) float64 {
	return ap.Numerator(t) / ap.Denominator(t)
}

// coeff returns d_k from the recurrence, given d_0..d_{k−1} in d.
func (ap *Approximant) coeff(k int, d []float64) float64 {
	v := 0.0
	if k <= ap.Order.L {
		v = ap.P[k]
	}
	for i := 1; i <= ap.Order.M && i <= k; i++ {
		v -= ap.Q[i] * d[k-i]
	}

	return v
}

// Taylor returns the first n Taylor coefficients d_0..d_{n−1} of P/Q.
// For a fitted approximant the first L+M+1 equal the fitted coefficients.
// Complexity: O(n·M).
func (ap *Approximant) Taylor(n int) []float64 {
	if n <= 0 {
		return nil
	}
	d := make([]float64, n)
	for k := 0; k < n; k++ {
		d[k] = ap.coeff(k, d)
	}

	return d
}

// Extend returns the coefficient that follows known under the rational
// recurrence
//
//	d_k = p_k − Σ_{i=1..M} q_i d_{k−i},  p_k = 0 for k > L,
//
// with k = len(known). Terms past the fitted window are taken from known
// as-is, so the extension uses the latest available information.
// Complexity: O(M).
func (ap *Approximant) Extend(known []float64) float64 {
	return ap.coeff(len(known), known)
}

// BorelSum evaluates the Borel–Laplace integral of the series whose Borel
// transform is B(s) = s·F(s) with F = P/Q:
//
//	S(x) = ∫₀^∞ e^{−t} · xt · F(xt) dt
//
// For a series Σ_{n≥1} c_n x^n with F fitted to b_{n+1} = c_{n+1}/(n+1)!,
// S(x) is the resummed value of the series at x.
//
// Implementation:
//   - substitute t = u/(1−u), dt = du/(1−u)², u ∈ [0, 1);
//   - take nodes and weights from gonum's Gauss–Legendre rule on [0, 1];
//   - refuse with ErrPoleOnContour if Q(x·t) ≤ 0 at any node, since Q(0) = 1
//     and a sign change means a root on the contour.
//
// nodes <= 0 selects DefaultQuadratureNodes.
// Complexity: O(nodes·(L+M)).
func (ap *Approximant) BorelSum(x float64, nodes int) (float64, error) {
	if x == 0 {
		return 0, nil
	}
	if nodes <= 0 {
		nodes = DefaultQuadratureNodes
	}

	us := make([]float64, nodes)
	ws := make([]float64, nodes)
	quad.Legendre{}.FixedLocations(us, ws, 0, 1)

	var (
		sum, u, t, s, q float64
	)
	for i := range us {
		u = us[i]
		t = u / (1 - u)
		s = x * t
		q = ap.Denominator(s)
		if q <= 0 || math.IsNaN(q) {
			return 0, fmt.Errorf("x=%g, t=%g: %w", x, t, ErrPoleOnContour)
		}
		// (1+t)² = 1/(1−u)² is the Jacobian of the substitution
		sum += ws[i] * math.Exp(-t) * s * ap.Numerator(s) / q * (1 + t) * (1 + t)
	}

	return sum, nil
}
