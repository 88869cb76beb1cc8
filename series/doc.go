// SPDX-License-Identifier: MIT

// Package series models the known prefix c[1..N] of a formal power series
//
//	S(x) = Σ_{n≥1} c_n · x^n
//
// and its Borel transform b_n = c_n / n!, used to regularise asymptotic or
// divergent perturbative series before resummation.
//
// Coefficients are stored zero-based: c[0] holds c_1. Every function returns
// a fresh slice; inputs are never mutated.
package series
