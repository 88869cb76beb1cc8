// SPDX-License-Identifier: MIT

package series

import (
	"fmt"
	"math"
)

// MaxExactFactorial is the largest n for which Factorial(n) is finite in float64.
const MaxExactFactorial = 170

// factorials caches 0!..MaxExactFactorial! computed by repeated products,
// which is exact up to 22! and correctly rounded well beyond.
var factorials = func() [MaxExactFactorial + 1]float64 {
	var f [MaxExactFactorial + 1]float64
	f[0] = 1
	for i := 1; i <= MaxExactFactorial; i++ {
		f[i] = f[i-1] * float64(i)
	}

	return f
}()

// Coefficients is the ordered prefix c_1..c_N of a power series, zero-based.
type Coefficients []float64

// Len returns N, the number of known terms.
func (c Coefficients) Len() int { return len(c) }

// Term returns c_n for 1 ≤ n ≤ N (one-based, as in the series notation).
// It panics when n is out of range, like a slice index.
func (c Coefficients) Term(n int) float64 { return c[n-1] }

// Clone returns an independent copy.
func (c Coefficients) Clone() Coefficients {
	out := make(Coefficients, len(c))
	copy(out, c)

	return out
}

// Factorial returns n! as float64. n beyond MaxExactFactorial yields +Inf.
// It panics for n < 0 (programmer error).
func Factorial(n int) float64 {
	if n < 0 {
		panic("series: Factorial of negative n")
	}
	if n > MaxExactFactorial {
		return math.Inf(1)
	}

	return factorials[n]
}

// FallingFactorial returns n·(n−1)···(n−k+1) = n!/(n−k)!. It stays finite
// far beyond MaxExactFactorial for small k; k = 0 yields 1.
// It panics for k < 0 or k > n (programmer error).
func FallingFactorial(n, k int) float64 {
	if k < 0 || k > n {
		panic("series: FallingFactorial needs 0 <= k <= n")
	}
	v := 1.0
	for i := 0; i < k; i++ {
		v *= float64(n - i)
	}

	return v
}

// Validate checks that c holds at least minLen finite coefficients.
//
// Errors:
//   - ErrTooShort  — len(c) < minLen.
//   - ErrNonFinite — some c_n is NaN or ±Inf.
//
// Both match errors.Is(err, ErrInvalidInput).
func Validate(c Coefficients, minLen int) error {
	if len(c) < minLen {
		return fmt.Errorf("got %d, need at least %d: %w", len(c), minLen, ErrTooShort)
	}
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("c_%d=%v: %w", i+1, v, ErrNonFinite)
		}
	}

	return nil
}

// Borel returns the Borel-transformed series b_n = c_n / n!, n = 1..N.
// Terms with n > MaxExactFactorial underflow to ±0.
// Complexity: O(N).
func Borel(c Coefficients) Coefficients {
	b := make(Coefficients, len(c))
	for i, v := range c {
		b[i] = v / Factorial(i+1)
	}

	return b
}

// InverseBorel undoes the Borel scaling of the n-th term: c_n = b_n · n!.
func InverseBorel(b float64, n int) float64 {
	return b * Factorial(n)
}

// Scale returns k·c as a new series.
func Scale(c Coefficients, k float64) Coefficients {
	out := make(Coefficients, len(c))
	for i, v := range c {
		out[i] = k * v
	}

	return out
}
