// Package borelpade is a small, pure-Go toolkit for Borel–Padé resummation
// of perturbative power series.
//
// 🚀 What is inside?
//
//	series/   — coefficient prefixes c_1..c_N, factorials, Borel transform
//	matrix/   — Dense, Toeplitz, pivoted LU, Cramer and gonum solvers
//	pade/     — [L/M] Padé fits, rational recurrence, Borel–Laplace sums
//	resum/    — the next-coefficient estimator with typed failures
//	scenario/ — immutable YAML experiment tables and audits
//	cmd/resum — command line front end
//
// ✨ Why Borel–Padé?
//
//	Perturbative series in quantum field theory are typically asymptotic:
//	their coefficients grow like n!. Dividing by n! (Borel) tames the growth,
//	a rational approximant captures the singularity structure, and undoing
//	the scaling predicts the next term far more robustly than polynomial
//	extrapolation.
//
// Quick example:
//
//	c6, err := resum.Estimate([]float64{0.5, -0.328478965, 1.181241456, -1.912245764, 6.8})
//	// c6 ≈ -20.88
//
//	go get github.com/katalvlaran/borelpade
package borelpade
