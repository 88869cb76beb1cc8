// SPDX-License-Identifier: MIT

package resum

import (
	"errors"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/borelpade/matrix"
	"github.com/katalvlaran/borelpade/pade"
	"github.com/katalvlaran/borelpade/series"
)

const (
	opEstimate = "resum.Estimate"
	opBorelSum = "resum.BorelSum"
)

// Result is the full outcome of one estimation call.
type Result struct {
	// Borel holds b_1..b_N.
	Borel series.Coefficients

	// Approximant is the fitted P/Q of b_1 + b_2 t + … (Q[0] = 1).
	Approximant *pade.Approximant

	// Index is N+1, the index of the extrapolated term.
	Index int

	// NextBorel is b_{N+1} = c_{N+1} / (N+1)!; it underflows to ±0 once
	// N+1 exceeds series.MaxExactFactorial.
	NextBorel float64

	// Next is c_{N+1} = b_{N+1} · (N+1)!.
	Next float64
}

// Estimator is an immutable, concurrency-safe estimator configuration.
type Estimator struct {
	opts Options
}

// New returns an Estimator with the given options applied over defaults
// ([2/2], eps = DefaultEpsilon, SolverAuto, silent logger).
func New(opts ...Option) Estimator {
	return Estimator{opts: gatherOptions(opts...)}
}

// Options returns the resolved configuration.
func (e Estimator) Options() Options { return e.opts }

// Estimate is New(opts...).Estimate(c).
func Estimate(c []float64, opts ...Option) (float64, error) {
	return New(opts...).Estimate(c)
}

// EstimateDetailed is New(opts...).EstimateDetailed(c).
func EstimateDetailed(c []float64, opts ...Option) (Result, error) {
	return New(opts...).EstimateDetailed(c)
}

// Estimate returns c_{N+1} for the series prefix c_1..c_N.
func (e Estimator) Estimate(c []float64) (float64, error) {
	r, err := e.EstimateDetailed(c)
	if err != nil {
		return 0, err
	}

	return r.Next, nil
}

// EstimateDetailed runs the Borel–Padé estimation and returns every
// intermediate quantity.
//
// Algorithm Outline ([L/M] = [2/2] by default):
//  1. Validate: len(c) ≥ L+M+1, all finite.
//  2. b_n = c_n / n!.
//  3. Fit the [L/M] approximant on b_1..b_{L+M+1}; a singular system
//     or |det| < eps fails with *ConditionError.
//  4. Run the rational recurrence b_{N+1} = −Σ q_i b_{N+1−i} over all known
//     terms and undo the Borel scaling, c_{N+1} = b_{N+1} · (N+1)!. Both steps
//     are taken together on c (see nextCoefficient), so N+1 may exceed
//     series.MaxExactFactorial.
//
// Errors:
//   - ErrInvalidInput (too few / non-finite coefficients, solver/order mismatch).
//   - ErrIllConditionedSeries (as *ConditionError).
//   - ErrNonFiniteResult when c_{N+1} overflows float64.
//
// Complexity: O(N + M³).
func (e Estimator) EstimateDetailed(c []float64) (Result, error) {
	ord := e.opts.order
	if err := e.validate(c); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opEstimate, err)
	}
	ap, b, err := e.fit(c)
	if err != nil {
		return Result{}, err
	}

	n := len(c) + 1
	next := nextCoefficient(ap.Q, c)
	if math.IsNaN(next) || math.IsInf(next, 0) {
		return Result{}, fmt.Errorf("%s: c_%d=%v: %w", opEstimate, n, next, ErrNonFiniteResult)
	}
	nextB := next / series.Factorial(n)

	e.opts.log.WithFields(logrus.Fields{
		"order": ord.String(),
		"n":     len(c),
		"q":     ap.Q[1:],
		"det":   ap.Det,
		"next":  next,
	}).Debug("resum: extrapolated next coefficient")

	return Result{
		Borel:       b,
		Approximant: ap,
		Index:       n,
		NextBorel:   nextB,
		Next:        next,
	}, nil
}

// BorelSum fits the approximant to c and returns the Borel–Laplace resummed
// value S(x) = Σ c_n x^n (see pade.Approximant.BorelSum). nodes <= 0 uses
// pade.DefaultQuadratureNodes.
func (e Estimator) BorelSum(c []float64, x float64, nodes int) (float64, error) {
	if err := e.validate(c); err != nil {
		return 0, fmt.Errorf("%s: %w", opBorelSum, err)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, fmt.Errorf("%s: x=%v: %w", opBorelSum, x, ErrInvalidInput)
	}
	ap, _, err := e.fit(c)
	if err != nil {
		return 0, err
	}
	s, err := ap.BorelSum(x, nodes)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opBorelSum, err)
	}
	e.opts.log.WithFields(logrus.Fields{"x": x, "sum": s}).Debug("resum: borel sum")

	return s, nil
}

// fit Borel-transforms c and fits the configured approximant, mapping
// matrix.ErrSingular to *ConditionError. c is already validated.
func (e Estimator) fit(c []float64) (*pade.Approximant, series.Coefficients, error) {
	ord := e.opts.order
	solve, err := e.opts.solver.resolve(ord)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEstimate, err)
	}

	b := series.Borel(c)
	ap, err := pade.Fit(b, ord, solve, e.opts.eps)
	if errors.Is(err, matrix.ErrSingular) {
		// a zero pivot leaves no SingularError behind; its det is exactly 0
		cerr := &ConditionError{Order: ord, Eps: e.opts.eps, Err: err}
		var serr *matrix.SingularError
		if errors.As(err, &serr) {
			cerr.Det = serr.Det
		}
		e.opts.log.WithError(cerr).Debug("resum: rejected denominator system")

		return nil, nil, cerr
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEstimate, err)
	}

	return ap, b, nil
}

// validate checks c against the configured order. The fit window must stay
// within series.MaxExactFactorial so its Borel terms are representable.
func (e Estimator) validate(c []float64) error {
	ord := e.opts.order
	if ord.Terms() > series.MaxExactFactorial {
		return fmt.Errorf("%s needs %d terms, at most %d are supported: %w",
			ord, ord.Terms(), series.MaxExactFactorial, ErrInvalidInput)
	}

	return series.Validate(c, ord.Terms())
}

// nextCoefficient returns c_{N+1} for N = len(c) from the denominator q of
// the Borel-plane approximant:
//
//	c_{N+1} = −Σ_{i=1..M} q_i · (N+1)!/(N+1−i)! · c_{N+1−i}
//
// This is b_{N+1} = −Σ q_i b_{N+1−i} multiplied through by (N+1)!, so only
// an M-term falling factorial is formed. N > L always holds here, hence the
// numerator contributes nothing.
func nextCoefficient(q []float64, c []float64) float64 {
	n := len(c) + 1
	v := 0.0
	for i := 1; i < len(q) && i <= len(c); i++ {
		v -= q[i] * series.FallingFactorial(n, i) * c[n-1-i]
	}

	return v
}

// Signed applies an explicit caller-side sign convention (±1) to v,
// e.g. for alternating-series tables that store magnitudes.
func Signed(v float64, sign int) (float64, error) {
	switch sign {
	case 1:
		return v, nil
	case -1:
		return -v, nil
	}

	return 0, fmt.Errorf("sign=%d: %w", sign, ErrInvalidSign)
}
