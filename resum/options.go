// SPDX-License-Identifier: MIT

// Package resum: functional configuration for the estimator.
// WithX constructors validate eagerly and panic on nonsensical values
// (programmer error); estimation itself never panics on user input.

package resum

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/borelpade/matrix"
	"github.com/katalvlaran/borelpade/pade"
)

// DefaultEpsilon is the absolute |det| threshold below which a Padé
// denominator system is rejected as ill-conditioned.
const DefaultEpsilon = 1e-12

// Panic messages for invalid option values.
const (
	panicEpsilonInvalid = "resum: WithEpsilon requires a finite eps >= 0"
	panicOrderInvalid   = "resum: WithOrder requires L >= 0 and M >= 1"
	panicSolverInvalid  = "resum: WithSolver got an unknown solver"
)

// Solver selects the linear solver for the Padé denominator system.
type Solver int

const (
	// SolverAuto picks Cramer's rule at M = 2, LU below it and gonum above it.
	SolverAuto Solver = iota

	// SolverCramer uses Cramer's rule; valid for M = 2 only.
	SolverCramer

	// SolverLU uses the package matrix LU with partial pivoting.
	SolverLU

	// SolverGonum uses gonum.org/v1/gonum/mat.
	SolverGonum
)

var solverNames = map[Solver]string{
	SolverAuto:   "auto",
	SolverCramer: "cramer",
	SolverLU:     "lu",
	SolverGonum:  "gonum",
}

// String returns the lower-case solver name.
func (s Solver) String() string {
	if n, ok := solverNames[s]; ok {
		return n
	}

	return fmt.Sprintf("Solver(%d)", int(s))
}

// ParseSolver maps a name ("auto", "cramer", "lu", "gonum") to a Solver.
func ParseSolver(name string) (Solver, error) {
	for s, n := range solverNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}

	return SolverAuto, fmt.Errorf("%w: unknown solver %q", ErrInvalidInput, name)
}

// resolve returns the SolveFunc for order o.
func (s Solver) resolve(o pade.Order) (matrix.SolveFunc, error) {
	switch s {
	case SolverAuto:
		switch {
		case o.M == 2:
			return matrix.SolveCramer, nil
		case o.M < 2:
			return matrix.Solve, nil
		default:
			return matrix.SolveGonum, nil
		}
	case SolverCramer:
		if o.M != 2 {
			return nil, fmt.Errorf("%s with %s: %w", s, o, ErrSolverOrder)
		}

		return matrix.SolveCramer, nil
	case SolverLU:
		return matrix.Solve, nil
	case SolverGonum:
		return matrix.SolveGonum, nil
	}

	return nil, fmt.Errorf("%s: %w", s, ErrSolverOrder)
}

// Option mutates Options.
type Option func(*Options)

// Options is the resolved estimator configuration. Fields are unexported;
// public entry points accept ...Option.
type Options struct {
	eps    float64
	order  pade.Order
	solver Solver
	log    logrus.FieldLogger
}

// Epsilon returns the configured |det| threshold.
func (o Options) Epsilon() float64 { return o.eps }

// Order returns the configured Padé order.
func (o Options) Order() pade.Order { return o.order }

// Solver returns the configured solver.
func (o Options) Solver() Solver { return o.solver }

// WithEpsilon sets the |det| threshold; eps must be finite and >= 0.
// eps = 0 rejects only an exactly singular system.
//
// The bound is absolute, not relative. Scaling the series by k scales the
// [L/M] determinant by k^M, so scale invariance of Estimate holds only while
// |det| stays above eps: the QED series times 1e-6 has |det| ≈ 2.6e-14 and
// needs eps below that.
func WithEpsilon(eps float64) Option {
	if ValidateEpsilon(eps) != nil {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// ValidateEpsilon returns ErrInvalidInput for any eps WithEpsilon would reject.
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: eps=%v must be finite and >= 0", ErrInvalidInput, eps)
	}

	return nil
}

// WithOrder sets the Padé order [L/M]; the estimator then needs at least
// L+M+1 coefficients.
func WithOrder(L, M int) Option {
	ord := pade.Order{L: L, M: M}
	if ord.Validate() != nil {
		panic(panicOrderInvalid)
	}

	return func(o *Options) { o.order = ord }
}

// WithSolver selects the denominator solver.
func WithSolver(s Solver) Option {
	if _, ok := solverNames[s]; !ok {
		panic(panicSolverInvalid)
	}

	return func(o *Options) { o.solver = s }
}

// WithLogger routes Debug diagnostics to l. A nil l restores the silent default.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.log = l
	}
}

// discardLogger returns a logger that writes nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}

// gatherOptions applies user setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:    DefaultEpsilon,
		order:  pade.Diagonal22,
		solver: SolverAuto,
	}
	for _, fn := range user {
		fn(&o)
	}
	if o.log == nil {
		o.log = discardLogger()
	}

	return o
}
