// SPDX-License-Identifier: MIT

// Command resum predicts the next coefficient of a power series by
// Borel–Padé resummation.
//
//	resum [flags] -- c1 c2 c3 c4 c5 ...
//	resum --scenarios default
//	resum --scenarios table.yaml --sign -1
//
// The "--" separator keeps negative coefficients from being read as flags.
//
// Flags:
//
//	--eps        |det| threshold for the denominator system (default 1e-12)
//	--order      Padé order L/M (default 2/2)
//	--solver     auto | cramer | lu | gonum
//	--sign       caller-side sign applied to predictions (+1 or -1);
//	             overrides the table sign when auditing
//	--borel x    also print the Borel–Laplace sum S(x)
//	--scenarios  "default" or a YAML table; audits every scenario
//	--verbose    debug logging on stderr
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/katalvlaran/borelpade/pade"
	"github.com/katalvlaran/borelpade/resum"
	"github.com/katalvlaran/borelpade/scenario"
)

// config is the parsed command line.
type config struct {
	eps       float64
	order     pade.Order
	solver    resum.Solver
	sign      int
	signSet   bool
	borel     float64
	wantBorel bool
	scenarios string
	verbose   bool
	coeffs    []float64
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	logger := log.New()
	logger.SetOutput(stderr)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.WithError(err).Error("resum: bad arguments")

		return 1
	}
	if cfg.verbose {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}

	est := resum.New(
		resum.WithEpsilon(cfg.eps),
		resum.WithOrder(cfg.order.L, cfg.order.M),
		resum.WithSolver(cfg.solver),
		resum.WithLogger(logger),
	)

	if cfg.scenarios != "" {
		err = runAudit(cfg, est, stdout)
	} else {
		err = runEstimate(cfg, est, stdout)
	}
	if err != nil {
		logger.WithError(err).Error("resum: failed")

		return 1
	}

	return 0
}

// parseArgs turns flags and positional coefficients into a config.
func parseArgs(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("resum", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfg := config{}
	var order, solver string
	fs.Float64Var(&cfg.eps, "eps", resum.DefaultEpsilon, "|det| threshold for the Padé denominator system")
	fs.StringVar(&order, "order", "2/2", "Padé order L/M")
	fs.StringVar(&solver, "solver", "auto", "linear solver: auto, cramer, lu or gonum")
	fs.IntVar(&cfg.sign, "sign", 1, "sign applied to predictions (+1 or -1)")
	fs.Float64Var(&cfg.borel, "borel", 0, "also print the Borel–Laplace sum at x")
	fs.StringVar(&cfg.scenarios, "scenarios", "", `audit a scenario table ("default" or a YAML file)`)
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "debug logging")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	cfg.wantBorel = fs.Changed("borel")
	cfg.signSet = fs.Changed("sign")

	var err error
	if cfg.order, err = parseOrder(order); err != nil {
		return config{}, err
	}
	if cfg.solver, err = resum.ParseSolver(solver); err != nil {
		return config{}, err
	}
	if err = resum.ValidateEpsilon(cfg.eps); err != nil {
		return config{}, err
	}
	if _, err = resum.Signed(0, cfg.sign); err != nil {
		return config{}, err
	}

	for _, a := range fs.Args() {
		v, perr := strconv.ParseFloat(a, 64)
		if perr != nil {
			return config{}, fmt.Errorf("coefficient %q: %w", a, perr)
		}
		cfg.coeffs = append(cfg.coeffs, v)
	}
	if cfg.scenarios == "" && len(cfg.coeffs) == 0 {
		return config{}, fmt.Errorf("%w: no coefficients given", resum.ErrInvalidInput)
	}

	return cfg, nil
}

// parseOrder parses "L/M".
func parseOrder(s string) (pade.Order, error) {
	l, m, ok := strings.Cut(s, "/")
	if !ok {
		return pade.Order{}, fmt.Errorf("%w: order %q is not L/M", resum.ErrInvalidInput, s)
	}
	L, err := strconv.Atoi(strings.TrimSpace(l))
	if err != nil {
		return pade.Order{}, fmt.Errorf("order %q: %w", s, err)
	}
	M, err := strconv.Atoi(strings.TrimSpace(m))
	if err != nil {
		return pade.Order{}, fmt.Errorf("order %q: %w", s, err)
	}
	ord := pade.Order{L: L, M: M}

	return ord, ord.Validate()
}

// runEstimate prints c_{N+1} (and optionally S(x)) for the positional series.
func runEstimate(cfg config, est resum.Estimator, w io.Writer) error {
	r, err := est.EstimateDetailed(cfg.coeffs)
	if err != nil {
		return err
	}
	next, err := resum.Signed(r.Next, cfg.sign)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "order    %s\n", r.Approximant.Order)
	fmt.Fprintf(w, "q        %v\n", r.Approximant.Q[1:])
	fmt.Fprintf(w, "det      %.6g\n", r.Approximant.Det)
	fmt.Fprintf(w, "b_%d      %.9g\n", r.Index, r.NextBorel)
	fmt.Fprintf(w, "c_%d      %.9g\n", r.Index, next)

	if cfg.wantBorel {
		s, err := est.BorelSum(cfg.coeffs, cfg.borel, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "S(%g)     %.9g\n", cfg.borel, s)
	}

	return nil
}

// runAudit prints one row per scenario of the selected table.
func runAudit(cfg config, est resum.Estimator, w io.Writer) error {
	var (
		tb  scenario.Table
		err error
	)
	if cfg.scenarios == "default" {
		tb = scenario.DefaultTable()
	} else if tb, err = scenario.LoadFile(cfg.scenarios); err != nil {
		return err
	}
	if cfg.signSet {
		tb.Sign = cfg.sign
	}

	reports, err := scenario.Audit(tb, est)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENARIO\tC_N\tC_N+1\tSTATUS")
	failed := 0
	for _, r := range reports {
		if r.OK() {
			fmt.Fprintf(tw, "%s\t%.4f\t%.4f\tok\n", r.Name, r.Next, r.Predicted)
		} else {
			failed++
			fmt.Fprintf(tw, "%s\t%.4f\t-\t%v\n", r.Name, r.Next, r.Err)
		}
	}
	if err = tw.Flush(); err != nil {
		return err
	}
	if failed == len(reports) {
		return fmt.Errorf("all %d scenarios failed", failed)
	}

	return nil
}
