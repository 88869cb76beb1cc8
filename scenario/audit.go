// SPDX-License-Identifier: MIT

package scenario

import (
	"github.com/katalvlaran/borelpade/resum"
)

// Report is the outcome for one scenario. Err is non-nil when the estimate
// failed; Predicted is then zero and must not be used.
type Report struct {
	Name      string
	Next      float64 // the scenario's candidate c_N
	Index     int     // N+1
	Predicted float64 // sign · c_{N+1}
	Err       error
}

// OK reports whether the prediction succeeded.
func (r Report) OK() bool { return r.Err == nil }

// Audit predicts c_{N+1} for every scenario of t, in table order.
// The table is validated first; a validation error yields no reports.
// Per-scenario failures are recorded in Report.Err and never abort the run.
func Audit(t Table, est resum.Estimator) ([]Report, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	t = t.Clone()

	out := make([]Report, len(t.Scenarios))
	for i, s := range t.Scenarios {
		c := t.Coefficients(s)
		r := Report{Name: s.Name, Next: s.Next, Index: len(c) + 1}

		v, err := est.Estimate(c)
		if err == nil {
			v, err = resum.Signed(v, t.Sign)
		}
		if err != nil {
			r.Err = err
		} else {
			r.Predicted = v
		}
		out[i] = r
	}

	return out, nil
}
