// SPDX-License-Identifier: MIT

package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/borelpade/series"
)

// ErrInvalidTable indicates a table that fails Validate.
// It wraps series.ErrInvalidInput.
var ErrInvalidTable = fmt.Errorf("%w: scenario table", series.ErrInvalidInput)

// Scenario is one named candidate for the last known coefficient.
type Scenario struct {
	Name string  `yaml:"name"`
	Next float64 `yaml:"next"`
}

// Table is a base prefix shared by all scenarios, the scenarios themselves
// and the sign applied to every predicted coefficient.
type Table struct {
	Sign      int        `yaml:"sign"`
	Base      []float64  `yaml:"base"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// DefaultTable returns the QED anomalous-magnetic-moment coefficients
// C1..C4 and the published C5 candidates, with sign +1.
func DefaultTable() Table {
	return Table{
		Sign: 1,
		Base: []float64{0.5, -0.328478965, 1.181241456, -1.912245764},
		Scenarios: []Scenario{
			{Name: "Kinoshita 2012", Next: 9.160},
			{Name: "Aoyama 2019", Next: 7.668},
			{Name: "Aoyama 2025", Next: 6.800},
			{Name: "Volkov 2024", Next: 6.828},
			{Name: "Volkov (Old)", Next: 5.891},
			{Name: "TEU (Intuition)", Next: 6.602},
		},
	}
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := Table{Sign: t.Sign}
	out.Base = append([]float64(nil), t.Base...)
	out.Scenarios = append([]Scenario(nil), t.Scenarios...)

	return out
}

// Coefficients returns base ++ [s.Next] as a fresh series.
func (t Table) Coefficients(s Scenario) series.Coefficients {
	c := make(series.Coefficients, 0, len(t.Base)+1)
	c = append(c, t.Base...)

	return append(c, s.Next)
}

// Validate checks the table invariants:
//   - sign is +1 or −1;
//   - base is non-empty and finite;
//   - at least one scenario, each with a unique non-empty name and finite value.
func (t Table) Validate() error {
	if t.Sign != 1 && t.Sign != -1 {
		return fmt.Errorf("sign=%d: %w", t.Sign, ErrInvalidTable)
	}
	if len(t.Base) == 0 {
		return fmt.Errorf("empty base: %w", ErrInvalidTable)
	}
	for i, v := range t.Base {
		if !finite(v) {
			return fmt.Errorf("base[%d]=%v: %w", i, v, ErrInvalidTable)
		}
	}
	if len(t.Scenarios) == 0 {
		return fmt.Errorf("no scenarios: %w", ErrInvalidTable)
	}
	seen := make(map[string]struct{}, len(t.Scenarios))
	for i, s := range t.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d: empty name: %w", i, ErrInvalidTable)
		}
		if _, dup := seen[s.Name]; dup {
			return fmt.Errorf("scenario %q: duplicate name: %w", s.Name, ErrInvalidTable)
		}
		seen[s.Name] = struct{}{}
		if !finite(s.Next) {
			return fmt.Errorf("scenario %q: next=%v: %w", s.Name, s.Next, ErrInvalidTable)
		}
	}

	return nil
}

// Load decodes a YAML table from r and validates it. Unknown keys are rejected.
func Load(r io.Reader) (Table, error) {
	var t Table
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("empty document: %w", ErrInvalidTable)
		}

		return Table{}, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, err
	}

	return t, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("scenario: %w", err)
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return Table{}, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
