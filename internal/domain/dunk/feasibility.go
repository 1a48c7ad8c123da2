package dunk

import "fmt"

// Feasibility is a tri-state verdict. Indeterminate is the zero value so an
// unset verdict is never mistaken for "cannot dunk".
type Feasibility int

// Feasibility values.
const (
	Indeterminate Feasibility = iota
	Feasible
	Infeasible
)

var feasibilityNames = [...]string{ //nolint:gochecknoglobals // immutable lookup table
	Indeterminate: "indeterminate",
	Feasible:      "feasible",
	Infeasible:    "infeasible",
}

func (f Feasibility) String() string {
	if f < Indeterminate || f > Infeasible {
		return fmt.Sprintf("Feasibility(%d)", int(f))
	}
	return feasibilityNames[f]
}

// Known reports whether a definite verdict was reached.
func (f Feasibility) Known() bool { return f == Feasible || f == Infeasible }

// MarshalText implements encoding.TextMarshaler.
func (f Feasibility) MarshalText() ([]byte, error) {
	if f < Indeterminate || f > Infeasible {
		return nil, fmt.Errorf("invalid feasibility %d", int(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Feasibility) UnmarshalText(b []byte) error {
	for i, name := range feasibilityNames {
		if name == string(b) {
			*f = Feasibility(i)
			return nil
		}
	}
	return fmt.Errorf("unknown feasibility %q", b)
}
