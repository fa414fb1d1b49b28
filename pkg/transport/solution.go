package transport

import "encoding/json"

// Status is the outcome reported by a solve engine. The zero value is
// StatusError, so a Solution that was never filled in does not read as
// solved.
type Status int

const (
	// StatusError means the engine failed or produced nothing usable.
	StatusError Status = iota
	// StatusOptimal means an optimal solution was found.
	StatusOptimal
	// StatusFeasible means a feasible but not provably optimal solution was
	// found. It is a successful, fully reportable outcome.
	StatusFeasible
	// StatusInfeasible means no point satisfies all constraints.
	StatusInfeasible
	// StatusUnbounded means the objective can decrease without limit.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusFeasible:
		return "Feasible, but not optimal"
	case StatusInfeasible:
		return "Infeasible"
	case StatusUnbounded:
		return "Unbounded"
	default:
		return "Error"
	}
}

// MarshalJSON renders the status as its readable name.
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Solved reports whether the status carries a usable solution.
func (s Status) Solved() bool {
	return s == StatusOptimal || s == StatusFeasible
}

// Solution is what a solve engine returns for a model. The per-variable and
// per-constraint slices are indexed like Model.Variables and
// Model.Constraints and are only populated when Status.Solved() is true.
type Solution struct {
	Status    Status
	Objective float64

	// Values and ReducedCosts are per variable: the solved quantity and the
	// marginal objective change per unit increase of a currently-zero
	// variable.
	Values       []float64
	ReducedCosts []float64

	// Activities and Duals are per constraint: the achieved left-hand-side
	// value and the shadow price (marginal objective change per unit
	// relaxation of the constraint's bound).
	Activities []float64
	Duals      []float64
}

// Engine is the narrow contract with the external LP solving layer. The core
// never re-implements simplex or duality; it builds a Model, hands it to an
// Engine, and interprets the Solution.
type Engine interface {
	Solve(m *Model) (*Solution, error)
}
