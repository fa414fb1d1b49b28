// Package transport formulates capacitated transportation problems as
// linear programs and interprets solver output back into domain terms.
// Solving itself is delegated to an Engine (see pkg/solver for the default
// implementation).
package transport

// SourceID identifies a production source
type SourceID string

// CustomerID identifies a customer with demand
type CustomerID string

// Route is a (source, customer) pair. A route exists only if a unit
// transportation cost is defined for the pair, so the set of routes is a
// sparse subset of the full sources x customers cross product.
type Route struct {
	Source   SourceID
	Customer CustomerID
}

// RouteCost attaches a unit transportation cost to a route. The order of
// RouteCost entries in a Problem is the canonical route order: variables and
// fixed-flow constraints are created in this order, which keeps identifiers
// reproducible across runs.
type RouteCost struct {
	Route Route
	Cost  float64
}

// FixedFlow is a mandatory quantity that must move on a route. An entry with
// Quantity == 0 is treated as "not fixed" and emits no equality constraint,
// so a route cannot be pinned to zero flow this way; callers that need that
// should not rely on a zero entry.
type FixedFlow struct {
	Route    Route
	Quantity float64
}

// Problem holds the raw parameters of one transportation scenario, as
// produced by a loader. The cost list defines the valid route set.
type Problem struct {
	Sources    []SourceID
	Customers  []CustomerID
	Production map[SourceID]float64
	Demand     map[CustomerID]float64
	Costs      []RouteCost
	Fixed      []FixedFlow
}

// ConstraintKind distinguishes the three constraint families of the model.
// The numeric values double as the ordinal tags embedded in constraint names
// (c01_, c02_, c03_).
type ConstraintKind int

const (
	// Capacity bounds a source's total outgoing flow from above.
	Capacity ConstraintKind = iota + 1
	// Demand bounds a customer's total incoming flow from below.
	Demand
	// Fixed pins a single route's flow to a mandatory quantity.
	Fixed
)

func (k ConstraintKind) String() string {
	switch k {
	case Capacity:
		return "production"
	case Demand:
		return "demand"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// Variable is one continuous decision variable: the quantity moved on a
// route. It is non-negative and unbounded above. Name embeds the route in
// the recoverable quantity_in_tons_<source>_<customer> format; the Route
// field carries the same origin in structured form so downstream consumers
// never have to re-parse the name.
type Variable struct {
	Name  string
	Route Route
	Cost  float64 // objective coefficient: unit transportation cost
	Index int     // position in Model.Variables
}

// Constraint is one linear row over the model's variables, expressed as
// Lower <= sum(Coefs[i] * x[Vars[i]]) <= Upper. Capacity rows have
// Lower == -Inf, demand rows have Upper == +Inf, fixed rows have
// Lower == Upper. Kind plus Source/Customer are the structured counterpart
// of the encoded Name.
type Constraint struct {
	Name     string
	Kind     ConstraintKind
	Source   SourceID
	Customer CustomerID
	Vars     []int
	Coefs    []float64
	Lower    float64
	Upper    float64
}

// Model is the assembled linear program: one variable per route, capacity,
// demand, and fixed-flow constraints, and a cost-minimizing objective given
// by the variables' Cost coefficients.
type Model struct {
	Variables   []Variable
	Constraints []Constraint

	routeIndex map[Route]int
}

// VariableFor returns the index of the variable for the given route, or
// false if the route is not part of the model.
func (m *Model) VariableFor(r Route) (int, bool) {
	i, ok := m.routeIndex[r]
	return i, ok
}
