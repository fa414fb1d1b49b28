package transport

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// slackTolerance absorbs floating-point noise in slack values: anything
// closer to zero than this is reported as exactly zero, i.e. binding.
const slackTolerance = 1e-9

// Flow is one positive quantity moved on a route at the solution.
type Flow struct {
	Source   SourceID   `json:"source"`
	Customer CustomerID `json:"customer"`
	Quantity float64    `json:"quantity"`
}

// ConstraintSensitivity pairs a constraint with its slack and shadow price.
type ConstraintSensitivity struct {
	Name        string         `json:"constraint"`
	Kind        ConstraintKind `json:"-"`
	Source      SourceID       `json:"source,omitempty"`
	Customer    CustomerID     `json:"customer,omitempty"`
	Slack       float64        `json:"slack"`
	ShadowPrice float64        `json:"shadow_price"`
	Binding     bool           `json:"binding"`
}

// VariableSensitivity pairs a variable with its solved value and reduced cost.
type VariableSensitivity struct {
	Name        string  `json:"variable"`
	Route       Route   `json:"-"`
	Value       float64 `json:"value"`
	ReducedCost float64 `json:"reduced_cost"`
}

// Report is the structured outcome of interpreting a solution. On solve
// failure only Status is meaningful and Solved is false; all tables are nil.
type Report struct {
	Status    Status  `json:"status"`
	Solved    bool    `json:"solved"`
	Objective float64 `json:"total_cost"`

	Flows []Flow `json:"flows,omitempty"`

	Constraints        []ConstraintSensitivity `json:"constraints,omitempty"`
	ConstraintFindings []string                `json:"constraint_findings,omitempty"`

	Variables        []VariableSensitivity `json:"variables,omitempty"`
	VariableFindings []string              `json:"variable_findings,omitempty"`
}

// Interpret decodes a solution back into domain terms: the positive flows,
// the slack and shadow price of every constraint with narrative findings for
// the binding ones, and the value and reduced cost of every variable with
// narrative findings for the zero-valued ones.
//
// Shadow prices and reduced costs are rounded to 2 decimal places before
// their sign is classified, so a price of -0.004 narrates as "remain equal"
// rather than as a decrease, consistent with the displayed rounded number.
func Interpret(m *Model, sol *Solution) *Report {
	if !sol.Status.Solved() {
		return &Report{Status: sol.Status}
	}

	r := &Report{
		Status:    sol.Status,
		Solved:    true,
		Objective: sol.Objective,
	}

	for _, v := range m.Variables {
		if sol.Values[v.Index] > 0 {
			r.Flows = append(r.Flows, Flow{
				Source:   v.Route.Source,
				Customer: v.Route.Customer,
				Quantity: sol.Values[v.Index],
			})
		}
	}

	for i, con := range m.Constraints {
		cs := ConstraintSensitivity{
			Name:        con.Name,
			Kind:        con.Kind,
			Source:      con.Source,
			Customer:    con.Customer,
			Slack:       slack(con.Upper, sol.Activities[i]),
			ShadowPrice: sol.Duals[i],
		}
		cs.Binding = cs.Slack == 0
		r.Constraints = append(r.Constraints, cs)
		if finding, ok := narrateConstraint(cs); ok {
			r.ConstraintFindings = append(r.ConstraintFindings, finding)
		}
	}

	for _, v := range m.Variables {
		vs := VariableSensitivity{
			Name:        v.Name,
			Route:       v.Route,
			Value:       sol.Values[v.Index],
			ReducedCost: sol.ReducedCosts[v.Index],
		}
		r.Variables = append(r.Variables, vs)
		if vs.Value == 0 {
			r.VariableFindings = append(r.VariableFindings, narrateVariable(vs))
		}
	}

	return r
}

// slack is bound minus activity. A lower-bound-only constraint has an
// infinite upper bound and reports slack 0 rather than infinity, which also
// makes every demand row eligible for shadow-price narration.
func slack(upper, activity float64) float64 {
	if math.IsInf(upper, 1) {
		return 0
	}
	s := upper - activity
	if math.Abs(s) < slackTolerance {
		return 0
	}
	return s
}

// narrateConstraint renders a binding constraint's shadow price as an
// economic statement. Capacity rows speak of tons available at the source,
// demand rows of tons supplied to the customer. Fixed-flow rows are always
// binding by construction and get no narrative of their own.
func narrateConstraint(cs ConstraintSensitivity) (string, bool) {
	if !cs.Binding || cs.Kind == Fixed {
		return "", false
	}

	var at string
	if cs.Kind == Capacity {
		at = fmt.Sprintf("available in %s", cs.Source)
	} else {
		at = fmt.Sprintf("supply at %s", cs.Customer)
	}

	price := decimal.NewFromFloat(cs.ShadowPrice).Round(2)
	switch {
	case price.Sign() < 0:
		return fmt.Sprintf("The total transportation cost would be reduced by %s euros for each additional ton %s", price.Abs(), at), true
	case price.Sign() > 0:
		return fmt.Sprintf("The total transportation cost would be increased by %s euros for each additional ton %s", price, at), true
	default:
		return fmt.Sprintf("The total transportation cost would remain equal for each additional ton %s", at), true
	}
}

// narrateVariable renders a zero-valued variable's reduced cost as the
// marginal effect of forcing one ton onto its route.
func narrateVariable(vs VariableSensitivity) string {
	from := fmt.Sprintf("from %s to %s", vs.Route.Source, vs.Route.Customer)

	cost := decimal.NewFromFloat(vs.ReducedCost).Round(2)
	switch {
	case cost.Sign() < 0:
		return fmt.Sprintf("The total transportation cost would be reduced by %s euros for each ton supplied %s", cost.Abs(), from)
	case cost.Sign() > 0:
		return fmt.Sprintf("The total transportation cost would be increased by %s euros for each ton supplied %s", cost, from)
	default:
		return fmt.Sprintf("The total transportation cost would remain equal for each ton supplied %s", from)
	}
}
