package transport

import (
	"math"
)

// Build assembles the linear program for a transportation problem.
//
// One non-negative continuous variable is created per route, in the order of
// p.Costs. Constraints are emitted in three blocks, mirroring the scenario
// structure: one capacity row per source (possibly vacuous, when a source has
// no routes), one demand row per customer, and one equality row per route
// whose fixed quantity is present and non-zero. Variable and constraint
// counts are therefore fully determined by the route-set cardinality and the
// source/customer counts; no route outside p.Costs is ever instantiated.
//
// A fixed-flow entry naming a route absent from p.Costs is a contract
// violation of the input data; Build does not guard against it (the loader
// does) and silently skips such entries.
func Build(p *Problem) *Model {
	m := &Model{
		Variables:  make([]Variable, 0, len(p.Costs)),
		routeIndex: make(map[Route]int, len(p.Costs)),
	}

	for _, rc := range p.Costs {
		v := Variable{
			Name:  VariableName(rc.Route),
			Route: rc.Route,
			Cost:  rc.Cost,
			Index: len(m.Variables),
		}
		m.routeIndex[rc.Route] = v.Index
		m.Variables = append(m.Variables, v)
	}

	for _, s := range p.Sources {
		con := Constraint{
			Name:   CapacityName(s),
			Kind:   Capacity,
			Source: s,
			Lower:  math.Inf(-1),
			Upper:  p.Production[s],
		}
		for _, v := range m.Variables {
			if v.Route.Source == s {
				con.Vars = append(con.Vars, v.Index)
				con.Coefs = append(con.Coefs, 1)
			}
		}
		m.Constraints = append(m.Constraints, con)
	}

	for _, c := range p.Customers {
		con := Constraint{
			Name:     DemandName(c),
			Kind:     Demand,
			Customer: c,
			Lower:    p.Demand[c],
			Upper:    math.Inf(1),
		}
		for _, v := range m.Variables {
			if v.Route.Customer == c {
				con.Vars = append(con.Vars, v.Index)
				con.Coefs = append(con.Coefs, 1)
			}
		}
		m.Constraints = append(m.Constraints, con)
	}

	for _, f := range p.Fixed {
		if f.Quantity == 0 {
			// A zero quantity means "not fixed". See FixedFlow.
			continue
		}
		i, ok := m.routeIndex[f.Route]
		if !ok {
			continue
		}
		m.Constraints = append(m.Constraints, Constraint{
			Name:     FixedName(f.Route),
			Kind:     Fixed,
			Source:   f.Route.Source,
			Customer: f.Route.Customer,
			Vars:     []int{i},
			Coefs:    []float64{1},
			Lower:    f.Quantity,
			Upper:    f.Quantity,
		})
	}

	return m
}
