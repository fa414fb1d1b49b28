package transport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProblem() *Problem {
	return &Problem{
		Sources:   []SourceID{"Arn", "Gou"},
		Customers: []CustomerID{"Ams", "Ber", "Lon"},
		Production: map[SourceID]float64{
			"Arn": 14,
			"Gou": 26,
		},
		Demand: map[CustomerID]float64{
			"Ams": 10,
			"Ber": 12,
			"Lon": 12,
		},
		Costs: []RouteCost{
			{Route: Route{Source: "Arn", Customer: "Ams"}, Cost: 1.0},
			{Route: Route{Source: "Arn", Customer: "Ber"}, Cost: 2.5},
			{Route: Route{Source: "Arn", Customer: "Lon"}, Cost: 2.9},
			{Route: Route{Source: "Gou", Customer: "Ams"}, Cost: 1.2},
			{Route: Route{Source: "Gou", Customer: "Lon"}, Cost: 2.5},
		},
	}
}

func TestBuild_VariableSetMatchesRouteSet(t *testing.T) {
	p := testProblem()
	m := Build(p)

	require.Len(t, m.Variables, len(p.Costs))

	for i, rc := range p.Costs {
		v := m.Variables[i]
		assert.Equal(t, rc.Route, v.Route)
		assert.Equal(t, rc.Cost, v.Cost)
		assert.Equal(t, i, v.Index)
		assert.Equal(t, VariableName(rc.Route), v.Name)

		idx, ok := m.VariableFor(rc.Route)
		require.True(t, ok)
		assert.Equal(t, i, idx)
	}

	// No variable for a pair outside the cost list.
	_, ok := m.VariableFor(Route{Source: "Gou", Customer: "Ber"})
	assert.False(t, ok)
}

func TestBuild_ConstraintBlocks(t *testing.T) {
	p := testProblem()
	m := Build(p)

	// One capacity row per source, one demand row per customer, no fixed rows.
	require.Len(t, m.Constraints, len(p.Sources)+len(p.Customers))

	arn := m.Constraints[0]
	assert.Equal(t, "c01_production_Arn", arn.Name)
	assert.Equal(t, Capacity, arn.Kind)
	assert.Equal(t, SourceID("Arn"), arn.Source)
	assert.True(t, math.IsInf(arn.Lower, -1))
	assert.Equal(t, 14.0, arn.Upper)
	assert.Equal(t, []int{0, 1, 2}, arn.Vars)
	assert.Equal(t, []float64{1, 1, 1}, arn.Coefs)

	ber := m.Constraints[3]
	assert.Equal(t, "c02_demand_Ber", ber.Name)
	assert.Equal(t, Demand, ber.Kind)
	assert.Equal(t, CustomerID("Ber"), ber.Customer)
	assert.Equal(t, 12.0, ber.Lower)
	assert.True(t, math.IsInf(ber.Upper, 1))
	assert.Equal(t, []int{1}, ber.Vars) // only Arn serves Ber
}

func TestBuild_VacuousCapacityRow(t *testing.T) {
	p := testProblem()
	p.Sources = append(p.Sources, "Utr")
	p.Production["Utr"] = 5

	m := Build(p)

	// A source without routes still gets a capacity row; it is just empty.
	utr := m.Constraints[2]
	require.Equal(t, "c01_production_Utr", utr.Name)
	assert.Empty(t, utr.Vars)
	assert.Equal(t, 5.0, utr.Upper)
}

func TestBuild_FixedFlowRows(t *testing.T) {
	p := testProblem()
	p.Fixed = []FixedFlow{
		{Route: Route{Source: "Arn", Customer: "Lon"}, Quantity: 1},
		// Zero quantity means "not fixed": no equality row.
		{Route: Route{Source: "Gou", Customer: "Ams"}, Quantity: 0},
		// Route outside the cost list: contract violation, skipped.
		{Route: Route{Source: "Gou", Customer: "Ber"}, Quantity: 3},
	}

	m := Build(p)

	require.Len(t, m.Constraints, len(p.Sources)+len(p.Customers)+1)

	fixed := m.Constraints[len(m.Constraints)-1]
	assert.Equal(t, "c03_fixed_Arn_Lon", fixed.Name)
	assert.Equal(t, Fixed, fixed.Kind)
	assert.Equal(t, SourceID("Arn"), fixed.Source)
	assert.Equal(t, CustomerID("Lon"), fixed.Customer)
	assert.Equal(t, fixed.Lower, fixed.Upper)
	assert.Equal(t, 1.0, fixed.Upper)
	assert.Equal(t, []int{2}, fixed.Vars)
}

func TestBuild_Deterministic(t *testing.T) {
	p := testProblem()
	a := Build(p)
	b := Build(p)

	require.Equal(t, len(a.Variables), len(b.Variables))
	for i := range a.Variables {
		assert.Equal(t, a.Variables[i].Name, b.Variables[i].Name)
	}
	require.Equal(t, len(a.Constraints), len(b.Constraints))
	for i := range a.Constraints {
		assert.Equal(t, a.Constraints[i].Name, b.Constraints[i].Name)
	}
}
