package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedSolution fills a Solution for the testProblem model: five variables,
// five constraints (Arn, Gou capacity; Ams, Ber, Lon demand).
func solvedSolution() *Solution {
	return &Solution{
		Status:    StatusOptimal,
		Objective: 71.6,
		// Arn->Ams, Arn->Ber, Arn->Lon, Gou->Ams, Gou->Lon
		Values:       []float64{2, 12, 0, 8, 12},
		ReducedCosts: []float64{0, 0, 0.6, 0, 0},
		// cap Arn, cap Gou, dem Ams, dem Ber, dem Lon
		Activities: []float64{14, 20, 10, 12, 12},
		Duals:      []float64{-0.2, 0, 1.2, 2.7, 2.5},
	}
}

func TestInterpret_FailurePath(t *testing.T) {
	m := Build(testProblem())

	for _, status := range []Status{StatusInfeasible, StatusUnbounded, StatusError} {
		t.Run(status.String(), func(t *testing.T) {
			report := Interpret(m, &Solution{Status: status})

			assert.False(t, report.Solved)
			assert.Equal(t, status, report.Status)
			assert.Nil(t, report.Flows)
			assert.Nil(t, report.Constraints)
			assert.Nil(t, report.Variables)
			assert.Nil(t, report.ConstraintFindings)
			assert.Nil(t, report.VariableFindings)
		})
	}
}

func TestInterpret_FlowsArePositiveOnly(t *testing.T) {
	m := Build(testProblem())
	report := Interpret(m, solvedSolution())

	require.True(t, report.Solved)
	assert.Equal(t, []Flow{
		{Source: "Arn", Customer: "Ams", Quantity: 2},
		{Source: "Arn", Customer: "Ber", Quantity: 12},
		{Source: "Gou", Customer: "Ams", Quantity: 8},
		{Source: "Gou", Customer: "Lon", Quantity: 12},
	}, report.Flows)
}

func TestInterpret_SlackAndBinding(t *testing.T) {
	m := Build(testProblem())
	report := Interpret(m, solvedSolution())

	require.Len(t, report.Constraints, 5)

	arn := report.Constraints[0]
	assert.Equal(t, "c01_production_Arn", arn.Name)
	assert.Equal(t, 0.0, arn.Slack)
	assert.True(t, arn.Binding)

	gou := report.Constraints[1]
	assert.Equal(t, 6.0, gou.Slack)
	assert.False(t, gou.Binding)

	// Demand rows are lower-bound-only: an infinite upper bound reports
	// slack 0 rather than infinity, so they always narrate.
	for _, c := range report.Constraints[2:] {
		assert.Equal(t, 0.0, c.Slack, c.Name)
		assert.True(t, c.Binding, c.Name)
	}
}

func TestInterpret_SlackToleratesSolverNoise(t *testing.T) {
	m := Build(testProblem())
	sol := solvedSolution()
	sol.Activities[0] = 14 - 1e-12 // capacity activity off by float noise

	report := Interpret(m, sol)
	assert.Equal(t, 0.0, report.Constraints[0].Slack)
	assert.True(t, report.Constraints[0].Binding)
}

func TestInterpret_ConstraintFindings(t *testing.T) {
	m := Build(testProblem())
	report := Interpret(m, solvedSolution())

	require.Len(t, report.ConstraintFindings, 4) // Arn capacity + three demands
	assert.Equal(t,
		"The total transportation cost would be reduced by 0.2 euros for each additional ton available in Arn",
		report.ConstraintFindings[0])
	assert.Equal(t,
		"The total transportation cost would be increased by 1.2 euros for each additional ton supply at Ams",
		report.ConstraintFindings[1])
	assert.Equal(t,
		"The total transportation cost would be increased by 2.7 euros for each additional ton supply at Ber",
		report.ConstraintFindings[2])
	assert.Equal(t,
		"The total transportation cost would be increased by 2.5 euros for each additional ton supply at Lon",
		report.ConstraintFindings[3])
}

func TestInterpret_RoundsBeforeSignTest(t *testing.T) {
	m := Build(testProblem())
	sol := solvedSolution()
	// -0.004 rounds to 0.00 and must classify as "remain equal", not as a
	// decrease, so the narrative agrees with the displayed rounded number.
	sol.Duals[0] = -0.004

	report := Interpret(m, sol)
	assert.Equal(t,
		"The total transportation cost would remain equal for each additional ton available in Arn",
		report.ConstraintFindings[0])
}

func TestInterpret_FixedRowsGetNoNarrative(t *testing.T) {
	p := testProblem()
	p.Fixed = []FixedFlow{{Route: Route{Source: "Arn", Customer: "Lon"}, Quantity: 1}}
	m := Build(p)

	sol := &Solution{
		Status:       StatusOptimal,
		Objective:    72.2,
		Values:       []float64{1, 12, 1, 9, 11},
		ReducedCosts: []float64{0, 0, 0, 0, 0},
		Activities:   []float64{14, 20, 10, 12, 12, 1},
		Duals:        []float64{-0.2, 0, 1.2, 2.7, 2.5, 0.6},
	}

	report := Interpret(m, sol)

	fixed := report.Constraints[5]
	require.Equal(t, Fixed, fixed.Kind)
	assert.True(t, fixed.Binding)

	for _, finding := range report.ConstraintFindings {
		assert.NotContains(t, finding, "fixed")
	}
	require.Len(t, report.ConstraintFindings, 4)
}

func TestInterpret_VariableFindings(t *testing.T) {
	m := Build(testProblem())
	report := Interpret(m, solvedSolution())

	require.Len(t, report.Variables, 5)
	require.Len(t, report.VariableFindings, 1) // only Arn->Lon is at zero
	assert.Equal(t,
		"The total transportation cost would be increased by 0.6 euros for each ton supplied from Arn to Lon",
		report.VariableFindings[0])
}

func TestInterpret_VariableReducedCostClassification(t *testing.T) {
	m := Build(testProblem())

	tests := []struct {
		name        string
		reducedCost float64
		want        string
	}{
		{"increase", 0.6, "would be increased by 0.6 euros"},
		{"decrease", -0.35, "would be reduced by 0.35 euros"},
		{"rounds_to_zero", 0.004, "would remain equal"},
		{"zero", 0, "would remain equal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol := solvedSolution()
			sol.ReducedCosts[2] = tt.reducedCost

			report := Interpret(m, sol)
			require.Len(t, report.VariableFindings, 1)
			assert.Contains(t, report.VariableFindings[0], tt.want)
			assert.Contains(t, report.VariableFindings[0], "from Arn to Lon")
		})
	}
}

func TestInterpret_FeasibleStatusStillReports(t *testing.T) {
	m := Build(testProblem())
	sol := solvedSolution()
	sol.Status = StatusFeasible

	report := Interpret(m, sol)
	assert.True(t, report.Solved)
	assert.Equal(t, StatusFeasible, report.Status)
	assert.NotEmpty(t, report.Flows)
}
