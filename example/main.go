// Example of using the transport packages programmatically, without the CLI
// or a scenario file: build a small problem, solve it, and walk the report.
package main

import (
	"fmt"
	"log"
	"os"

	"transportlp/pkg/interfaces/cli/output"
	"transportlp/pkg/solver"
	"transportlp/pkg/transport"
)

func main() {
	problem := &transport.Problem{
		Sources:   []transport.SourceID{"Arn", "Gou"},
		Customers: []transport.CustomerID{"Ams", "Ber", "Lon"},
		Production: map[transport.SourceID]float64{
			"Arn": 14,
			"Gou": 26,
		},
		Demand: map[transport.CustomerID]float64{
			"Ams": 10,
			"Ber": 12,
			"Lon": 12,
		},
		Costs: []transport.RouteCost{
			{Route: transport.Route{Source: "Arn", Customer: "Ams"}, Cost: 1.0},
			{Route: transport.Route{Source: "Arn", Customer: "Ber"}, Cost: 2.5},
			{Route: transport.Route{Source: "Arn", Customer: "Lon"}, Cost: 2.9},
			{Route: transport.Route{Source: "Gou", Customer: "Ams"}, Cost: 1.2},
			{Route: transport.Route{Source: "Gou", Customer: "Lon"}, Cost: 2.5},
		},
	}

	model := transport.Build(problem)
	engine := solver.NewSimplexEngine()

	solution, err := engine.Solve(model)
	if err != nil {
		log.Fatalf("solve failed: %v", err)
	}

	report := transport.Interpret(model, solution)
	if err := output.RenderText(os.Stdout, report); err != nil {
		log.Fatalf("render failed: %v", err)
	}

	// The structured report is also usable directly.
	for _, c := range report.Constraints {
		if c.Binding && c.Kind == transport.Capacity {
			fmt.Printf("\nBinding capacity at %s, shadow price %g\n", c.Source, c.ShadowPrice)
		}
	}
}
