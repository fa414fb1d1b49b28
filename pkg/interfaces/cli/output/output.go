// Package output renders interpreted solve reports as text or JSON. It is
// pure presentation: everything it prints is already classified and narrated
// by the interpreter.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"transportlp/pkg/transport"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
}

// Generate renders a report in the configured format, to stdout or to a file
// under Config.OutputDir.
func Generate(report *transport.Report, config Config) error {
	var render func(io.Writer, *transport.Report) error
	var filename string

	switch config.Format {
	case "text":
		render, filename = RenderText, "report.txt"
	case "json":
		render, filename = RenderJSON, "report.json"
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}

	if config.OutputDir == "" {
		return render(os.Stdout, report)
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(config.OutputDir, filename)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := render(f, report); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Printf("Report written to: %s\n", path)
	}
	return nil
}

// RenderText writes the human-readable report: status, total cost, the
// positive-flow table, and both sensitivity tables with their narrative
// findings. A failed solve prints a single message and nothing else.
func RenderText(w io.Writer, report *transport.Report) error {
	if !report.Solved {
		_, err := fmt.Fprintln(w, "The solver could not solve the problem.")
		return err
	}

	fmt.Fprintf(w, "Solver status: %s\n\n", report.Status)
	fmt.Fprintf(w, "Total transportation cost: %g\n\n", report.Objective)

	fmt.Fprintln(w, "Quantity exchanged between sources and customers:")
	fmt.Fprintf(w, "%-10s %-10s %10s\n", "Source", "Customer", "Quantity")
	for _, f := range report.Flows {
		fmt.Fprintf(w, "%-10s %-10s %10g\n", f.Source, f.Customer, f.Quantity)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sensitivity analysis - constraints:")
	fmt.Fprintf(w, "%-25s %10s %14s\n", "Constraint", "Slack", "Shadow price")
	for _, c := range report.Constraints {
		fmt.Fprintf(w, "%-25s %10g %14g\n", c.Name, c.Slack, c.ShadowPrice)
	}
	for _, finding := range report.ConstraintFindings {
		fmt.Fprintln(w, finding)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Sensitivity analysis - variables:")
	fmt.Fprintf(w, "%-30s %10s %14s\n", "Variable", "Value", "Reduced cost")
	for _, v := range report.Variables {
		fmt.Fprintf(w, "%-30s %10g %14g\n", v.Name, v.Value, v.ReducedCost)
	}
	for _, finding := range report.VariableFindings {
		fmt.Fprintln(w, finding)
	}

	return nil
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, report *transport.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", data)
	return err
}
