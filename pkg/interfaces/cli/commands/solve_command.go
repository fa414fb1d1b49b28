// Package commands wires the solve pipeline behind the CLI: load a scenario,
// build the model, hand it to the engine, interpret, render.
package commands

import (
	"context"
	"fmt"

	"transportlp/pkg/infrastructure/repositories/json"
	"transportlp/pkg/interfaces/cli/output"
	"transportlp/pkg/solver"
	"transportlp/pkg/transport"
)

// Config holds configuration for the solve command
type Config struct {
	DataFile  string
	Format    string
	OutputDir string
	Verbose   bool
	Help      bool
}

// SolveCommand runs one scenario end to end. Each invocation is an
// independent batch run: no state survives between executions.
type SolveCommand struct {
	config Config
	engine transport.Engine
}

// NewSolveCommand creates a solve command with the default simplex engine.
func NewSolveCommand(config Config) *SolveCommand {
	return &SolveCommand{
		config: config,
		engine: solver.NewSimplexEngine(),
	}
}

// NewSolveCommandWithEngine creates a solve command with a custom engine.
func NewSolveCommandWithEngine(config Config, engine transport.Engine) *SolveCommand {
	return &SolveCommand{config: config, engine: engine}
}

// Execute runs the solve command
func (c *SolveCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.config.DataFile == "" {
		return fmt.Errorf("no scenario file given (use -data)")
	}

	if c.config.Verbose {
		fmt.Printf("Loading scenario from %s...\n", c.config.DataFile)
	}

	loader := json.NewLoader()
	problem, err := loader.Load(c.config.DataFile)
	if err != nil {
		return fmt.Errorf("error loading scenario: %w", err)
	}

	model := transport.Build(problem)

	if c.config.Verbose {
		fmt.Printf("Model built: %d variables, %d constraints\n",
			len(model.Variables), len(model.Constraints))
	}

	solution, err := c.engine.Solve(model)
	if err != nil {
		return fmt.Errorf("error solving model: %w", err)
	}

	report := transport.Interpret(model, solution)

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(report, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	return nil
}

func (c *SolveCommand) showHelp() {
	fmt.Println(`transportlp - capacitated transportation problem solver

Solves one scenario per invocation and reports the optimal flows together
with a sensitivity analysis of constraints (slack, shadow price) and
variables (value, reduced cost).

Usage:
  transportlp -data <scenario.json> [options]

Options:
  -data     Path to the JSON scenario file
  -format   Output format: text or json (default text)
  -output   Directory for the report file (default: print to stdout)
  -verbose  Print progress information
  -help     Show this message`)
}
