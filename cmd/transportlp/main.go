package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"transportlp/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		dataFile = flag.String("data", "", "Path to JSON scenario file")
		format   = flag.String("format", "text", "Output format: text, json")
		output   = flag.String("output", "", "Output directory for the report (optional)")
		verbose  = flag.Bool("verbose", false, "Enable verbose output")
		help     = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		DataFile:  *dataFile,
		Format:    *format,
		OutputDir: *output,
		Verbose:   *verbose,
		Help:      *help,
	}

	cmd := commands.NewSolveCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
