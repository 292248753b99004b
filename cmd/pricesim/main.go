package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/vsinha/pricesim/pkg/interfaces/cli/commands"
)

func main() {
	// Command line flags
	var (
		scenarioDir = flag.String("scenario", "", "Directory containing the baseline CSV files")
		editsFile   = flag.String("edits", "", "YAML edit script to replay")
		perimetre   = flag.String("perimetre", "", "Scope the scenario is anchored to")
		label       = flag.String("label", "", "Scenario label")
		outputDir   = flag.String("output", "", "Output directory for results (optional)")
		format      = flag.String("format", "", "Output format: text, json, csv")
		envFile     = flag.String("env", ".env", "Env file with PRICESIM_* defaults")
		progress    = flag.Bool("progress", false, "Show a progress bar while replaying edits")
		metrics     = flag.Bool("metrics", false, "Report event counters")
		verbose     = flag.Bool("verbose", false, "Enable verbose output")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	config := commands.Config{
		ScenarioDir: *scenarioDir,
		EditsFile:   *editsFile,
		Perimetre:   *perimetre,
		Label:       *label,
		OutputDir:   *outputDir,
		Format:      *format,
		EnvFile:     *envFile,
		Progress:    *progress,
		Metrics:     *metrics,
		Verbose:     *verbose,
		Help:        *help,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := commands.NewSimulateCommand(config)
	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
