package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vsinha/pricesim/pkg/application/dto"
	"github.com/vsinha/pricesim/pkg/application/services/scenario"
	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/infrastructure/events"
	"github.com/vsinha/pricesim/pkg/infrastructure/metrics"
	"github.com/vsinha/pricesim/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/pricesim/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/pricesim/pkg/infrastructure/repositories/script"
	"github.com/vsinha/pricesim/pkg/interfaces/cli/output"
)

// Scenario directory file names. Packaging files are optional.
const (
	MPValuesFile         = "mp_values.csv"
	MPVolumesFile        = "mp_volumes.csv"
	EmballageValuesFile  = "emballage_values.csv"
	EmballageVolumesFile = "emballage_volumes.csv"
)

// ErrInvalidTotals is returned when the replayed scenario fails the volume check
var ErrInvalidTotals = errors.New("scenario volume totals are invalid")

// SimulateCommand loads a baseline, replays an edit script and reports the scenario
type SimulateCommand struct {
	config Config
}

// NewSimulateCommand creates a new simulate command with the given configuration
func NewSimulateCommand(config Config) *SimulateCommand {
	return &SimulateCommand{
		config: config,
	}
}

// Execute runs the simulate command
func (c *SimulateCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.config.LoadEnv(); err != nil {
		return err
	}

	// Validate inputs
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	files, err := c.resolveInputFiles()
	if err != nil {
		return fmt.Errorf("failed to resolve input files: %w", err)
	}

	if c.config.Verbose {
		c.printHeader(files)
		fmt.Println("📂 Loading baseline from CSV files...")
	}

	loader := csv.NewLoader()
	mpValues, err := loader.LoadValues(files[MPValuesFile])
	if err != nil {
		return fmt.Errorf("error loading MP values: %w", err)
	}
	mpVolumes, err := loader.LoadVolumes(files[MPVolumesFile])
	if err != nil {
		return fmt.Errorf("error loading MP volumes: %w", err)
	}

	var packValues []entities.ValueItem
	var packVolumes []entities.VolumeItem
	if path, ok := files[EmballageValuesFile]; ok {
		if packValues, err = loader.LoadValues(path); err != nil {
			return fmt.Errorf("error loading emballage values: %w", err)
		}
	}
	if path, ok := files[EmballageVolumesFile]; ok {
		if packVolumes, err = loader.LoadVolumes(path); err != nil {
			return fmt.Errorf("error loading emballage volumes: %w", err)
		}
	}

	baseline := memory.NewBaselineRepository()
	if err := baseline.LoadValueItems(entities.MP, mpValues); err != nil {
		return fmt.Errorf("error loading MP values: %w", err)
	}
	if err := baseline.LoadVolumeItems(entities.MP, mpVolumes); err != nil {
		return fmt.Errorf("error loading MP volumes: %w", err)
	}
	if err := baseline.LoadValueItems(entities.Packaging, packValues); err != nil {
		return fmt.Errorf("error loading emballage values: %w", err)
	}
	if err := baseline.LoadVolumeItems(entities.Packaging, packVolumes); err != nil {
		return fmt.Errorf("error loading emballage volumes: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ Baseline loaded successfully:\n")
		fmt.Printf("  MP values: %d\n", len(mpValues))
		fmt.Printf("  MP volumes: %d\n", len(mpVolumes))
		fmt.Printf("  Emballage values: %d\n", len(packValues))
		fmt.Printf("  Emballage volumes: %d\n", len(packVolumes))
		fmt.Println()
	}

	journal := events.NewInMemoryEventStore()
	var recorder *metrics.Recorder
	if c.config.Metrics {
		recorder = metrics.NewRecorder()
		if err := recorder.Attach(journal); err != nil {
			return fmt.Errorf("failed to attach metrics: %w", err)
		}
	}

	store := scenario.NewStore(scenario.WithEventStore(journal))
	if err := store.InitializeFromRepository(baseline); err != nil {
		return fmt.Errorf("failed to seed scenario: %w", err)
	}

	edits := &script.Script{}
	if c.config.EditsFile != "" {
		if edits, err = script.Load(c.config.EditsFile); err != nil {
			return fmt.Errorf("error loading edits: %w", err)
		}
	}

	scope := scenario.Scope{Perimetre: edits.Perimetre, Label: edits.Label}
	if c.config.Perimetre != "" {
		scope.Perimetre = c.config.Perimetre
	}
	if c.config.Label != "" {
		scope.Label = c.config.Label
	}
	store.StartSimulation(scope)

	if c.config.Verbose {
		fmt.Printf("🔄 Replaying %d edits...\n", len(edits.Edits))
	}

	startTime := time.Now()
	applied, err := NewReplayer(store, c.config.Progress).Replay(ctx, edits.Edits)
	replayTime := time.Since(startTime)
	if err != nil {
		return fmt.Errorf("error replaying edits: %w", err)
	}

	if c.config.Verbose {
		fmt.Printf("✅ %d edits replayed in %v\n\n", applied, replayTime)
	}

	result := dto.NewSimulationResult(store)
	result.EditsApplied = applied
	result.ReplayTime = replayTime
	if recorder != nil {
		if result.EventCounts, err = recorder.Counts(); err != nil {
			return fmt.Errorf("failed to gather metrics: %w", err)
		}
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
	}
	if err := output.Generate(result, outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if !result.Validation.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidTotals, strings.Join(result.Validation.Errors(), "; "))
	}

	if c.config.Verbose {
		fmt.Println("🏁 Simulation complete!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *SimulateCommand) validateInputs() error {
	if c.config.ScenarioDir == "" {
		return fmt.Errorf("must specify a -scenario directory")
	}
	switch c.config.Format {
	case "text", "json", "csv":
	default:
		return fmt.Errorf("unsupported output format: %s", c.config.Format)
	}
	return nil
}

// resolveInputFiles maps each present scenario file to its path. MP files are required.
func (c *SimulateCommand) resolveInputFiles() (map[string]string, error) {
	files := make(map[string]string)

	for _, name := range []string{MPValuesFile, MPVolumesFile, EmballageValuesFile, EmballageVolumesFile} {
		path := filepath.Join(c.config.ScenarioDir, name)
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) && (name == EmballageValuesFile || name == EmballageVolumesFile) {
				continue
			}
			return nil, fmt.Errorf("%s not found in %s", name, c.config.ScenarioDir)
		}
		files[name] = path
	}

	if c.config.EditsFile != "" {
		if _, err := os.Stat(c.config.EditsFile); os.IsNotExist(err) {
			return nil, fmt.Errorf("edits file not found: %s", c.config.EditsFile)
		}
	}

	return files, nil
}

// printHeader prints the command header information
func (c *SimulateCommand) printHeader(files map[string]string) {
	fmt.Printf("🚀 Price Simulation CLI\n")
	fmt.Printf("Input files:\n")
	for _, name := range []string{MPValuesFile, MPVolumesFile, EmballageValuesFile, EmballageVolumesFile} {
		if path, ok := files[name]; ok {
			fmt.Printf("  %s\n", path)
		}
	}
	if c.config.EditsFile != "" {
		fmt.Printf("Edits: %s\n", c.config.EditsFile)
	}
	fmt.Printf("Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Printf("Output directory: %s\n", c.config.OutputDir)
	}
	fmt.Println()
}

// showHelp displays the help message
func (c *SimulateCommand) showHelp() {
	fmt.Printf(`Price Simulation CLI - what-if price and volume scenarios for MP and packaging

USAGE:
    pricesim -scenario <directory> [-edits <file>]

OPTIONS:
    -scenario <dir>     Directory containing the baseline CSV files
    -edits <file>       YAML edit script replayed against the baseline
    -perimetre <text>   Scope the scenario is anchored to (overrides the script)
    -label <text>       Scenario label (overrides the script)
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv (default: text)
    -env <file>         Env file with PRICESIM_* defaults (default: .env)
    -progress           Show a progress bar while replaying edits
    -metrics            Report event counters
    -verbose            Enable verbose output
    -help               Show this help message

SCENARIO DIRECTORY STRUCTURE:
    scenario_name/
    ├── mp_values.csv          # MP prices
    ├── mp_volumes.csv         # MP volume shares
    ├── emballage_values.csv   # Packaging prices (optional)
    └── emballage_volumes.csv  # Packaging volume shares (optional)

CSV FILE FORMATS:

*_values.csv:
    id,code,label,price_first,price_last,decoupage,period_from,period_to
    SUGAR,SUG,Sucre,0.812,0.905,3months,2024-01,2024-12

*_volumes.csv:
    id,code,label,percentage
    SUGAR,SUG,Sucre,40

EDIT SCRIPT:
    perimetre: France / Biscuits
    label: Q3 sugar spike
    edits:
      - {op: set_evolution, collection: mp, id: SUGAR, value: 12.5}
      - {op: set_percentage, collection: mp, id: SUGAR, value: 45}
      - {op: set_decoupage, collection: mp, id: SUGAR, decoupage: 1month, from: 2024-01, to: 2024-06}

    ops: set_price_first, set_price_last, set_evolution, set_percentage,
         add_value, add_volume, remove_value, remove_volume, update_reference,
         set_decoupage, set_intermediate_price, set_context, reset, exit

EXIT STATUS:
    Non-zero when a non-empty volume collection does not sum to 100%%.
`)
}
