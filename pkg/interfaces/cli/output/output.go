package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/vsinha/pricesim/pkg/application/dto"
	"github.com/vsinha/pricesim/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Writer    io.Writer
}

// Generate writes result in the configured format to stdout (or Writer) and,
// when OutputDir is set, to a results file in that directory.
func Generate(result *dto.SimulationResult, config Config) error {
	w := config.Writer
	if w == nil {
		w = os.Stdout
	}

	var write func(io.Writer, *dto.SimulationResult) error
	var filename string
	switch config.Format {
	case "text":
		write, filename = writeText, "simulation_results.txt"
	case "json":
		write, filename = writeJSON, "simulation_results.json"
	case "csv":
		write, filename = writeCSV, "simulation_results.csv"
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}

	if err := write(w, result); err != nil {
		return err
	}

	if config.OutputDir == "" {
		return nil
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, filename)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := write(file, result); err != nil {
		return err
	}
	if config.Verbose {
		fmt.Fprintf(w, "💾 Results saved to: %s\n", path)
	}
	return nil
}

// writeText creates human-readable text output
func writeText(w io.Writer, result *dto.SimulationResult) error {
	fmt.Fprintf(w, "📊 Scenario %s\n", result.ScenarioID)
	fmt.Fprintf(w, "======================\n\n")

	if result.Scope.Perimetre != "" || result.Scope.Label != "" {
		fmt.Fprintf(w, "Perimetre: %s\n", result.Scope.Perimetre)
		fmt.Fprintf(w, "Label: %s\n", result.Scope.Label)
	}
	fmt.Fprintf(w, "Simulation mode: %t\n", result.SimulationMode)
	fmt.Fprintf(w, "Edits applied: %d\n", result.EditsApplied)
	fmt.Fprintf(w, "Changes: %d\n\n", len(result.Changes))

	for _, kind := range []entities.CollectionKind{entities.MP, entities.Packaging} {
		values := *result.Simulated.Values(kind)
		if len(values) > 0 {
			fmt.Fprintf(w, "💶 %s values:\n", kind)
			fmt.Fprintf(w, "%-12s %-8s %-20s %-10s %-10s %-10s %-10s\n",
				"ID", "Code", "Label", "First", "Last", "Evol %", "Decoupage")
			fmt.Fprintf(w, "%-12s %-8s %-20s %-10s %-10s %-10s %-10s\n",
				"------------", "--------", "--------------------", "----------", "----------", "----------", "----------")
			for _, item := range values {
				fmt.Fprintf(w, "%-12s %-8s %-20s %-10.3f %-10.3f %-10.2f %-10s\n",
					item.ID, item.Code, item.Label, item.PriceFirst, item.PriceLast, item.Evolution, item.Decoupage)
				for _, point := range item.IntermediatePrices {
					fmt.Fprintf(w, "    #%d %s %.3f\n", point.PeriodIndex, point.Date, point.Price)
				}
			}
			fmt.Fprintln(w)
		}

		volumes := *result.Simulated.Volumes(kind)
		if len(volumes) > 0 {
			fmt.Fprintf(w, "📦 %s volumes:\n", kind)
			fmt.Fprintf(w, "%-12s %-8s %-20s %-10s\n", "ID", "Code", "Label", "Share %")
			fmt.Fprintf(w, "%-12s %-8s %-20s %-10s\n", "------------", "--------", "--------------------", "----------")
			for _, item := range volumes {
				fmt.Fprintf(w, "%-12s %-8s %-20s %-10.2f\n", item.ID, item.Code, item.Label, item.Percentage)
			}
			fmt.Fprintln(w)
		}
	}

	if len(result.Changes) > 0 {
		fmt.Fprintf(w, "✏️  Changes vs baseline:\n")
		for _, change := range result.Changes {
			collection := "values"
			if change.Volume {
				collection = "volumes"
			}
			fmt.Fprintf(w, "  %-9s %s %s %s\n", change.Type, change.Collection, collection, change.ID)
		}
		fmt.Fprintln(w)
	}

	if len(result.EventCounts) > 0 {
		fmt.Fprintf(w, "📈 Events:\n")
		for _, eventType := range sortedKeys(result.EventCounts) {
			fmt.Fprintf(w, "  %-28s %.0f\n", eventType, result.EventCounts[eventType])
		}
		fmt.Fprintln(w)
	}

	v := result.Validation
	fmt.Fprintf(w, "MP volumes total: %.2f%%\n", v.MPTotal)
	fmt.Fprintf(w, "Emballage volumes total: %.2f%%\n", v.PackagingTotal)
	if v.Valid() {
		fmt.Fprintf(w, "✅ Volume totals valid\n")
	} else {
		for _, msg := range v.Errors() {
			fmt.Fprintf(w, "⚠️  %s\n", msg)
		}
	}
	return nil
}

// writeJSON creates JSON output
func writeJSON(w io.Writer, result *dto.SimulationResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// writeCSV creates one row per draft item with its baseline counterpart
func writeCSV(w io.Writer, result *dto.SimulationResult) error {
	writer := csv.NewWriter(w)
	header := []string{"collection", "kind", "id", "code", "label", "price_first", "price_last", "evolution", "percentage", "baseline_price_last", "baseline_percentage"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	formatFloat := func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	for _, kind := range []entities.CollectionKind{entities.MP, entities.Packaging} {
		for _, item := range *result.Simulated.Values(kind) {
			baseline := ""
			if original := result.Original.FindValue(kind, item.ID); original != nil {
				baseline = formatFloat(original.PriceLast)
			}
			row := []string{kind.String(), "value", item.ID, item.Code, item.Label,
				formatFloat(item.PriceFirst), formatFloat(item.PriceLast), formatFloat(item.Evolution), "", baseline, ""}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		for _, item := range *result.Simulated.Volumes(kind) {
			baseline := ""
			if original := result.Original.FindVolume(kind, item.ID); original != nil {
				baseline = formatFloat(original.Percentage)
			}
			row := []string{kind.String(), "volume", item.ID, item.Code, item.Label,
				"", "", "", formatFloat(item.Percentage), "", baseline}
			if err := writer.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
