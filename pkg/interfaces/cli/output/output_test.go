package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vsinha/pricesim/pkg/application/dto"
	"github.com/vsinha/pricesim/pkg/application/services/scenario"
	"github.com/vsinha/pricesim/pkg/domain/entities"
)

func sampleResult(t *testing.T) *dto.SimulationResult {
	t.Helper()
	store := scenario.NewStore(scenario.WithID("scenario-42"))
	store.InitializeFromExistingData(
		[]entities.ValueItem{{ID: "SUGAR", Code: "SUG", Label: "Sucre", PriceFirst: 100, PriceLast: 200}},
		[]entities.VolumeItem{{ID: "SUGAR", Code: "SUG", Label: "Sucre", Percentage: 100}},
		nil, nil,
	)
	store.StartSimulation(scenario.Scope{Perimetre: "France", Label: "Q3"})
	_ = store.SetDecoupage(entities.MP, "SUGAR", entities.DecoupageOneMonth, &entities.Period{
		From: entities.MonthYear{Month: 1, Year: 2024},
		To:   entities.MonthYear{Month: 3, Year: 2024},
	})
	_ = store.SetPercentage(entities.MP, "SUGAR", 90)
	return dto.NewSimulationResult(store)
}

func TestGenerate_Text(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(sampleResult(t), Config{Format: "text", Writer: &buf}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"scenario-42", "Perimetre: France", "1month", "#1 02/2024 150.000", "modified", "MP volumes total 90.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected text output to contain %q\n%s", want, out)
		}
	}
}

func TestGenerate_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Generate(sampleResult(t), Config{Format: "json", Writer: &buf}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var decoded struct {
		ScenarioID string `json:"scenarioId"`
		Simulated  struct {
			MPValues []struct {
				Decoupage          string `json:"decoupage"`
				IntermediatePrices []struct {
					Price float64 `json:"price"`
				} `json:"intermediatePrices"`
			} `json:"mpValues"`
		} `json:"simulated"`
		Changes []struct {
			Collection string `json:"collection"`
			Type       string `json:"type"`
		} `json:"changes"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("Failed to decode JSON output: %v", err)
	}
	if decoded.ScenarioID != "scenario-42" {
		t.Errorf("Expected scenario id, got %q", decoded.ScenarioID)
	}
	if len(decoded.Simulated.MPValues) != 1 || decoded.Simulated.MPValues[0].Decoupage != "1month" {
		t.Fatalf("Unexpected MP values: %+v", decoded.Simulated.MPValues)
	}
	if len(decoded.Simulated.MPValues[0].IntermediatePrices) != 3 {
		t.Errorf("Expected 3 intermediate prices, got %d", len(decoded.Simulated.MPValues[0].IntermediatePrices))
	}
	if len(decoded.Changes) != 2 || decoded.Changes[0].Collection != "mp" || decoded.Changes[0].Type != "modified" {
		t.Errorf("Unexpected changes: %+v", decoded.Changes)
	}
}

func TestGenerate_CSVToOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "results")
	var buf bytes.Buffer
	if err := Generate(sampleResult(t), Config{Format: "csv", OutputDir: dir, Writer: &buf}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "simulation_results.csv"))
	if err != nil {
		t.Fatalf("Expected results file: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %d lines", len(lines))
	}
	if lines[2] != "mp,volume,SUGAR,SUG,Sucre,,,,90,,100" {
		t.Errorf("Unexpected volume row: %s", lines[2])
	}
	if buf.String() != string(data) {
		t.Error("Expected stdout and file output to match")
	}
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	if err := Generate(sampleResult(t), Config{Format: "xml"}); err == nil {
		t.Error("Expected error for unsupported format")
	}
}
