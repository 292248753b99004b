package dto

import (
	"time"

	"github.com/vsinha/pricesim/pkg/application/services/scenario"
	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/services"
)

// SimulationResult contains the state of a scenario after an edit replay
type SimulationResult struct {
	ScenarioID     string                    `json:"scenarioId"`
	Scope          scenario.Scope            `json:"scope"`
	SimulationMode bool                      `json:"simulationMode"`
	Original       entities.Snapshot         `json:"original"`
	Simulated      entities.Snapshot         `json:"simulated"`
	Changes        []scenario.Change         `json:"changes"`
	Validation     services.TotalsValidation `json:"validation"`
	EventCounts    map[string]float64        `json:"eventCounts,omitempty"`
	EditsApplied   int                       `json:"editsApplied"`
	ReplayTime     time.Duration             `json:"replayTimeNs"`
}

// NewSimulationResult captures the current state of store
func NewSimulationResult(store *scenario.Store) *SimulationResult {
	return &SimulationResult{
		ScenarioID:     store.ID(),
		Scope:          store.Scope(),
		SimulationMode: store.IsSimulationMode(),
		Original:       store.Original(),
		Simulated:      store.Simulated(),
		Changes:        store.Diff(),
		Validation:     store.ValidateTotals(),
	}
}
