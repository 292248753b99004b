// Package scenario holds the what-if price/volume scenario store: a baseline
// snapshot, an editable draft, and the lifecycle that moves between them.
package scenario

import (
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/services"
	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

// Scope is the dashboard filter context a simulation is anchored to
type Scope struct {
	Perimetre string `json:"perimetre"`
	Label     string `json:"label"`
}

// Option configures a Store
type Option func(*Store)

// WithEventStore journals every successful mutation to es
func WithEventStore(es events.EventStore) Option {
	return func(s *Store) {
		s.eventStore = es
	}
}

// WithID overrides the generated scenario id
func WithID(id string) Option {
	return func(s *Store) {
		s.id = id
	}
}

// Store owns the baseline (original) and draft (simulated) snapshots.
// All writes go through its methods so derived fields stay consistent;
// readers get deep copies.
type Store struct {
	mu             sync.RWMutex
	id             string
	original       entities.Snapshot
	simulated      entities.Snapshot
	simulationMode bool
	windowOpen     bool
	scope          Scope
	eventStore     events.EventStore
}

// NewStore creates an inactive store with empty snapshots
func NewStore(opts ...Option) *Store {
	s := &Store{
		id:        uuid.NewString(),
		original:  entities.Snapshot{}.Clone(),
		simulated: entities.Snapshot{}.Clone(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the scenario id, also used as the event stream id
func (s *Store) ID() string {
	return s.id
}

// Original returns a copy of the baseline snapshot
func (s *Store) Original() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original.Clone()
}

// Simulated returns a copy of the draft snapshot
func (s *Store) Simulated() entities.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.simulated.Clone()
}

// IsSimulationMode reports whether a scenario is being edited
func (s *Store) IsSimulationMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.simulationMode
}

// IsWindowOpen reports the editor visibility flag
func (s *Store) IsWindowOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windowOpen
}

// Scope returns the current scenario context
func (s *Store) Scope() Scope {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scope
}

// OpenWindow shows the editor. It never touches scenario data.
func (s *Store) OpenWindow() {
	s.mu.Lock()
	s.windowOpen = true
	s.mu.Unlock()
}

// CloseWindow hides the editor. It never touches scenario data.
func (s *Store) CloseWindow() {
	s.mu.Lock()
	s.windowOpen = false
	s.mu.Unlock()
}

// StartSimulation enters simulation mode and closes the editor. A non-empty
// scope replaces the current scenario context.
func (s *Store) StartSimulation(scope Scope) {
	s.mu.Lock()
	s.simulationMode = true
	s.windowOpen = false
	if scope != (Scope{}) {
		s.scope = scope
	}
	current := s.scope
	s.mu.Unlock()

	s.publish(events.SimulationStartedEvent, events.SimulationStarted{
		Perimetre: current.Perimetre,
		Label:     current.Label,
	})
}

// SetScenarioContext records the scope shown alongside the scenario
func (s *Store) SetScenarioContext(scope Scope) {
	s.mu.Lock()
	s.scope = scope
	s.mu.Unlock()

	s.publish(events.ScenarioContextEvent, events.ScenarioContextUpdated{
		Perimetre: scope.Perimetre,
		Label:     scope.Label,
	})
}

// ExitSimulation leaves simulation mode and discards every draft edit
func (s *Store) ExitSimulation() {
	s.mu.Lock()
	discarded := !s.original.Equal(s.simulated)
	s.simulationMode = false
	s.windowOpen = false
	s.simulated = s.original.Clone()
	s.mu.Unlock()

	s.publish(events.SimulationExitedEvent, events.SimulationExited{DiscardedChanges: discarded})
}

// ResetToOriginal discards every draft edit but stays in simulation mode
func (s *Store) ResetToOriginal() {
	s.mu.Lock()
	discarded := !s.original.Equal(s.simulated)
	s.simulated = s.original.Clone()
	s.mu.Unlock()

	s.publish(events.ScenarioResetEvent, events.ScenarioReset{DiscardedChanges: discarded})
}

// HasChanges reports whether the draft differs structurally from the baseline
func (s *Store) HasChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.original.Equal(s.simulated)
}

// InitializeFromExistingData seeds a fresh baseline from current figures.
// Prices are rounded to three decimals, evolution recomputed and intermediate
// points regenerated (cleared when no decoupage or period is set); the result
// becomes both the baseline and the draft. Nil collections are empty.
func (s *Store) InitializeFromExistingData(values []entities.ValueItem, volumes []entities.VolumeItem, packagingValues []entities.ValueItem, packagingVolumes []entities.VolumeItem) {
	baseline := entities.Snapshot{
		MPValues:         values,
		MPVolumes:        volumes,
		EmballageValues:  packagingValues,
		EmballageVolumes: packagingVolumes,
	}.Clone()

	for _, kind := range []entities.CollectionKind{entities.MP, entities.Packaging} {
		items := *baseline.Values(kind)
		for i := range items {
			items[i].Normalize()
			services.RefreshIntermediatePrices(&items[i])
		}
	}

	s.mu.Lock()
	s.original = baseline
	s.simulated = baseline.Clone()
	s.mu.Unlock()

	s.publish(events.BaselineInitializedEvent, events.BaselineInitialized{
		MPValues:         len(baseline.MPValues),
		MPVolumes:        len(baseline.MPVolumes),
		EmballageValues:  len(baseline.EmballageValues),
		EmballageVolumes: len(baseline.EmballageVolumes),
	})
}

// ValidateTotals checks the draft volume shares
func (s *Store) ValidateTotals() services.TotalsValidation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return services.ValidateTotals(s.simulated)
}

func (s *Store) publish(eventType string, data interface{}) {
	if s.eventStore == nil {
		return
	}
	if err := s.eventStore.AppendEvent(s.id, events.NewEvent(eventType, data)); err != nil {
		log.Printf("scenario %s: %v", s.id, err)
	}
}

func notFound(kind entities.CollectionKind, what, id string) error {
	return fmt.Errorf("%w: %s %s %q", entities.ErrItemNotFound, kind, what, id)
}
