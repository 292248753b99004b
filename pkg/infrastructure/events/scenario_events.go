package events

import (
	"github.com/vsinha/pricesim/pkg/domain/entities"
)

const (
	SimulationStartedEvent   = "simulation.started"
	SimulationExitedEvent    = "simulation.exited"
	ScenarioResetEvent       = "scenario.reset"
	ScenarioContextEvent     = "scenario.context.updated"
	BaselineInitializedEvent = "baseline.initialized"

	ValueItemUpdatedEvent = "value.updated"
	ValueItemAddedEvent   = "value.added"
	ValueItemRemovedEvent = "value.removed"
	DecoupageChangedEvent = "value.decoupage.changed"
	ReferenceUpdatedEvent = "reference.updated"

	VolumeItemUpdatedEvent = "volume.updated"
	VolumeItemAddedEvent   = "volume.added"
	VolumeItemRemovedEvent = "volume.removed"
)

// AllEventTypes lists every event type the scenario store emits
var AllEventTypes = []string{
	SimulationStartedEvent,
	SimulationExitedEvent,
	ScenarioResetEvent,
	ScenarioContextEvent,
	BaselineInitializedEvent,
	ValueItemUpdatedEvent,
	ValueItemAddedEvent,
	ValueItemRemovedEvent,
	DecoupageChangedEvent,
	ReferenceUpdatedEvent,
	VolumeItemUpdatedEvent,
	VolumeItemAddedEvent,
	VolumeItemRemovedEvent,
}

type SimulationStarted struct {
	Perimetre string `json:"perimetre"`
	Label     string `json:"label"`
}

type SimulationExited struct {
	DiscardedChanges bool `json:"discarded_changes"`
}

type ScenarioReset struct {
	DiscardedChanges bool `json:"discarded_changes"`
}

type ScenarioContextUpdated struct {
	Perimetre string `json:"perimetre"`
	Label     string `json:"label"`
}

type BaselineInitialized struct {
	MPValues         int `json:"mp_values"`
	MPVolumes        int `json:"mp_volumes"`
	EmballageValues  int `json:"emballage_values"`
	EmballageVolumes int `json:"emballage_volumes"`
}

// ValueItemUpdated records a price, evolution or intermediate price edit
type ValueItemUpdated struct {
	Collection entities.CollectionKind `json:"collection"`
	Field      string                  `json:"field"`
	OldItem    entities.ValueItem      `json:"old_item"`
	NewItem    entities.ValueItem      `json:"new_item"`
}

type ValueItemAdded struct {
	Collection entities.CollectionKind `json:"collection"`
	Item       entities.ValueItem      `json:"item"`
}

type ValueItemRemoved struct {
	Collection entities.CollectionKind `json:"collection"`
	Item       entities.ValueItem      `json:"item"`
}

type DecoupageChanged struct {
	Collection entities.CollectionKind `json:"collection"`
	ID         string                  `json:"id"`
	Decoupage  entities.Decoupage      `json:"decoupage"`
	Points     int                     `json:"points"`
}

type ReferenceUpdated struct {
	Collection entities.CollectionKind `json:"collection"`
	ID         string                  `json:"id"`
	Code       string                  `json:"code"`
	Label      string                  `json:"label"`
	Repriced   bool                    `json:"repriced"`
}

type VolumeItemUpdated struct {
	Collection entities.CollectionKind `json:"collection"`
	OldItem    entities.VolumeItem     `json:"old_item"`
	NewItem    entities.VolumeItem     `json:"new_item"`
}

type VolumeItemAdded struct {
	Collection entities.CollectionKind `json:"collection"`
	Item       entities.VolumeItem     `json:"item"`
}

type VolumeItemRemoved struct {
	Collection entities.CollectionKind `json:"collection"`
	Item       entities.VolumeItem     `json:"item"`
}
