package repositories

import "github.com/vsinha/pricesim/pkg/domain/entities"

// BaselineRepository provides access to the current (non-simulated) figures
// a scenario is seeded from
type BaselineRepository interface {
	GetValueItem(kind entities.CollectionKind, id string) (*entities.ValueItem, error)
	GetValueItems(kind entities.CollectionKind) ([]entities.ValueItem, error)
	GetVolumeItems(kind entities.CollectionKind) ([]entities.VolumeItem, error)
	LoadValueItems(kind entities.CollectionKind, items []entities.ValueItem) error
	LoadVolumeItems(kind entities.CollectionKind, items []entities.VolumeItem) error
}
