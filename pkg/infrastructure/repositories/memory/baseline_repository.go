package memory

import (
	"fmt"

	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/repositories"
)

// BaselineRepository provides in-memory storage of baseline figures
type BaselineRepository struct {
	values    map[entities.CollectionKind][]entities.ValueItem
	valuesMap map[entities.CollectionKind]map[string]int
	volumes   map[entities.CollectionKind][]entities.VolumeItem
}

// NewBaselineRepository creates a new in-memory baseline repository
func NewBaselineRepository() *BaselineRepository {
	return &BaselineRepository{
		values:    make(map[entities.CollectionKind][]entities.ValueItem),
		valuesMap: make(map[entities.CollectionKind]map[string]int),
		volumes:   make(map[entities.CollectionKind][]entities.VolumeItem),
	}
}

// Verify interface compliance
var _ repositories.BaselineRepository = (*BaselineRepository)(nil)

// LoadValueItems appends value items to the collection of kind, rejecting duplicate ids
func (r *BaselineRepository) LoadValueItems(kind entities.CollectionKind, items []entities.ValueItem) error {
	for _, item := range items {
		if err := r.AddValueItem(kind, item); err != nil {
			return err
		}
	}
	return nil
}

// AddValueItem adds a value item to the collection of kind
func (r *BaselineRepository) AddValueItem(kind entities.CollectionKind, item entities.ValueItem) error {
	index, ok := r.valuesMap[kind]
	if !ok {
		index = make(map[string]int)
		r.valuesMap[kind] = index
	}
	if _, exists := index[item.ID]; exists {
		return fmt.Errorf("%w: %s value %q", entities.ErrDuplicateItem, kind, item.ID)
	}
	index[item.ID] = len(r.values[kind])
	r.values[kind] = append(r.values[kind], item.Clone())
	return nil
}

// LoadVolumeItems appends volume items to the collection of kind, rejecting duplicate ids
func (r *BaselineRepository) LoadVolumeItems(kind entities.CollectionKind, items []entities.VolumeItem) error {
	seen := make(map[string]bool, len(r.volumes[kind]))
	for _, item := range r.volumes[kind] {
		seen[item.ID] = true
	}
	for _, item := range items {
		if seen[item.ID] {
			return fmt.Errorf("%w: %s volume %q", entities.ErrDuplicateItem, kind, item.ID)
		}
		seen[item.ID] = true
		r.volumes[kind] = append(r.volumes[kind], item)
	}
	return nil
}

// GetValueItem returns a copy of the value item with id
func (r *BaselineRepository) GetValueItem(kind entities.CollectionKind, id string) (*entities.ValueItem, error) {
	index, exists := r.valuesMap[kind][id]
	if !exists {
		return nil, fmt.Errorf("%w: %s value %q", entities.ErrItemNotFound, kind, id)
	}
	item := r.values[kind][index].Clone()
	return &item, nil
}

// GetValueItems returns copies of every value item of kind, in load order
func (r *BaselineRepository) GetValueItems(kind entities.CollectionKind) ([]entities.ValueItem, error) {
	items := make([]entities.ValueItem, len(r.values[kind]))
	for i := range r.values[kind] {
		items[i] = r.values[kind][i].Clone()
	}
	return items, nil
}

// GetVolumeItems returns copies of every volume item of kind, in load order
func (r *BaselineRepository) GetVolumeItems(kind entities.CollectionKind) ([]entities.VolumeItem, error) {
	return append([]entities.VolumeItem{}, r.volumes[kind]...), nil
}
