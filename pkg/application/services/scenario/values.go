package scenario

import (
	"fmt"

	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/services"
	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

// SetPriceFirst sets the draft start price of a value item and recomputes evolution
func (s *Store) SetPriceFirst(kind entities.CollectionKind, id string, price float64) error {
	return s.updateValue(kind, id, "priceFirst", func(item *entities.ValueItem) {
		item.SetPriceFirst(price)
	})
}

// SetPriceLast sets the draft end price of a value item and recomputes evolution
func (s *Store) SetPriceLast(kind entities.CollectionKind, id string, price float64) error {
	return s.updateValue(kind, id, "priceLast", func(item *entities.ValueItem) {
		item.SetPriceLast(price)
	})
}

// SetEvolution sets the draft percentage change of a value item and re-derives its end price
func (s *Store) SetEvolution(kind entities.CollectionKind, id string, evolution float64) error {
	return s.updateValue(kind, id, "evolution", func(item *entities.ValueItem) {
		item.SetEvolution(evolution)
	})
}

// SetDecoupage changes how the item's period is split and regenerates its
// intermediate prices. DecoupageNone or a nil period clears them.
func (s *Store) SetDecoupage(kind entities.CollectionKind, id string, mode entities.Decoupage, period *entities.Period) error {
	s.mu.Lock()
	item := s.simulated.FindValue(kind, id)
	if item == nil {
		s.mu.Unlock()
		return notFound(kind, "value", id)
	}
	item.Decoupage = mode
	item.Period = nil
	if mode != entities.DecoupageNone && period != nil {
		p := *period
		item.Period = &p
	}
	services.RefreshIntermediatePrices(item)
	points := len(item.IntermediatePrices)
	s.mu.Unlock()

	s.publish(events.DecoupageChangedEvent, events.DecoupageChanged{
		Collection: kind,
		ID:         id,
		Decoupage:  mode,
		Points:     points,
	})
	return nil
}

// SetIntermediatePrice edits one interpolated point. The first and last
// points are tied to the boundary prices, which follow the edit.
func (s *Store) SetIntermediatePrice(kind entities.CollectionKind, id string, periodIndex int, price float64) error {
	s.mu.Lock()
	item := s.simulated.FindValue(kind, id)
	if item == nil {
		s.mu.Unlock()
		return notFound(kind, "value", id)
	}
	before := item.Clone()
	if !services.UpdateIntermediatePrice(item, periodIndex, price) {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s value %q has no period index %d", entities.ErrItemNotFound, kind, id, periodIndex)
	}
	after := item.Clone()
	s.mu.Unlock()

	s.publish(events.ValueItemUpdatedEvent, events.ValueItemUpdated{
		Collection: kind,
		Field:      "intermediatePrice",
		OldItem:    before,
		NewItem:    after,
	})
	return nil
}

// AddValueItem appends item to the draft value collection. The baseline is
// untouched, so the item disappears on reset.
func (s *Store) AddValueItem(kind entities.CollectionKind, item entities.ValueItem) error {
	if item.ID == "" {
		return fmt.Errorf("value item id cannot be empty")
	}

	s.mu.Lock()
	if s.simulated.FindValue(kind, item.ID) != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s value %q", entities.ErrDuplicateItem, kind, item.ID)
	}
	added := item.Clone()
	values := s.simulated.Values(kind)
	*values = append(*values, added)
	s.mu.Unlock()

	s.publish(events.ValueItemAddedEvent, events.ValueItemAdded{Collection: kind, Item: added.Clone()})
	return nil
}

// RemoveValueItem drops the item with id from the draft value collection
func (s *Store) RemoveValueItem(kind entities.CollectionKind, id string) error {
	s.mu.Lock()
	values := s.simulated.Values(kind)
	kept := make([]entities.ValueItem, 0, len(*values))
	var removed *entities.ValueItem
	for i := range *values {
		if (*values)[i].ID == id {
			item := (*values)[i].Clone()
			removed = &item
			continue
		}
		kept = append(kept, (*values)[i])
	}
	if removed == nil {
		s.mu.Unlock()
		return notFound(kind, "value", id)
	}
	*values = kept
	s.mu.Unlock()

	s.publish(events.ValueItemRemovedEvent, events.ValueItemRemoved{Collection: kind, Item: *removed})
	return nil
}

// updateValue applies edit to a draft value item, refreshing the
// interpolated points when a decoupage is active.
func (s *Store) updateValue(kind entities.CollectionKind, id, field string, edit func(*entities.ValueItem)) error {
	s.mu.Lock()
	item := s.simulated.FindValue(kind, id)
	if item == nil {
		s.mu.Unlock()
		return notFound(kind, "value", id)
	}
	before := item.Clone()
	edit(item)
	if item.HasDecoupage() && item.Period != nil {
		services.RefreshIntermediatePrices(item)
	}
	after := item.Clone()
	s.mu.Unlock()

	s.publish(events.ValueItemUpdatedEvent, events.ValueItemUpdated{
		Collection: kind,
		Field:      field,
		OldItem:    before,
		NewItem:    after,
	})
	return nil
}
