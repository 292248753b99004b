package scenario

import (
	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/domain/services"
	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

// ReferenceUpdate renames a commodity and optionally re-prices it
type ReferenceUpdate struct {
	Code       string
	Label      string
	PriceFirst *float64
	PriceLast  *float64
}

// Repriced reports whether the update carries at least one price
func (u ReferenceUpdate) Repriced() bool {
	return u.PriceFirst != nil || u.PriceLast != nil
}

// UpdateReference changes the identity of the commodity id in the value and
// volume collections of kind, in both the baseline and the draft. Supplied
// prices are written to both snapshots and evolution is recomputed from them,
// so the renamed item starts from the same figures on either side.
func (s *Store) UpdateReference(kind entities.CollectionKind, id string, update ReferenceUpdate) error {
	s.mu.Lock()
	found := false
	for _, snapshot := range []*entities.Snapshot{&s.original, &s.simulated} {
		if item := snapshot.FindValue(kind, id); item != nil {
			found = true
			applyReference(item, update)
		}
		if item := snapshot.FindVolume(kind, id); item != nil {
			found = true
			item.Code = update.Code
			item.Label = update.Label
		}
	}
	s.mu.Unlock()

	if !found {
		return notFound(kind, "reference", id)
	}

	s.publish(events.ReferenceUpdatedEvent, events.ReferenceUpdated{
		Collection: kind,
		ID:         id,
		Code:       update.Code,
		Label:      update.Label,
		Repriced:   update.Repriced(),
	})
	return nil
}

func applyReference(item *entities.ValueItem, update ReferenceUpdate) {
	item.Code = update.Code
	item.Label = update.Label
	if !update.Repriced() {
		return
	}

	first, last := item.PriceFirst, item.PriceLast
	if update.PriceFirst != nil {
		first = *update.PriceFirst
	}
	if update.PriceLast != nil {
		last = *update.PriceLast
	}
	item.SetPrices(first, last)
	if item.HasDecoupage() && item.Period != nil {
		services.RefreshIntermediatePrices(item)
	}
}
