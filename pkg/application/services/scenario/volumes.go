package scenario

import (
	"fmt"

	"github.com/vsinha/pricesim/pkg/domain/entities"
	"github.com/vsinha/pricesim/pkg/infrastructure/events"
)

// SetPercentage replaces a draft volume share verbatim. Sums are not
// normalized; see ValidateTotals.
func (s *Store) SetPercentage(kind entities.CollectionKind, id string, percentage float64) error {
	s.mu.Lock()
	item := s.simulated.FindVolume(kind, id)
	if item == nil {
		s.mu.Unlock()
		return notFound(kind, "volume", id)
	}
	before := *item
	item.Percentage = percentage
	after := *item
	s.mu.Unlock()

	s.publish(events.VolumeItemUpdatedEvent, events.VolumeItemUpdated{
		Collection: kind,
		OldItem:    before,
		NewItem:    after,
	})
	return nil
}

// AddVolumeItem appends item to the draft volume collection
func (s *Store) AddVolumeItem(kind entities.CollectionKind, item entities.VolumeItem) error {
	if item.ID == "" {
		return fmt.Errorf("volume item id cannot be empty")
	}

	s.mu.Lock()
	if s.simulated.FindVolume(kind, item.ID) != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s volume %q", entities.ErrDuplicateItem, kind, item.ID)
	}
	volumes := s.simulated.Volumes(kind)
	*volumes = append(*volumes, item)
	s.mu.Unlock()

	s.publish(events.VolumeItemAddedEvent, events.VolumeItemAdded{Collection: kind, Item: item})
	return nil
}

// RemoveVolumeItem drops the item with id from the draft volume collection
func (s *Store) RemoveVolumeItem(kind entities.CollectionKind, id string) error {
	s.mu.Lock()
	volumes := s.simulated.Volumes(kind)
	kept := make([]entities.VolumeItem, 0, len(*volumes))
	var removed *entities.VolumeItem
	for i := range *volumes {
		if (*volumes)[i].ID == id {
			item := (*volumes)[i]
			removed = &item
			continue
		}
		kept = append(kept, (*volumes)[i])
	}
	if removed == nil {
		s.mu.Unlock()
		return notFound(kind, "volume", id)
	}
	*volumes = kept
	s.mu.Unlock()

	s.publish(events.VolumeItemRemovedEvent, events.VolumeItemRemoved{Collection: kind, Item: *removed})
	return nil
}
