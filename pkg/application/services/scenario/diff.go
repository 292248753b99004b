package scenario

import "github.com/vsinha/pricesim/pkg/domain/entities"

// ChangeType classifies how a draft item differs from the baseline
type ChangeType int

const (
	Modified ChangeType = iota
	Added
	Removed
)

// String method for ChangeType enum
func (c ChangeType) String() string {
	switch c {
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// MarshalText encodes the change type in its textual form
func (c ChangeType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Change is one item whose draft differs from the baseline
type Change struct {
	Collection entities.CollectionKind `json:"collection"`
	Volume     bool                    `json:"volume"`
	ID         string                  `json:"id"`
	Type       ChangeType              `json:"type"`
}

// Diff lists draft items that were modified, added or removed relative to
// the baseline, baseline order first, then additions in draft order.
func (s *Store) Diff() []Change {
	s.mu.RLock()
	defer s.mu.RUnlock()

	changes := make([]Change, 0)
	for _, kind := range []entities.CollectionKind{entities.MP, entities.Packaging} {
		changes = append(changes, diffValues(kind, *s.original.Values(kind), *s.simulated.Values(kind))...)
		changes = append(changes, diffVolumes(kind, *s.original.Volumes(kind), *s.simulated.Volumes(kind))...)
	}
	return changes
}

func diffValues(kind entities.CollectionKind, original, simulated []entities.ValueItem) []Change {
	var changes []Change
	draft := make(map[string]entities.ValueItem, len(simulated))
	for _, item := range simulated {
		draft[item.ID] = item
	}
	seen := make(map[string]bool, len(original))
	for _, item := range original {
		seen[item.ID] = true
		current, ok := draft[item.ID]
		switch {
		case !ok:
			changes = append(changes, Change{Collection: kind, ID: item.ID, Type: Removed})
		case !current.Equal(item):
			changes = append(changes, Change{Collection: kind, ID: item.ID, Type: Modified})
		}
	}
	for _, item := range simulated {
		if !seen[item.ID] {
			changes = append(changes, Change{Collection: kind, ID: item.ID, Type: Added})
		}
	}
	return changes
}

func diffVolumes(kind entities.CollectionKind, original, simulated []entities.VolumeItem) []Change {
	var changes []Change
	draft := make(map[string]entities.VolumeItem, len(simulated))
	for _, item := range simulated {
		draft[item.ID] = item
	}
	seen := make(map[string]bool, len(original))
	for _, item := range original {
		seen[item.ID] = true
		current, ok := draft[item.ID]
		switch {
		case !ok:
			changes = append(changes, Change{Collection: kind, Volume: true, ID: item.ID, Type: Removed})
		case current != item:
			changes = append(changes, Change{Collection: kind, Volume: true, ID: item.ID, Type: Modified})
		}
	}
	for _, item := range simulated {
		if !seen[item.ID] {
			changes = append(changes, Change{Collection: kind, Volume: true, ID: item.ID, Type: Added})
		}
	}
	return changes
}
