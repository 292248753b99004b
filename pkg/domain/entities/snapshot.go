package entities

import (
	"fmt"
	"strings"
)

// CollectionKind selects the MP or the packaging pair of collections
type CollectionKind int

const (
	MP CollectionKind = iota
	Packaging
)

// String method for CollectionKind enum
func (k CollectionKind) String() string {
	switch k {
	case MP:
		return "mp"
	case Packaging:
		return "emballage"
	default:
		return "unknown"
	}
}

// ParseCollectionKind accepts "mp", "emballage" or "packaging"
func ParseCollectionKind(s string) (CollectionKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mp":
		return MP, nil
	case "emballage", "packaging":
		return Packaging, nil
	default:
		return MP, fmt.Errorf("invalid collection: %s (expected: mp or emballage)", s)
	}
}

// Snapshot holds the four collections of a scenario
type Snapshot struct {
	MPValues         []ValueItem  `json:"mpValues"`
	MPVolumes        []VolumeItem `json:"mpVolumes"`
	EmballageValues  []ValueItem  `json:"emballageValues"`
	EmballageVolumes []VolumeItem `json:"emballageVolumes"`
}

// Values returns a pointer to the value collection of the given kind
func (s *Snapshot) Values(kind CollectionKind) *[]ValueItem {
	if kind == Packaging {
		return &s.EmballageValues
	}
	return &s.MPValues
}

// Volumes returns a pointer to the volume collection of the given kind
func (s *Snapshot) Volumes(kind CollectionKind) *[]VolumeItem {
	if kind == Packaging {
		return &s.EmballageVolumes
	}
	return &s.MPVolumes
}

// FindValue returns the value item with the given id, or nil. The pointer
// refers into the snapshot's backing array, so edits through it are visible in s.
func (s Snapshot) FindValue(kind CollectionKind, id string) *ValueItem {
	items := *s.Values(kind)
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// FindVolume returns the volume item with the given id, or nil. The pointer
// refers into the snapshot's backing array.
func (s Snapshot) FindVolume(kind CollectionKind, id string) *VolumeItem {
	items := *s.Volumes(kind)
	for i := range items {
		if items[i].ID == id {
			return &items[i]
		}
	}
	return nil
}

// Clone returns a deep copy sharing no memory with s.
// Empty collections are normalized to non-nil slices.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		MPValues:         cloneValues(s.MPValues),
		MPVolumes:        cloneVolumes(s.MPVolumes),
		EmballageValues:  cloneValues(s.EmballageValues),
		EmballageVolumes: cloneVolumes(s.EmballageVolumes),
	}
}

// Equal reports structural equality of all four collections, order included
func (s Snapshot) Equal(other Snapshot) bool {
	return valuesEqual(s.MPValues, other.MPValues) &&
		volumesEqual(s.MPVolumes, other.MPVolumes) &&
		valuesEqual(s.EmballageValues, other.EmballageValues) &&
		volumesEqual(s.EmballageVolumes, other.EmballageVolumes)
}

func cloneValues(items []ValueItem) []ValueItem {
	out := make([]ValueItem, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func cloneVolumes(items []VolumeItem) []VolumeItem {
	out := make([]VolumeItem, len(items))
	copy(out, items)
	return out
}

func valuesEqual(a, b []ValueItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func volumesEqual(a, b []VolumeItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// MarshalText encodes the collection kind in its textual form
func (k CollectionKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes the textual form produced by MarshalText
func (k *CollectionKind) UnmarshalText(text []byte) error {
	parsed, err := ParseCollectionKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
