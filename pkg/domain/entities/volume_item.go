package entities

import "fmt"

// VolumeItem is the share of total volume attributed to a line item.
// Percentage is stored verbatim; the 100% sum is only checked on validation.
type VolumeItem struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Code       string  `json:"code"`
	Percentage float64 `json:"percentage"`
}

// NewVolumeItem creates a validated VolumeItem
func NewVolumeItem(id, code, label string, percentage float64) (*VolumeItem, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}
	return &VolumeItem{ID: id, Label: label, Code: code, Percentage: percentage}, nil
}
