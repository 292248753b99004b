package services

import (
	"testing"

	"github.com/vsinha/pricesim/pkg/domain/entities"
)

func volumes(percentages ...float64) []entities.VolumeItem {
	items := make([]entities.VolumeItem, len(percentages))
	for i, p := range percentages {
		items[i] = entities.VolumeItem{ID: string(rune('A' + i)), Percentage: p}
	}
	return items
}

func TestValidateTotals(t *testing.T) {
	testCases := []struct {
		name          string
		mp            []entities.VolumeItem
		packaging     []entities.VolumeItem
		mpValid       bool
		packValid     bool
		mpTotal       float64
		packagingSum  float64
		expectedError int
	}{
		{"balanced", volumes(40, 30, 30), volumes(100), true, true, 100, 100, 0},
		{"just short", volumes(40, 30, 29.99), nil, false, true, 99.99, 0, 1},
		{"within tolerance", volumes(33.333, 33.333, 33.333), nil, true, true, 99.999, 0, 0},
		{"float drift", volumes(0.1, 0.2, 99.7), nil, true, true, 100, 0, 0},
		{"over", volumes(60, 50), volumes(50, 40), false, false, 110, 90, 2},
		{"both empty", nil, nil, true, true, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ValidateTotals(entities.Snapshot{MPVolumes: tc.mp, EmballageVolumes: tc.packaging})
			if result.MPValid != tc.mpValid {
				t.Errorf("Expected mpValid %v, got %v", tc.mpValid, result.MPValid)
			}
			if result.PackagingValid != tc.packValid {
				t.Errorf("Expected packagingValid %v, got %v", tc.packValid, result.PackagingValid)
			}
			if result.MPTotal != tc.mpTotal {
				t.Errorf("Expected mpTotal %v, got %v", tc.mpTotal, result.MPTotal)
			}
			if result.PackagingTotal != tc.packagingSum {
				t.Errorf("Expected packagingTotal %v, got %v", tc.packagingSum, result.PackagingTotal)
			}
			if len(result.Errors()) != tc.expectedError {
				t.Errorf("Expected %d errors, got %v", tc.expectedError, result.Errors())
			}
			if result.Valid() != (tc.expectedError == 0) {
				t.Errorf("Expected Valid() to be %v", tc.expectedError == 0)
			}
		})
	}
}

func TestValidateTotals_HasItems(t *testing.T) {
	result := ValidateTotals(entities.Snapshot{MPVolumes: volumes(100)})
	if !result.MPHasItems || result.PackagingHasItems {
		t.Errorf("Expected MP to have items and packaging to be empty, got %+v", result)
	}
}

func TestTotalTolerance(t *testing.T) {
	if got := TotalTolerance().String(); got != "0.01" {
		t.Errorf("Expected tolerance 0.01, got %s", got)
	}

	_ = TotalTolerance().Add(TotalTolerance())
	if got := TotalTolerance().String(); got != "0.01" {
		t.Errorf("Expected tolerance to stay 0.01, got %s", got)
	}

	if ValidateTotals(entities.Snapshot{MPVolumes: volumes(50, 49.99)}).MPValid {
		t.Error("Expected a total exactly 0.01 away to be rejected")
	}
}
