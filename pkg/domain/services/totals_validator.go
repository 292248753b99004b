package services

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pricesim/pkg/domain/entities"
)

// TotalTarget is the sum every non-empty volume collection must reach
const TotalTarget = 100

// TotalTolerance returns the accepted distance between a volume sum and TotalTarget (0.01)
func TotalTolerance() decimal.Decimal {
	return decimal.New(1, -2)
}

// TotalsValidation contains the results of the volume share check
type TotalsValidation struct {
	MPValid           bool
	PackagingValid    bool
	MPTotal           float64
	PackagingTotal    float64
	MPHasItems        bool
	PackagingHasItems bool
}

// Valid reports whether both collections passed
func (v TotalsValidation) Valid() bool {
	return v.MPValid && v.PackagingValid
}

// Errors lists a message per failing collection with its actual total
func (v TotalsValidation) Errors() []string {
	errs := make([]string, 0)
	if !v.MPValid {
		errs = append(errs, fmt.Sprintf("MP volumes total %.2f%% instead of %d%%", v.MPTotal, TotalTarget))
	}
	if !v.PackagingValid {
		errs = append(errs, fmt.Sprintf("Emballage volumes total %.2f%% instead of %d%%", v.PackagingTotal, TotalTarget))
	}
	return errs
}

// ValidateTotals checks that the volume shares of each non-empty volume
// collection of snapshot sum to 100%. Empty collections always pass.
func ValidateTotals(snapshot entities.Snapshot) TotalsValidation {
	mpTotal, mpValid := checkVolumes(snapshot.MPVolumes)
	packTotal, packValid := checkVolumes(snapshot.EmballageVolumes)

	return TotalsValidation{
		MPValid:           mpValid,
		PackagingValid:    packValid,
		MPTotal:           mpTotal.InexactFloat64(),
		PackagingTotal:    packTotal.InexactFloat64(),
		MPHasItems:        len(snapshot.MPVolumes) > 0,
		PackagingHasItems: len(snapshot.EmballageVolumes) > 0,
	}
}

// SumPercentages adds the volume shares of items exactly
func SumPercentages(items []entities.VolumeItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.Percentage))
	}
	return total
}

func checkVolumes(items []entities.VolumeItem) (decimal.Decimal, bool) {
	total := SumPercentages(items)
	if len(items) == 0 {
		return total, true
	}
	diff := total.Sub(decimal.NewFromInt(TotalTarget)).Abs()
	return total, diff.LessThan(TotalTolerance())
}
