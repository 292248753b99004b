package services

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/pricesim/pkg/domain/entities"
)

// GenerateIntermediatePrices splits period according to mode and linearly
// interpolates a price for every sub-period start between first and last.
//
// The walk starts at period.From and advances by the decoupage step while
// the cursor is not past period.To. When the step does not divide the span
// evenly the last point falls before period.To; no extra point is inserted
// at the boundary. A period ending before it starts yields no points.
func GenerateIntermediatePrices(first, last float64, mode entities.Decoupage, period *entities.Period) []entities.IntermediatePrice {
	step := mode.StepMonths()
	if step == 0 || period == nil {
		return []entities.IntermediatePrice{}
	}

	totalMonths := period.From.MonthsUntil(period.To)
	start := decimal.NewFromFloat(first)
	delta := decimal.NewFromFloat(last).Sub(start)

	points := make([]entities.IntermediatePrice, 0)
	for cursor, index := period.From, 0; !period.To.Before(cursor); cursor, index = cursor.AddMonths(step), index+1 {
		monthsFromStart := period.From.MonthsUntil(cursor)
		price := start
		if totalMonths > 0 {
			ratio := decimal.NewFromInt(int64(monthsFromStart)).Div(decimal.NewFromInt(int64(totalMonths)))
			price = start.Add(delta.Mul(ratio))
		}
		points = append(points, entities.IntermediatePrice{
			PeriodIndex: index,
			Date:        cursor,
			Price:       price.Round(entities.PricePrecision).InexactFloat64(),
		})
	}
	return points
}

// RefreshIntermediatePrices regenerates item's intermediate prices from its
// current boundary prices, decoupage and period.
func RefreshIntermediatePrices(item *entities.ValueItem) {
	item.IntermediatePrices = GenerateIntermediatePrices(item.PriceFirst, item.PriceLast, item.Decoupage, item.Period)
}

// UpdateIntermediatePrice replaces the price of the point at periodIndex.
// Editing the first or last point also moves the matching boundary price,
// after which evolution is recomputed. It reports whether the point exists.
func UpdateIntermediatePrice(item *entities.ValueItem, periodIndex int, price float64) bool {
	pos := -1
	for i := range item.IntermediatePrices {
		if item.IntermediatePrices[i].PeriodIndex == periodIndex {
			pos = i
			break
		}
	}
	if pos < 0 {
		return false
	}

	item.IntermediatePrices[pos].Price = price
	first, last := item.PriceFirst, item.PriceLast
	if pos == 0 {
		first = price
	}
	if pos == len(item.IntermediatePrices)-1 {
		last = price
	}
	item.SetPrices(first, last)
	return true
}
