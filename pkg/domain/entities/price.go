package entities

import "github.com/shopspring/decimal"

// PricePrecision is the number of decimals kept on every stored price
const PricePrecision = 3

// RoundPrice rounds a price to PricePrecision decimals
func RoundPrice(v float64) float64 {
	return decimal.NewFromFloat(v).Round(PricePrecision).InexactFloat64()
}

// Evolution returns the percentage change from first to last.
// A zero first price yields 0 instead of an undefined ratio.
func Evolution(first, last float64) float64 {
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// PriceFromEvolution derives the end price from a start price and a percentage change
func PriceFromEvolution(first, evolution float64) float64 {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(evolution).Div(decimal.NewFromInt(100)))
	return decimal.NewFromFloat(first).Mul(factor).Round(PricePrecision).InexactFloat64()
}
