package entities

import "fmt"

// IntermediatePrice is one interpolated point inside a split period
type IntermediatePrice struct {
	PeriodIndex int       `json:"periodIndex"`
	Date        MonthYear `json:"date"`
	Price       float64   `json:"price"`
}

// ValueItem is a priced line item (MP or packaging) with derived evolution.
// PriceFirst, PriceLast and Evolution are kept mutually consistent: whichever
// one is edited, the other two are recomputed from it.
type ValueItem struct {
	ID                 string              `json:"id"`
	Label              string              `json:"label"`
	Code               string              `json:"code"`
	PriceFirst         float64             `json:"priceFirst"`
	PriceLast          float64             `json:"priceLast"`
	Evolution          float64             `json:"evolution"`
	Decoupage          Decoupage           `json:"decoupage"`
	Period             *Period             `json:"period,omitempty"`
	IntermediatePrices []IntermediatePrice `json:"intermediatePrices,omitempty"`
}

// NewValueItem creates a validated ValueItem with rounded prices and derived evolution
func NewValueItem(id, code, label string, priceFirst, priceLast float64) (*ValueItem, error) {
	if id == "" {
		return nil, fmt.Errorf("id cannot be empty")
	}
	item := &ValueItem{
		ID:    id,
		Label: label,
		Code:  code,
	}
	item.SetPrices(RoundPrice(priceFirst), RoundPrice(priceLast))
	return item, nil
}

// SetPriceFirst sets the start price and recomputes evolution
func (v *ValueItem) SetPriceFirst(price float64) {
	v.PriceFirst = price
	v.Evolution = Evolution(v.PriceFirst, v.PriceLast)
}

// SetPriceLast sets the end price and recomputes evolution
func (v *ValueItem) SetPriceLast(price float64) {
	v.PriceLast = price
	v.Evolution = Evolution(v.PriceFirst, v.PriceLast)
}

// SetEvolution sets the percentage change and re-derives the end price
func (v *ValueItem) SetEvolution(evolution float64) {
	v.Evolution = evolution
	v.PriceLast = PriceFromEvolution(v.PriceFirst, evolution)
}

// SetPrices replaces both boundary prices and recomputes evolution
func (v *ValueItem) SetPrices(first, last float64) {
	v.PriceFirst = first
	v.PriceLast = last
	v.Evolution = Evolution(first, last)
}

// Normalize rounds both prices to PricePrecision and recomputes evolution
func (v *ValueItem) Normalize() {
	v.SetPrices(RoundPrice(v.PriceFirst), RoundPrice(v.PriceLast))
}

// HasDecoupage reports whether the item's period is split into sub-periods
func (v *ValueItem) HasDecoupage() bool {
	return v.Decoupage != DecoupageNone
}

// Clone returns a deep copy of the item
func (v ValueItem) Clone() ValueItem {
	out := v
	if v.Period != nil {
		p := *v.Period
		out.Period = &p
	}
	if v.IntermediatePrices != nil {
		out.IntermediatePrices = make([]IntermediatePrice, len(v.IntermediatePrices))
		copy(out.IntermediatePrices, v.IntermediatePrices)
	}
	return out
}

// Equal reports structural equality with another item
func (v ValueItem) Equal(other ValueItem) bool {
	if v.ID != other.ID || v.Label != other.Label || v.Code != other.Code ||
		v.PriceFirst != other.PriceFirst || v.PriceLast != other.PriceLast ||
		v.Evolution != other.Evolution || v.Decoupage != other.Decoupage {
		return false
	}
	if (v.Period == nil) != (other.Period == nil) {
		return false
	}
	if v.Period != nil && *v.Period != *other.Period {
		return false
	}
	if len(v.IntermediatePrices) != len(other.IntermediatePrices) {
		return false
	}
	for i := range v.IntermediatePrices {
		if v.IntermediatePrices[i] != other.IntermediatePrices[i] {
			return false
		}
	}
	return true
}
