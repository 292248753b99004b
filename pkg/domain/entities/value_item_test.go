package entities

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func TestValueItem_Validation(t *testing.T) {
	item, err := NewValueItem("SUGAR", "SUG", "Sucre", 0.8504, 0.9)
	if err != nil {
		t.Fatalf("Expected valid item creation to succeed: %v", err)
	}
	if item.PriceFirst != 0.85 {
		t.Errorf("Expected price first rounded to 0.85, got %v", item.PriceFirst)
	}
	if math.Abs(item.Evolution-Evolution(0.85, 0.9)) > tolerance {
		t.Errorf("Expected evolution derived from rounded prices, got %v", item.Evolution)
	}

	if _, err := NewValueItem("", "SUG", "Sucre", 1, 1); err == nil {
		t.Error("Expected error for empty id, got none")
	}
}

func TestValueItem_PriceSettersRecomputeEvolution(t *testing.T) {
	testCases := []struct {
		name      string
		first     float64
		last      float64
		evolution float64
	}{
		{"increase", 100, 150, 50},
		{"decrease", 200, 150, -25},
		{"flat", 12.5, 12.5, 0},
		{"zero first price", 0, 42, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			item := ValueItem{ID: "X", PriceFirst: 1, PriceLast: 1}
			item.SetPriceLast(tc.last)
			item.SetPriceFirst(tc.first)
			if math.Abs(item.Evolution-tc.evolution) > tolerance {
				t.Errorf("Expected evolution %v, got %v", tc.evolution, item.Evolution)
			}
		})
	}
}

func TestValueItem_SetEvolution(t *testing.T) {
	item := ValueItem{ID: "X", PriceFirst: 10, PriceLast: 10}
	item.SetEvolution(20)
	if item.PriceLast != 12 {
		t.Errorf("Expected price last 12, got %v", item.PriceLast)
	}

	item = ValueItem{ID: "X", PriceFirst: 3, PriceLast: 3}
	item.SetEvolution(-33.333)
	if item.PriceLast != 2 {
		t.Errorf("Expected price last rounded to 2, got %v", item.PriceLast)
	}
	if item.Evolution != -33.333 {
		t.Errorf("Expected evolution kept verbatim, got %v", item.Evolution)
	}
}

func TestValueItem_EvolutionRoundTrip(t *testing.T) {
	pairs := [][2]float64{{12.5, 13.75}, {0.853, 0.912}, {1450, 1210.5}, {7.001, 7.002}}
	for _, p := range pairs {
		item := ValueItem{ID: "X"}
		item.SetPriceFirst(p[0])
		item.SetPriceLast(p[1])
		item.SetEvolution(item.Evolution)
		if item.PriceLast != p[1] {
			t.Errorf("Expected round trip to keep price last %v, got %v", p[1], item.PriceLast)
		}
	}
}

func TestValueItem_CloneIsIndependent(t *testing.T) {
	item := ValueItem{
		ID:        "X",
		Decoupage: DecoupageOneMonth,
		Period:    &Period{From: MonthYear{1, 2024}, To: MonthYear{3, 2024}},
		IntermediatePrices: []IntermediatePrice{
			{PeriodIndex: 0, Date: MonthYear{1, 2024}, Price: 1},
		},
	}
	clone := item.Clone()
	if !clone.Equal(item) {
		t.Fatal("Expected clone to equal original")
	}

	clone.Period.To = MonthYear{6, 2024}
	clone.IntermediatePrices[0].Price = 5
	if item.Period.To.Month != 3 || item.IntermediatePrices[0].Price != 1 {
		t.Error("Expected clone mutations not to leak into original")
	}
	if clone.Equal(item) {
		t.Error("Expected modified clone to differ from original")
	}
}

func TestRoundPrice(t *testing.T) {
	testCases := []struct {
		in   float64
		want float64
	}{
		{1.2345, 1.235},
		{2.0004, 2},
		{0.1 + 0.2, 0.3},
		{-1.2345, -1.235},
	}
	for _, tc := range testCases {
		if got := RoundPrice(tc.in); got != tc.want {
			t.Errorf("RoundPrice(%v): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}
