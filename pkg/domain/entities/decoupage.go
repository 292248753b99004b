package entities

import (
	"fmt"
	"strings"
)

// Decoupage describes how an analysis period is split into sub-periods
type Decoupage int

const (
	DecoupageNone Decoupage = iota
	DecoupageOneMonth
	DecoupageThreeMonths
	DecoupageSixMonths
	DecoupageOneYear
)

// String method for Decoupage enum
func (d Decoupage) String() string {
	switch d {
	case DecoupageNone:
		return "none"
	case DecoupageOneMonth:
		return "1month"
	case DecoupageThreeMonths:
		return "3months"
	case DecoupageSixMonths:
		return "6months"
	case DecoupageOneYear:
		return "1year"
	default:
		return "unknown"
	}
}

// StepMonths returns the sub-period length in months, 0 for DecoupageNone
func (d Decoupage) StepMonths() int {
	switch d {
	case DecoupageOneMonth:
		return 1
	case DecoupageThreeMonths:
		return 3
	case DecoupageSixMonths:
		return 6
	case DecoupageOneYear:
		return 12
	default:
		return 0
	}
}

// ParseDecoupage converts the textual form used by edit scripts and CSV files
func ParseDecoupage(s string) (Decoupage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DecoupageNone, nil
	case "1month":
		return DecoupageOneMonth, nil
	case "3months":
		return DecoupageThreeMonths, nil
	case "6months":
		return DecoupageSixMonths, nil
	case "1year":
		return DecoupageOneYear, nil
	default:
		return DecoupageNone, fmt.Errorf("invalid decoupage: %s (expected: none, 1month, 3months, 6months or 1year)", s)
	}
}

// MonthYear identifies a calendar month
type MonthYear struct {
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// NewMonthYear creates a validated MonthYear
func NewMonthYear(month, year int) (MonthYear, error) {
	if month < 1 || month > 12 {
		return MonthYear{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	return MonthYear{Month: month, Year: year}, nil
}

// AddMonths returns the month n months after m
func (m MonthYear) AddMonths(n int) MonthYear {
	idx := m.index() + n
	return MonthYear{Month: idx%12 + 1, Year: idx / 12}
}

// Before reports whether m is strictly earlier than other
func (m MonthYear) Before(other MonthYear) bool {
	return m.index() < other.index()
}

// MonthsUntil returns the whole-month distance from m to other (negative if other is earlier)
func (m MonthYear) MonthsUntil(other MonthYear) int {
	return other.index() - m.index()
}

func (m MonthYear) index() int {
	return m.Year*12 + m.Month - 1
}

func (m MonthYear) String() string {
	return fmt.Sprintf("%02d/%d", m.Month, m.Year)
}

// Period is the analysis window a decoupage is applied to
type Period struct {
	From MonthYear `json:"from" yaml:"from"`
	To   MonthYear `json:"to" yaml:"to"`
}

// MarshalText encodes the decoupage in its textual form
func (d Decoupage) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes the textual form produced by MarshalText
func (d *Decoupage) UnmarshalText(text []byte) error {
	parsed, err := ParseDecoupage(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
