package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vsinha/pricesim/pkg/domain/entities"
)

var (
	valuesHeader  = []string{"id", "code", "label", "price_first", "price_last", "decoupage", "period_from", "period_to"}
	volumesHeader = []string{"id", "code", "label", "percentage"}
)

// Loader handles loading baseline scenario figures from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadValues loads value items from a CSV file.
// The decoupage and period columns may be left empty.
func (l *Loader) LoadValues(filename string) ([]entities.ValueItem, error) {
	records, err := readRecords(filename, "values", valuesHeader)
	if err != nil {
		return nil, err
	}

	items := make([]entities.ValueItem, 0, len(records))
	for i, record := range records {
		item, err := parseValueItem(record)
		if err != nil {
			return nil, fmt.Errorf("values CSV row %d: %w", i+2, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// LoadVolumes loads volume items from a CSV file
func (l *Loader) LoadVolumes(filename string) ([]entities.VolumeItem, error) {
	records, err := readRecords(filename, "volumes", volumesHeader)
	if err != nil {
		return nil, err
	}

	items := make([]entities.VolumeItem, 0, len(records))
	for i, record := range records {
		percentage, err := parseNumber(record[3])
		if err != nil {
			return nil, fmt.Errorf("volumes CSV row %d: invalid percentage: %s", i+2, record[3])
		}
		item, err := entities.NewVolumeItem(record[0], record[1], record[2], percentage)
		if err != nil {
			return nil, fmt.Errorf("volumes CSV row %d: %w", i+2, err)
		}
		items = append(items, *item)
	}

	return items, nil
}

// readRecords returns the data rows of filename after checking its header
// and the column count of every row. A header-only file yields no rows.
func readRecords(filename, kind string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", kind, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", kind, err)
	}

	if len(records) < 1 {
		return nil, fmt.Errorf("%s CSV must have a header row", kind)
	}

	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v", kind, expectedHeader, header)
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d", kind, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

// Helper functions for parsing CSV records

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}

func parseValueItem(record []string) (entities.ValueItem, error) {
	priceFirst, err := parseNumber(record[3])
	if err != nil {
		return entities.ValueItem{}, fmt.Errorf("invalid price_first: %s", record[3])
	}

	priceLast, err := parseNumber(record[4])
	if err != nil {
		return entities.ValueItem{}, fmt.Errorf("invalid price_last: %s", record[4])
	}

	item, err := entities.NewValueItem(record[0], record[1], record[2], priceFirst, priceLast)
	if err != nil {
		return entities.ValueItem{}, err
	}

	item.Decoupage, err = entities.ParseDecoupage(record[5])
	if err != nil {
		return entities.ValueItem{}, err
	}

	from, to := strings.TrimSpace(record[6]), strings.TrimSpace(record[7])
	if from == "" && to == "" {
		return *item, nil
	}
	period, err := ParsePeriod(from, to)
	if err != nil {
		return entities.ValueItem{}, err
	}
	item.Period = period

	return *item, nil
}

func parseNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

// ParseMonthYear parses a YYYY-MM month
func ParseMonthYear(s string) (entities.MonthYear, error) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return entities.MonthYear{}, fmt.Errorf("invalid month format: %s (expected YYYY-MM)", s)
	}
	return entities.MonthYear{Month: int(t.Month()), Year: t.Year()}, nil
}

// ParsePeriod parses a pair of YYYY-MM months; both bounds are required
func ParsePeriod(from, to string) (*entities.Period, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, fmt.Errorf("period needs both a start and an end month")
	}
	start, err := ParseMonthYear(from)
	if err != nil {
		return nil, err
	}
	end, err := ParseMonthYear(to)
	if err != nil {
		return nil, err
	}
	return &entities.Period{From: start, To: end}, nil
}
