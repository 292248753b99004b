// Package script reads edit scripts: ordered scenario operations replayed
// against a scenario store, written in YAML.
package script

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/vsinha/pricesim/pkg/domain/entities"
)

// Operation names accepted in an edit script
const (
	OpSetPriceFirst        = "set_price_first"
	OpSetPriceLast         = "set_price_last"
	OpSetEvolution         = "set_evolution"
	OpSetPercentage        = "set_percentage"
	OpAddValue             = "add_value"
	OpAddVolume            = "add_volume"
	OpRemoveValue          = "remove_value"
	OpRemoveVolume         = "remove_volume"
	OpUpdateReference      = "update_reference"
	OpSetDecoupage         = "set_decoupage"
	OpSetIntermediatePrice = "set_intermediate_price"
	OpSetContext           = "set_context"
	OpReset                = "reset"
	OpExit                 = "exit"
)

var knownOps = map[string]bool{
	OpSetPriceFirst: true, OpSetPriceLast: true, OpSetEvolution: true, OpSetPercentage: true,
	OpAddValue: true, OpAddVolume: true, OpRemoveValue: true, OpRemoveVolume: true,
	OpUpdateReference: true, OpSetDecoupage: true, OpSetIntermediatePrice: true,
	OpSetContext: true, OpReset: true, OpExit: true,
}

// Edit is a single scripted operation. Which fields apply depends on Op.
type Edit struct {
	Op          string   `yaml:"op"`
	Collection  string   `yaml:"collection"`
	ID          string   `yaml:"id"`
	Value       *float64 `yaml:"value"`
	Code        string   `yaml:"code"`
	Label       string   `yaml:"label"`
	PriceFirst  *float64 `yaml:"price_first"`
	PriceLast   *float64 `yaml:"price_last"`
	Decoupage   string   `yaml:"decoupage"`
	From        string   `yaml:"from"`
	To          string   `yaml:"to"`
	PeriodIndex int      `yaml:"period_index"`
	Perimetre   string   `yaml:"perimetre"`
}

// Script is a named sequence of edits anchored to a scope
type Script struct {
	Perimetre string `yaml:"perimetre"`
	Label     string `yaml:"label"`
	Edits     []Edit `yaml:"edits"`
}

// Load reads and validates the edit script at filename
func Load(filename string) (*Script, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open edits file %s: %w", filename, err)
	}
	return Parse(data)
}

// Parse decodes and validates an edit script
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse edits: %w", err)
	}
	for i := range s.Edits {
		s.Edits[i].Op = strings.ToLower(strings.TrimSpace(s.Edits[i].Op))
		if err := s.Edits[i].validate(); err != nil {
			return nil, fmt.Errorf("edit %d: %w", i+1, err)
		}
	}
	return &s, nil
}

func (e Edit) validate() error {
	if !knownOps[e.Op] {
		return fmt.Errorf("unknown op %q", e.Op)
	}

	switch e.Op {
	case OpSetContext, OpReset, OpExit:
		return nil
	}

	if e.ID == "" {
		return fmt.Errorf("%s requires an id", e.Op)
	}

	switch e.Op {
	case OpSetPriceFirst, OpSetPriceLast, OpSetEvolution, OpSetPercentage, OpSetIntermediatePrice:
		if e.Value == nil {
			return fmt.Errorf("%s requires a value", e.Op)
		}
	case OpUpdateReference:
		if e.Code == "" || e.Label == "" {
			return fmt.Errorf("%s requires a code and a label", e.Op)
		}
	case OpSetDecoupage:
		if e.Decoupage == "" {
			return fmt.Errorf("%s requires a decoupage", e.Op)
		}
	}

	if _, err := entities.ParseCollectionKind(e.Collection); err != nil {
		return fmt.Errorf("%s: %w", e.Op, err)
	}
	return nil
}
