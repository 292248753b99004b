package commands

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment keys read as defaults when the matching flag is not set
const (
	EnvScenarioDir = "PRICESIM_SCENARIO_DIR"
	EnvEdits       = "PRICESIM_EDITS"
	EnvFormat      = "PRICESIM_FORMAT"
	EnvOutputDir   = "PRICESIM_OUTPUT_DIR"
)

// Config holds configuration for the simulate command
type Config struct {
	ScenarioDir string
	EditsFile   string
	OutputDir   string
	Format      string
	EnvFile     string
	Perimetre   string
	Label       string
	Verbose     bool
	Progress    bool
	Metrics     bool
	Help        bool
}

// LoadEnv loads c.EnvFile (if present) into the process environment and
// fills every empty setting from it. Flags always win.
func (c *Config) LoadEnv() error {
	if c.EnvFile != "" {
		if err := godotenv.Load(c.EnvFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to load env file %s: %w", c.EnvFile, err)
		}
	}

	fill := func(target *string, key string) {
		if *target == "" {
			*target = os.Getenv(key)
		}
	}
	fill(&c.ScenarioDir, EnvScenarioDir)
	fill(&c.EditsFile, EnvEdits)
	fill(&c.Format, EnvFormat)
	fill(&c.OutputDir, EnvOutputDir)

	if c.Format == "" {
		c.Format = "text"
	}
	return nil
}
