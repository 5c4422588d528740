package game

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/paigow/internal/paigow"
)

// Config represents the complete table configuration
type Config struct {
	Table   TableConfig
	Logging LoggingConfig
}

// TableConfig controls stakes and the dealer
type TableConfig struct {
	StartingBalance int    `hcl:"starting_balance,optional"`
	MinBet          int    `hcl:"min_bet,optional"`
	MaxBet          int    `hcl:"max_bet,optional"` // 0 means the whole balance
	DealerStrategy  string `hcl:"dealer_strategy,optional"`
	Seed            *int64 `hcl:"seed,optional"`
}

// LoggingConfig controls the log output
type LoggingConfig struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// fileConfig mirrors the HCL layout; both blocks may be omitted.
type fileConfig struct {
	Table   *TableConfig   `hcl:"table,block"`
	Logging *LoggingConfig `hcl:"logging,block"`
}

// DefaultConfig returns default table configuration
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{
			StartingBalance: 100,
			MinBet:          1,
			DealerStrategy:  paigow.TopFive{}.Name(),
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "paigow.log",
		},
	}
}

// LoadConfig loads configuration from an HCL file. A missing file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source and applies defaults for missing values
func ParseConfig(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw fileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := DefaultConfig()
	if t := raw.Table; t != nil {
		if t.StartingBalance != 0 {
			config.Table.StartingBalance = t.StartingBalance
		}
		if t.MinBet != 0 {
			config.Table.MinBet = t.MinBet
		}
		if t.DealerStrategy != "" {
			config.Table.DealerStrategy = t.DealerStrategy
		}
		config.Table.MaxBet = t.MaxBet
		config.Table.Seed = t.Seed
	}
	if l := raw.Logging; l != nil {
		if l.Level != "" {
			config.Logging.Level = l.Level
		}
		if l.File != "" {
			config.Logging.File = l.File
		}
	}
	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Table.Validate(); err != nil {
		return err
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %q", c.Logging.Level)
	}
	return nil
}

// Validate validates the table settings
func (t TableConfig) Validate() error {
	if t.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive, got %d", t.StartingBalance)
	}
	if t.MinBet <= 0 {
		return fmt.Errorf("minimum bet must be positive, got %d", t.MinBet)
	}
	if t.MaxBet != 0 && t.MaxBet < t.MinBet {
		return fmt.Errorf("maximum bet %d is below minimum bet %d", t.MaxBet, t.MinBet)
	}
	if _, err := paigow.StrategyByName(t.DealerStrategy); err != nil {
		return fmt.Errorf("dealer strategy: %w", err)
	}
	return nil
}
