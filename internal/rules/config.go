package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mcoot/castlewars/internal/model"
)

// Config holds the tunable economy and match settings
type Config struct {
	// StartingGold is each player's balance at game creation
	StartingGold int `yaml:"starting_gold" json:"starting_gold"`
	// PriceGrowth multiplies a unit's price for every earlier purchase of the same kind.
	// 1.0 gives fixed prices.
	PriceGrowth float64 `yaml:"price_growth" json:"price_growth"`
	// FarmerIncome is the gold a farmer earns its owner each turn
	FarmerIncome int `yaml:"farmer_income" json:"farmer_income"`
	// MaxTurns caps the match loop
	MaxTurns int `yaml:"max_turns" json:"max_turns"`
	// Opponents are the names of the scripted players
	Opponents []string `yaml:"opponents" json:"opponents"`
}

// DefaultConfig returns the standard rules: escalating prices, two computer opponents
func DefaultConfig() Config {
	return Config{
		StartingGold: 5,
		PriceGrowth:  1.2,
		FarmerIncome: 1,
		MaxTurns:     1000,
		Opponents:    []string{"Alice", "Bob"},
	}
}

// FixedPriceConfig returns the default rules with non-escalating prices
func FixedPriceConfig() Config {
	cfg := DefaultConfig()
	cfg.PriceGrowth = 1.0
	return cfg
}

// Validate checks that all settings are usable
func (c Config) Validate() error {
	if c.StartingGold < 0 {
		return fmt.Errorf("%w: starting_gold must not be negative", model.ErrInvalidRules)
	}
	if c.PriceGrowth < 1.0 {
		return fmt.Errorf("%w: price_growth must be at least 1.0", model.ErrInvalidRules)
	}
	if c.FarmerIncome < 0 {
		return fmt.Errorf("%w: farmer_income must not be negative", model.ErrInvalidRules)
	}
	if c.MaxTurns <= 0 {
		return fmt.Errorf("%w: max_turns must be positive", model.ErrInvalidRules)
	}
	return nil
}

// Load reads a YAML rules file. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(b)
}

// Parse decodes YAML rules on top of the defaults
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse rules: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
