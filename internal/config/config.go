// Package config holds the editable normalization tables and import
// defaults, loaded once at process start and passed into the pipeline
// as plain values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level ledgerlift.yaml configuration.
type Config struct {
	Import    ImportConfig  `yaml:"import"`
	Suppliers SupplierRules `yaml:"suppliers"`
}

// ImportConfig carries fixed values stamped onto imported records.
type ImportConfig struct {
	DefaultCurrency string `yaml:"default_currency"`
	CreatedFrom     string `yaml:"created_from"`
}

// SupplierRules are the explicit supplier normalization tables. Merge
// maps known raw spellings to one canonical name; Review lists names
// known to be ambiguous. Both match case- and whitespace-sensitively.
type SupplierRules struct {
	Merge  map[string]string `yaml:"merge"`
	Review []string          `yaml:"review"`
}

// Load reads a ledgerlift.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the shipped normalization tables, as observed in the
// Hope and MC ledgers.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			DefaultCurrency: "GBP",
			CreatedFrom:     "legacy-import-v1",
		},
		Suppliers: SupplierRules{
			Merge: map[string]string{
				"Galaxy":              "Galaxy VIC",
				"Galaxy Vic":          "Galaxy VIC",
				"Galaxy VIC":          "Galaxy VIC",
				"STOCK":               "Stock (Internal)",
				"Stock":               "Stock (Internal)",
				"In Stock":            "Stock (Internal)",
				"Bags by Appointment": "Bags by Appointment",
				"Bags By Appointment": "Bags by Appointment",
				"BagsbyAppointment":   "Bags by Appointment",
			},
			Review: []string{"L19 STOCK", "LOCAL", "TSUM"},
		},
	}
}
