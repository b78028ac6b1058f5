package config

import (
	"encoding/json"
	"fmt"
	"os"
)

const configFile = FileName + ".json"

// DefaultConfig returns the configuration written by InitializeProject.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Counts: Counts{
			Products:             100,
			Categories:           10,
			Brands:               10,
			CategoriesPerProduct: 1,
		},
		Output: Output{
			Format: "sql",
			Path:   "db/seed/catalog.sql",
		},
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
	}
}

func IsInitialized() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

// InitializeProject writes the default config file into the working
// directory. It fails if one already exists.
func InitializeProject(provider string) error {
	if IsInitialized() {
		return fmt.Errorf("%s already exists", configFile)
	}

	cfg := DefaultConfig()
	if provider != "" {
		cfg.Database.Provider = provider
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configFile, err)
	}
	return nil
}
