package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the working directory, without
// its extension.
const FileName = "catalogseed.config"

type Config struct {
	Version  string   `json:"version" mapstructure:"version"`
	Seed     int64    `json:"seed" mapstructure:"seed"`
	Counts   Counts   `json:"counts" mapstructure:"counts"`
	Output   Output   `json:"output" mapstructure:"output"`
	Database Database `json:"database" mapstructure:"database"`
}

type Counts struct {
	Products             int `json:"products" mapstructure:"products"`
	Categories           int `json:"categories" mapstructure:"categories"`
	Brands               int `json:"brands" mapstructure:"brands"`
	CategoriesPerProduct int `json:"categories_per_product" mapstructure:"categories_per_product"`
}

type Output struct {
	Format string `json:"format" mapstructure:"format"` // sql, yaml or db
	Path   string `json:"path" mapstructure:"path"`     // "-" for stdout
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Version == "" {
		cfg.Version = "1"
	}
	if !viper.IsSet("counts.products") {
		cfg.Counts.Products = 100
	}
	if !viper.IsSet("counts.categories") {
		cfg.Counts.Categories = 10
	}
	if !viper.IsSet("counts.brands") {
		cfg.Counts.Brands = 10
	}
	if !viper.IsSet("counts.categories_per_product") {
		cfg.Counts.CategoriesPerProduct = 1
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "sql"
	}
	if cfg.Output.Path == "" {
		cfg.Output.Path = "-"
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	switch c.Output.Format {
	case "sql", "yaml", "db":
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats: [sql yaml db]", c.Output.Format)
	}

	if c.Counts.Products < 0 || c.Counts.Categories < 0 {
		return fmt.Errorf("counts cannot be negative")
	}
	if c.Counts.Products > 0 && c.Counts.Brands < 1 {
		return fmt.Errorf("counts.brands must be at least 1 when generating products")
	}
	if c.Counts.CategoriesPerProduct < 0 {
		return fmt.Errorf("counts.categories_per_product cannot be negative")
	}
	if c.Counts.CategoriesPerProduct > c.Counts.Categories {
		return fmt.Errorf("counts.categories_per_product (%d) exceeds counts.categories (%d)",
			c.Counts.CategoriesPerProduct, c.Counts.Categories)
	}

	return nil
}
