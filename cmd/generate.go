package cmd

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/config"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/randx"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/seeder"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/sink"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate catalog rows",
	Long: `
Generate products (with book and expiring subtypes), categories and
product/category links, and write them to the configured output.

Examples:
  catalogseed generate
  catalogseed generate --products 1000 --categories 25 --seed 42
  catalogseed generate --format yaml --out db/seed/catalog.yaml
  catalogseed generate --format db --provider mysql`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		ctx := context.Background()

		opts := sink.Options{
			Format:   cfg.Output.Format,
			Path:     cfg.Output.Path,
			Provider: cfg.Database.Provider,
		}
		if cfg.Output.Format == sink.FormatDB {
			if opts.URL, err = cfg.GetDatabaseURL(); err != nil {
				return err
			}
		}

		out, err := sink.Open(ctx, opts)
		if err != nil {
			return err
		}

		src := randx.New(cfg.Seed)
		color.New(color.FgCyan).Fprintf(color.Error, "🎲 Seed: %d\n", src.Seed())

		s := seeder.NewSeeder(src, out, color.Error)
		seedErr := s.Seed(ctx, seeder.SeedConfig{
			Products:             cfg.Counts.Products,
			Categories:           cfg.Counts.Categories,
			Brands:               cfg.Counts.Brands,
			CategoriesPerProduct: cfg.Counts.CategoriesPerProduct,
		})

		if err := out.Close(); err != nil && seedErr == nil {
			return fmt.Errorf("failed to close output: %w", err)
		}
		return seedErr
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	generateCmd.Flags().Int("products", 0, "Number of products to generate")
	generateCmd.Flags().Int("categories", 0, "Number of categories to generate")
	generateCmd.Flags().Int("brands", 0, "Brand ids are drawn from 1..brands")
	generateCmd.Flags().Int("categories-per-product", 0, "Distinct categories linked to each product")
	generateCmd.Flags().String("format", "", "Output format (sql, yaml, db)")
	generateCmd.Flags().StringP("out", "o", "", "Output file, - for stdout")

	viper.BindPFlag("seed", generateCmd.Flags().Lookup("seed"))
	viper.BindPFlag("counts.products", generateCmd.Flags().Lookup("products"))
	viper.BindPFlag("counts.categories", generateCmd.Flags().Lookup("categories"))
	viper.BindPFlag("counts.brands", generateCmd.Flags().Lookup("brands"))
	viper.BindPFlag("counts.categories_per_product", generateCmd.Flags().Lookup("categories-per-product"))
	viper.BindPFlag("output.format", generateCmd.Flags().Lookup("format"))
	viper.BindPFlag("output.path", generateCmd.Flags().Lookup("out"))
}
