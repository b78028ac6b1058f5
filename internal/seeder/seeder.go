package seeder

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/randx"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/sink"
	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
)

// Seeder decides how many of each entity to create and drives the
// generator table by table in foreign-key order.
type Seeder struct {
	rand      randx.Provider
	counter   *sink.Counter
	generator *catalog.Generator
	graph     *DependencyGraph
	log       io.Writer

	productIDs  []int64
	categoryIDs []int64
}

// NewSeeder writes generated rows to out and status lines to log.
func NewSeeder(rand randx.Provider, out catalog.Sink, log io.Writer) *Seeder {
	counter := sink.NewCounter(out)
	return &Seeder{
		rand:      rand,
		counter:   counter,
		generator: catalog.NewGenerator(rand, counter),
		graph:     CatalogGraph(),
		log:       log,
	}
}

// Counts reports how many rows were sunk per table.
func (s *Seeder) Counts() map[string]int {
	return s.counter.Counts()
}

func (s *Seeder) Seed(ctx context.Context, cfg SeedConfig) error {
	if err := validate(cfg); err != nil {
		return err
	}

	cyan.Fprintln(s.log, "🌱 Starting catalog seeding...")
	s.productIDs = s.productIDs[:0]
	s.categoryIDs = s.categoryIDs[:0]

	order, err := s.graph.BuildInsertionOrder()
	if err != nil {
		return fmt.Errorf("failed to build insertion order: %w", err)
	}
	cyan.Fprintf(s.log, "📋 Insertion order: %s\n", strings.Join(order, " → "))

	for _, table := range order {
		switch table {
		case catalog.TableProduct:
			err = s.seedProducts(ctx, cfg.Products, cfg.Brands)
		case catalog.TableCategory:
			err = s.seedCategories(ctx, cfg.Categories)
		case catalog.TableProductCategory:
			err = s.seedProductCategories(ctx, cfg.CategoriesPerProduct)
		default:
			// book and expiring_product rows are emitted with their product
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to seed table %s: %w", table, err)
		}
	}

	counts := s.counter.Counts()
	for _, table := range order {
		fmt.Fprintf(s.log, "  %-18s %d\n", table, counts[table])
	}
	green.Fprintln(s.log, "✅ Catalog seeding completed successfully!")
	return nil
}

func validate(cfg SeedConfig) error {
	if cfg.Products < 0 || cfg.Categories < 0 || cfg.CategoriesPerProduct < 0 {
		return fmt.Errorf("seed counts cannot be negative")
	}
	if cfg.Products > 0 && cfg.Brands < 1 {
		return fmt.Errorf("at least one brand is required to generate products")
	}
	if cfg.CategoriesPerProduct > cfg.Categories {
		return fmt.Errorf("cannot link %d categories per product with only %d categories",
			cfg.CategoriesPerProduct, cfg.Categories)
	}
	return nil
}

func (s *Seeder) seedProducts(ctx context.Context, count, brands int) error {
	cyan.Fprintf(s.log, "  📝 Seeding %s (%d records)...\n", catalog.TableProduct, count)

	for id := int64(1); id <= int64(count); id++ {
		brandID := int64(s.rand.Int(1, brands))
		if _, err := s.generator.GenerateProduct(ctx, id, brandID); err != nil {
			return err
		}
		s.productIDs = append(s.productIDs, id)
	}
	return nil
}

func (s *Seeder) seedCategories(ctx context.Context, count int) error {
	cyan.Fprintf(s.log, "  📝 Seeding %s (%d records)...\n", catalog.TableCategory, count)

	for id := int64(1); id <= int64(count); id++ {
		if _, err := s.generator.GenerateCategory(ctx, id); err != nil {
			return err
		}
		s.categoryIDs = append(s.categoryIDs, id)
	}
	return nil
}

func (s *Seeder) seedProductCategories(ctx context.Context, perProduct int) error {
	if perProduct == 0 || len(s.productIDs) == 0 {
		yellow.Fprintf(s.log, "  ⚠️  Skipping %s\n", catalog.TableProductCategory)
		return nil
	}
	cyan.Fprintf(s.log, "  📝 Seeding %s (%d records)...\n", catalog.TableProductCategory, perProduct*len(s.productIDs))

	for _, productID := range s.productIDs {
		for _, categoryID := range s.pickCategories(perProduct) {
			if _, err := s.generator.GenerateProductCategory(ctx, productID, categoryID); err != nil {
				return err
			}
		}
	}
	return nil
}

// pickCategories draws k distinct category ids with a partial
// Fisher-Yates shuffle.
func (s *Seeder) pickCategories(k int) []int64 {
	ids := make([]int64, len(s.categoryIDs))
	copy(ids, s.categoryIDs)

	for i := 0; i < k; i++ {
		j := s.rand.Int(i, len(ids)-1)
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids[:k]
}
