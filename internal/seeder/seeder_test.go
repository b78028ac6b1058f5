package seeder

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/randx"
	"github.com/Lumos-Labs-HQ/catalogseed/internal/sink"
)

func TestSeedOrderingAndReferences(t *testing.T) {
	rec := sink.NewRecorder()
	s := NewSeeder(randx.New(11), rec, io.Discard)

	cfg := SeedConfig{Products: 200, Categories: 6, Brands: 4, CategoriesPerProduct: 2}
	if err := s.Seed(context.Background(), cfg); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	products := make(map[int64]bool)
	categories := make(map[int64]bool)
	links := make(map[int64]map[int64]bool)
	var lastProduct int64

	for i, row := range rec.Rows() {
		switch r := row.(type) {
		case catalog.Product:
			if r.BrandID < 1 || r.BrandID > 4 {
				t.Errorf("brand_id %d out of range", r.BrandID)
			}
			products[r.ProductID] = true
			lastProduct = r.ProductID
		case catalog.Book:
			if r.ProductID != lastProduct {
				t.Errorf("Row %d: book for %d does not follow its product", i, r.ProductID)
			}
		case catalog.ExpiringProduct:
			if r.ProductID != lastProduct {
				t.Errorf("Row %d: expiring row for %d does not follow its product", i, r.ProductID)
			}
		case catalog.Category:
			if r.ParentID != nil {
				t.Errorf("Category %d has a parent", r.CategoryID)
			}
			categories[r.CategoryID] = true
		case catalog.ProductCategory:
			if !products[r.ProductID] || !categories[r.CategoryID] {
				t.Errorf("Row %d: link %+v emitted before its referenced rows", i, r)
			}
			if links[r.ProductID] == nil {
				links[r.ProductID] = make(map[int64]bool)
			}
			if links[r.ProductID][r.CategoryID] {
				t.Errorf("Duplicate link %+v", r)
			}
			links[r.ProductID][r.CategoryID] = true
		}
	}

	if len(products) != 200 || len(categories) != 6 {
		t.Errorf("Expected 200 products and 6 categories, got %d and %d", len(products), len(categories))
	}
	for id := range products {
		if len(links[id]) != 2 {
			t.Errorf("Product %d has %d categories, want 2", id, len(links[id]))
		}
	}

	counts := s.Counts()
	if counts[catalog.TableProduct] != 200 || counts[catalog.TableProductCategory] != 400 {
		t.Errorf("Unexpected counts: %v", counts)
	}
	if counts[catalog.TableBook]+counts[catalog.TableExpiringProduct] == 0 {
		t.Error("Expected some special products among 200")
	}
}

func TestSeedDeterministic(t *testing.T) {
	render := func() string {
		var buf bytes.Buffer
		s := NewSeeder(randx.New(99), sink.NewSQLWriter(&buf, sink.Postgres), io.Discard)
		cfg := SeedConfig{Products: 30, Categories: 3, Brands: 2, CategoriesPerProduct: 1}
		if err := s.Seed(context.Background(), cfg); err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		return buf.String()
	}

	first, second := render(), render()
	if first == "" || first != second {
		t.Error("Expected identical output for the same seed")
	}
}

func TestSeedValidation(t *testing.T) {
	s := NewSeeder(randx.New(1), sink.NewRecorder(), io.Discard)
	ctx := context.Background()

	bad := []SeedConfig{
		{Products: -1},
		{Products: 1, Brands: 0},
		{Products: 1, Brands: 1, Categories: 1, CategoriesPerProduct: 2},
	}
	for _, cfg := range bad {
		if err := s.Seed(ctx, cfg); err == nil {
			t.Errorf("Expected error for %+v", cfg)
		}
	}
}

func TestSeedStopsOnSinkError(t *testing.T) {
	boom := errors.New("write failed")
	calls := 0
	out := catalog.SinkFunc(func(ctx context.Context, row catalog.Row) error {
		calls++
		if calls == 3 {
			return boom
		}
		return nil
	})

	s := NewSeeder(randx.New(5), out, io.Discard)
	err := s.Seed(context.Background(), SeedConfig{Products: 10, Categories: 2, Brands: 1, CategoriesPerProduct: 1})
	if !errors.Is(err, boom) {
		t.Fatalf("Expected sink error, got %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected seeding to stop at the failing row, got %d calls", calls)
	}
}

func TestSeedWithoutLinks(t *testing.T) {
	rec := sink.NewRecorder()
	var log bytes.Buffer
	s := NewSeeder(randx.New(8), rec, &log)

	if err := s.Seed(context.Background(), SeedConfig{Products: 3, Brands: 1}); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}
	for _, row := range rec.Rows() {
		if row.Table() == catalog.TableProductCategory || row.Table() == catalog.TableCategory {
			t.Errorf("Unexpected %s row", row.Table())
		}
	}
	if log.Len() == 0 {
		t.Error("Expected status output")
	}
}
