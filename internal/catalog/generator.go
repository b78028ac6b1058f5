package catalog

import (
	"context"
	"fmt"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/randx"
)

const (
	// SpecialProbability is the chance a product gets a subtype extension.
	SpecialProbability = 0.25

	ProductNameLength  = 4
	UPCLength          = 15
	ISBNLength         = 20
	MinDaysFresh       = 1
	MaxDaysFresh       = 90
	CategoryNameLength = randx.DefaultAlphaLength
)

// Generator builds catalog rows from caller-supplied ids and hands them to a
// Sink. It holds no state between calls.
type Generator struct {
	rand randx.Provider
	sink Sink
}

func NewGenerator(rand randx.Provider, sink Sink) *Generator {
	return &Generator{
		rand: rand,
		sink: sink,
	}
}

// BuildProduct draws a variant and the random fields of a product.
func (g *Generator) BuildProduct(productID, brandID int64) ProductRecord {
	variant := VariantGeneric
	if g.rand.Bool(SpecialProbability) {
		if g.rand.Bool(0.5) {
			variant = VariantBook
		} else {
			variant = VariantExpiring
		}
	}

	name := g.rand.AlphaStr(ProductNameLength)
	record := ProductRecord{
		Product: Product{
			ProductID:   productID,
			ProductName: variant.Prefix() + name,
			UPCCode:     g.rand.NumStr(UPCLength),
			BrandID:     brandID,
		},
	}

	switch variant {
	case VariantBook:
		record.Extension = g.buildBook(productID)
	case VariantExpiring:
		record.Extension = g.buildExpiring(productID)
	}
	return record
}

func (g *Generator) buildBook(productID int64) Book {
	return Book{
		ProductID: productID,
		ISBN:      g.rand.NumStr(ISBNLength),
	}
}

func (g *Generator) buildExpiring(productID int64) ExpiringProduct {
	return ExpiringProduct{
		ProductID: productID,
		DaysFresh: g.rand.Int(MinDaysFresh, MaxDaysFresh),
	}
}

func (g *Generator) BuildCategory(categoryID int64) Category {
	return Category{
		CategoryID:   categoryID,
		CategoryName: g.rand.AlphaStr(CategoryNameLength),
	}
}

func (g *Generator) BuildProductCategory(productID, categoryID int64) ProductCategory {
	return ProductCategory{
		ProductID:  productID,
		CategoryID: categoryID,
	}
}

// GenerateProduct emits a product row followed by its extension row, if
// any. If the sink fails on the extension, the product row stays emitted.
func (g *Generator) GenerateProduct(ctx context.Context, productID, brandID int64) (ProductRecord, error) {
	record := g.BuildProduct(productID, brandID)
	for _, row := range record.Rows() {
		if err := g.emit(ctx, row); err != nil {
			return record, err
		}
	}
	return record, nil
}

func (g *Generator) GenerateCategory(ctx context.Context, categoryID int64) (Category, error) {
	category := g.BuildCategory(categoryID)
	return category, g.emit(ctx, category)
}

func (g *Generator) GenerateProductCategory(ctx context.Context, productID, categoryID int64) (ProductCategory, error) {
	link := g.BuildProductCategory(productID, categoryID)
	return link, g.emit(ctx, link)
}

func (g *Generator) emit(ctx context.Context, row Row) error {
	if err := g.sink.Insert(ctx, row); err != nil {
		return fmt.Errorf("failed to insert %s row: %w", row.Table(), err)
	}
	return nil
}
