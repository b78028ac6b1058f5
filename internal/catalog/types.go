package catalog

import (
	"context"
	"fmt"
)

// Table names as they appear in the target schema.
const (
	TableProduct         = "product"
	TableBook            = "book"
	TableExpiringProduct = "expiring_product"
	TableCategory        = "category"
	TableProductCategory = "product_category"
)

// Row is one logical row handed to a Sink. The set of implementations is
// closed: Product, Book, ExpiringProduct, Category and ProductCategory.
type Row interface {
	Table() string
	isRow()
}

// Sink receives rows in the order they must be applied.
type Sink interface {
	Insert(ctx context.Context, row Row) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, row Row) error

func (f SinkFunc) Insert(ctx context.Context, row Row) error {
	return f(ctx, row)
}

type Product struct {
	ProductID   int64  `json:"product_id" yaml:"product_id"`
	ProductName string `json:"product_name" yaml:"product_name"`
	UPCCode     string `json:"upc_code" yaml:"upc_code"`
	BrandID     int64  `json:"brand_id" yaml:"brand_id"`
}

type Book struct {
	ProductID int64  `json:"product_id" yaml:"product_id"`
	ISBN      string `json:"isbn" yaml:"isbn"`
}

type ExpiringProduct struct {
	ProductID int64 `json:"product_id" yaml:"product_id"`
	DaysFresh int   `json:"days_fresh" yaml:"days_fresh"`
}

// Category is a node of the category tree. ParentID is never set by the
// generator.
type Category struct {
	CategoryID   int64  `json:"category_id" yaml:"category_id"`
	CategoryName string `json:"category_name" yaml:"category_name"`
	ParentID     *int64 `json:"parent_id" yaml:"parent_id"`
}

type ProductCategory struct {
	ProductID  int64 `json:"product_id" yaml:"product_id"`
	CategoryID int64 `json:"category_id" yaml:"category_id"`
}

func (Product) Table() string         { return TableProduct }
func (Book) Table() string            { return TableBook }
func (ExpiringProduct) Table() string { return TableExpiringProduct }
func (Category) Table() string        { return TableCategory }
func (ProductCategory) Table() string { return TableProductCategory }

func (Product) isRow()         {}
func (Book) isRow()            {}
func (ExpiringProduct) isRow() {}
func (Category) isRow()        {}
func (ProductCategory) isRow() {}

// Extension is the optional subtype row of a Product: Book or
// ExpiringProduct. A nil Extension means the product is generic.
type Extension interface {
	Row
	isExtension()
}

func (Book) isExtension()            {}
func (ExpiringProduct) isExtension() {}

// ProductRecord is a product together with its subtype extension, if any.
type ProductRecord struct {
	Product   Product
	Extension Extension
}

// Rows returns the record's rows in insertion order.
func (r ProductRecord) Rows() []Row {
	if r.Extension == nil {
		return []Row{r.Product}
	}
	return []Row{r.Product, r.Extension}
}

// Variant reports which kind of product the record holds.
func (r ProductRecord) Variant() Variant {
	switch r.Extension.(type) {
	case Book:
		return VariantBook
	case ExpiringProduct:
		return VariantExpiring
	default:
		return VariantGeneric
	}
}

type Variant int

const (
	VariantGeneric Variant = iota
	VariantBook
	VariantExpiring
)

func (v Variant) String() string {
	switch v {
	case VariantBook:
		return "book"
	case VariantExpiring:
		return "expiring"
	default:
		return "generic"
	}
}

// Prefix is prepended to the random product name token.
func (v Variant) Prefix() string {
	switch v {
	case VariantBook:
		return "Book "
	case VariantExpiring:
		return "Expiring "
	default:
		return "Generic "
	}
}

// Fields returns the column names and values of row in table order.
func Fields(row Row) ([]string, []interface{}) {
	switch r := row.(type) {
	case Product:
		return []string{"product_id", "product_name", "upc_code", "brand_id"},
			[]interface{}{r.ProductID, r.ProductName, r.UPCCode, r.BrandID}
	case Book:
		return []string{"product_id", "isbn"},
			[]interface{}{r.ProductID, r.ISBN}
	case ExpiringProduct:
		return []string{"product_id", "days_fresh"},
			[]interface{}{r.ProductID, r.DaysFresh}
	case Category:
		var parent interface{}
		if r.ParentID != nil {
			parent = *r.ParentID
		}
		return []string{"category_id", "category_name", "parent_id"},
			[]interface{}{r.CategoryID, r.CategoryName, parent}
	case ProductCategory:
		return []string{"product_id", "category_id"},
			[]interface{}{r.ProductID, r.CategoryID}
	default:
		panic(fmt.Sprintf("catalog: unknown row type %T", row))
	}
}
