package seeder

import (
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
)

func TestCatalogInsertionOrder(t *testing.T) {
	order, err := CatalogGraph().BuildInsertionOrder()
	if err != nil {
		t.Fatalf("BuildInsertionOrder failed: %v", err)
	}

	want := "product,book,category,expiring_product,product_category"
	if got := strings.Join(order, ","); got != want {
		t.Errorf("Expected order %s, got %s", want, got)
	}

	index := make(map[string]int)
	for i, name := range order {
		index[name] = i
	}
	if index[catalog.TableBook] < index[catalog.TableProduct] ||
		index[catalog.TableExpiringProduct] < index[catalog.TableProduct] ||
		index[catalog.TableProductCategory] < index[catalog.TableCategory] {
		t.Errorf("Dependency violated in %v", order)
	}
}

func TestCircularDependency(t *testing.T) {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: "a", Dependencies: []string{"b"}})
	g.AddTable(&TableInfo{Name: "b", Dependencies: []string{"a"}})

	if _, err := g.BuildInsertionOrder(); err == nil {
		t.Error("Expected circular dependency error")
	}
}
