package seeder

import (
	"fmt"
	"sort"

	"github.com/Lumos-Labs-HQ/catalogseed/internal/catalog"
)

type DependencyGraph struct {
	tables map[string]*TableInfo
	order  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]*TableInfo),
	}
}

// CatalogGraph returns the foreign-key graph of the catalog tables.
func CatalogGraph() *DependencyGraph {
	g := NewDependencyGraph()
	g.AddTable(&TableInfo{Name: catalog.TableProduct})
	g.AddTable(&TableInfo{Name: catalog.TableBook, Dependencies: []string{catalog.TableProduct}})
	g.AddTable(&TableInfo{Name: catalog.TableExpiringProduct, Dependencies: []string{catalog.TableProduct}})
	g.AddTable(&TableInfo{Name: catalog.TableCategory, Dependencies: []string{catalog.TableCategory}})
	g.AddTable(&TableInfo{Name: catalog.TableProductCategory, Dependencies: []string{catalog.TableProduct, catalog.TableCategory}})
	return g
}

func (g *DependencyGraph) AddTable(table *TableInfo) {
	g.tables[table.Name] = table
}

// BuildInsertionOrder returns table names so that every table comes after
// the tables it references. Ties are broken by name.
func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	visited := make(map[string]bool)
	temp := make(map[string]bool)
	var order []string

	var visit func(string) error
	visit = func(tableName string) error {
		if temp[tableName] {
			return fmt.Errorf("circular dependency detected involving table: %s", tableName)
		}
		if visited[tableName] {
			return nil
		}

		temp[tableName] = true
		table := g.tables[tableName]

		if table != nil {
			for _, dep := range table.Dependencies {
				if dep != tableName { // Skip self-references
					if err := visit(dep); err != nil {
						return err
					}
				}
			}
		}

		temp[tableName] = false
		visited[tableName] = true
		order = append(order, tableName)
		return nil
	}

	names := make([]string, 0, len(g.tables))
	for name := range g.tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, tableName := range names {
		if !visited[tableName] {
			if err := visit(tableName); err != nil {
				return nil, err
			}
		}
	}

	g.order = order
	return order, nil
}

func (g *DependencyGraph) GetOrder() []string {
	return g.order
}
