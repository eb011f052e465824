package catalog

import (
	"strings"

	"portal/models"
)

// ProductCatalog is a read-only lookup over the simulator's sellable products.
type ProductCatalog struct {
	products []models.Product
	byID     map[string]models.Product
}

// NewProductCatalog builds a catalog from a seed list. The list is copied;
// the catalog never mutates it.
func NewProductCatalog(products []models.Product) *ProductCatalog {
	pc := &ProductCatalog{
		products: make([]models.Product, len(products)),
		byID:     make(map[string]models.Product, len(products)),
	}
	copy(pc.products, products)
	for _, p := range pc.products {
		pc.byID[p.ID] = p
	}
	return pc
}

// Get looks up a product by id.
func (pc *ProductCatalog) Get(id string) (models.Product, bool) {
	p, ok := pc.byID[id]
	return p, ok
}

// List returns all products in seed order.
func (pc *ProductCatalog) List() []models.Product {
	out := make([]models.Product, len(pc.products))
	copy(out, pc.products)
	return out
}

// Filter returns products matching the given category and search term. Empty
// arguments match everything; the search term is checked case-insensitively
// against the product name.
func (pc *ProductCatalog) Filter(category, search string) []models.Product {
	search = strings.ToLower(search)
	out := make([]models.Product, 0)
	for _, p := range pc.products {
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ScenarioCatalog is a read-only lookup over the demand scenarios.
type ScenarioCatalog struct {
	scenarios []models.ScenarioTemplate
	byID      map[string]models.ScenarioTemplate
}

// NewScenarioCatalog builds a catalog from a seed list.
func NewScenarioCatalog(scenarios []models.ScenarioTemplate) *ScenarioCatalog {
	sc := &ScenarioCatalog{
		scenarios: make([]models.ScenarioTemplate, len(scenarios)),
		byID:      make(map[string]models.ScenarioTemplate, len(scenarios)),
	}
	copy(sc.scenarios, scenarios)
	for _, s := range sc.scenarios {
		sc.byID[s.ID] = s
	}
	return sc
}

// Get looks up a scenario by id.
func (sc *ScenarioCatalog) Get(id string) (models.ScenarioTemplate, bool) {
	s, ok := sc.byID[id]
	return s, ok
}

// List returns all scenarios in seed order.
func (sc *ScenarioCatalog) List() []models.ScenarioTemplate {
	out := make([]models.ScenarioTemplate, len(sc.scenarios))
	copy(out, sc.scenarios)
	return out
}
