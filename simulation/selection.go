package simulation

import (
	"strings"

	"portal/catalog"
	"portal/models"
)

// SelectionManager holds the working set of products and quantities being
// evaluated. Entries are kept in insertion order and keyed by product id, so
// a product never appears twice. Operations referencing a product id that is
// not in the catalog are no-ops.
type SelectionManager struct {
	catalog *catalog.ProductCatalog
	entries []models.SelectionEntry
	index   map[string]int
}

// NewSelectionManager creates an empty selection over the given catalog.
func NewSelectionManager(pc *catalog.ProductCatalog) *SelectionManager {
	return &SelectionManager{
		catalog: pc,
		entries: make([]models.SelectionEntry, 0),
		index:   make(map[string]int),
	}
}

// SelectScenario clears the selection and, when the scenario carries
// keywords, pre-selects every matching product with a default quantity of
// one week of expected demand capped at 30% of on-hand stock:
//
//	quantity = min(dailyDemand * 7, floor(currentStock * 0.3))
//
// Products whose default quantity computes to less than 1 are skipped. A
// scenario without keywords (the custom scenario) leaves the selection empty.
func (m *SelectionManager) SelectScenario(scenario models.ScenarioTemplate) {
	m.Clear()
	if len(scenario.Keywords) == 0 {
		return
	}
	for _, p := range m.catalog.List() {
		if !matchesKeywords(p, scenario.Keywords) {
			continue
		}
		qty := p.DailyDemand * 7
		if cap30 := p.CurrentStock * 3 / 10; cap30 < qty {
			qty = cap30
		}
		if qty < 1 {
			continue
		}
		m.append(p, qty)
	}
}

// AddProduct adds one unit of the product to the selection. An existing
// entry is incremented instead of duplicated, never beyond current stock.
func (m *SelectionManager) AddProduct(productID string) {
	p, ok := m.catalog.Get(productID)
	if !ok {
		return
	}
	if i, exists := m.index[productID]; exists {
		if m.entries[i].Quantity < p.CurrentStock {
			m.entries[i].Quantity++
		}
		return
	}
	m.append(p, 1)
}

// SetQuantity sets the quantity for a selected product. A quantity of zero
// or less removes the entry; anything else is clamped to [1, currentStock].
func (m *SelectionManager) SetQuantity(productID string, quantity int) {
	i, exists := m.index[productID]
	if !exists {
		return
	}
	if quantity <= 0 {
		m.remove(i)
		return
	}
	if stock := m.entries[i].Product.CurrentStock; quantity > stock {
		quantity = stock
	}
	m.entries[i].Quantity = quantity
}

// Clear empties the selection.
func (m *SelectionManager) Clear() {
	m.entries = m.entries[:0]
	m.index = make(map[string]int)
}

// List returns a snapshot of the current selection in insertion order.
func (m *SelectionManager) List() []models.SelectionEntry {
	out := make([]models.SelectionEntry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Restore replaces the selection with a stored snapshot, used when replaying
// a history entry. Quantities are re-clamped against current stock and
// products no longer in the catalog are dropped.
func (m *SelectionManager) Restore(entries []models.SelectionEntry) {
	m.Clear()
	for _, e := range entries {
		p, ok := m.catalog.Get(e.Product.ID)
		if !ok {
			continue
		}
		qty := e.Quantity
		if qty > p.CurrentStock {
			qty = p.CurrentStock
		}
		if qty < 1 {
			continue
		}
		m.append(p, qty)
	}
}

func (m *SelectionManager) append(p models.Product, quantity int) {
	m.index[p.ID] = len(m.entries)
	m.entries = append(m.entries, models.SelectionEntry{Product: p, Quantity: quantity})
}

func (m *SelectionManager) remove(i int) {
	delete(m.index, m.entries[i].Product.ID)
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	for j := i; j < len(m.entries); j++ {
		m.index[m.entries[j].Product.ID] = j
	}
}

func matchesKeywords(p models.Product, keywords []string) bool {
	name := strings.ToLower(p.Name)
	category := strings.ToLower(p.Category)
	for _, kw := range keywords {
		kw = strings.ToLower(kw)
		if strings.Contains(name, kw) || strings.Contains(category, kw) {
			return true
		}
	}
	return false
}
