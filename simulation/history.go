package simulation

import "portal/models"

// historyCapacity bounds the run history; recording a sixth run evicts the
// oldest entry.
const historyCapacity = 5

// History is the bounded, newest-first log of past simulation runs. Stored
// results are immutable; replaying never recomputes or reorders anything.
type History struct {
	entries []*models.SimulationResult
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{entries: make([]*models.SimulationResult, 0, historyCapacity)}
}

// Record prepends a result, evicting the oldest entry past capacity.
func (h *History) Record(result *models.SimulationResult) {
	h.entries = append([]*models.SimulationResult{result}, h.entries...)
	if len(h.entries) > historyCapacity {
		h.entries = h.entries[:historyCapacity]
	}
}

// List returns the stored results newest-first.
func (h *History) List() []*models.SimulationResult {
	out := make([]*models.SimulationResult, len(h.entries))
	copy(out, h.entries)
	return out
}

// Find returns the stored result with the given id.
func (h *History) Find(resultID string) (*models.SimulationResult, bool) {
	for _, r := range h.entries {
		if r.ID == resultID {
			return r, true
		}
	}
	return nil, false
}

// Len returns the number of stored results.
func (h *History) Len() int {
	return len(h.entries)
}
