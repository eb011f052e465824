package simulation

import (
	"fmt"
	"testing"

	"portal/models"
)

func stubResult(id string) *models.SimulationResult {
	return &models.SimulationResult{ID: id, ScenarioName: "Heatwave", Duration: "1 Week"}
}

func TestHistory_NewestFirst(t *testing.T) {
	h := NewHistory()
	h.Record(stubResult("run-1"))
	h.Record(stubResult("run-2"))
	h.Record(stubResult("run-3"))

	list := h.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(list))
	}
	for i, want := range []string{"run-3", "run-2", "run-1"} {
		if list[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, list[i].ID)
		}
	}
}

func TestHistory_EvictsOldestPastCapacity(t *testing.T) {
	h := NewHistory()
	for i := 1; i <= 6; i++ {
		h.Record(stubResult(fmt.Sprintf("run-%d", i)))
	}

	if h.Len() != 5 {
		t.Fatalf("expected capacity 5, got %d", h.Len())
	}

	list := h.List()
	for i, want := range []string{"run-6", "run-5", "run-4", "run-3", "run-2"} {
		if list[i].ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, list[i].ID)
		}
	}

	if _, ok := h.Find("run-1"); ok {
		t.Fatal("run-1 should have been evicted")
	}
}

func TestHistory_Find(t *testing.T) {
	h := NewHistory()
	h.Record(stubResult("run-1"))

	if _, ok := h.Find("run-1"); !ok {
		t.Fatal("expected to find run-1")
	}
	if _, ok := h.Find("run-9"); ok {
		t.Fatal("did not expect to find run-9")
	}
}

func TestHistory_ListIsDetachedFromInternalState(t *testing.T) {
	h := NewHistory()
	h.Record(stubResult("run-1"))
	h.Record(stubResult("run-2"))

	list := h.List()
	list[0] = stubResult("tampered")

	if h.List()[0].ID != "run-2" {
		t.Fatal("mutating a returned list must not affect the history")
	}
}
