package simulation

import (
	"context"
	"time"

	"portal/catalog"
	"portal/models"
)

// Session is the per-user working state of the inventory simulator: one
// selection, the name of the active scenario, and a bounded run history.
// A session expects a single active caller; it is not safe for concurrent
// use from multiple goroutines.
type Session struct {
	products  *catalog.ProductCatalog
	scenarios *catalog.ScenarioCatalog
	engine    *Engine
	selection *SelectionManager
	history   *History

	scenarioName string
	pending      *PendingRun
}

// NewSession creates a session over the given catalogs. A nil provider gives
// the static recommendation list.
func NewSession(products *catalog.ProductCatalog, scenarios *catalog.ScenarioCatalog, provider RecommendationProvider) *Session {
	return &Session{
		products:  products,
		scenarios: scenarios,
		engine:    NewEngine(provider),
		selection: NewSelectionManager(products),
		history:   NewHistory(),
	}
}

// SelectScenario resets the selection and auto-populates it from the named
// scenario's keywords.
func (s *Session) SelectScenario(scenarioID string) error {
	scenario, ok := s.scenarios.Get(scenarioID)
	if !ok {
		return ErrScenarioNotFound
	}
	s.scenarioName = scenario.Name
	s.selection.SelectScenario(scenario)
	return nil
}

// AddProduct adds one unit of the product to the working selection.
func (s *Session) AddProduct(productID string) {
	s.selection.AddProduct(productID)
}

// SetQuantity sets (or removes, at zero) a selected product's quantity.
func (s *Session) SetQuantity(productID string, quantity int) {
	s.selection.SetQuantity(productID, quantity)
}

// Selection returns a snapshot of the working selection.
func (s *Session) Selection() []models.SelectionEntry {
	return s.selection.List()
}

// ScenarioName returns the name of the active scenario, empty if none.
func (s *Session) ScenarioName() string {
	return s.scenarioName
}

// Reset empties the selection and clears the active scenario. History is
// kept; past runs stay replayable.
func (s *Session) Reset() {
	s.scenarioName = ""
	s.selection.Clear()
}

// Run executes the calculation immediately and records the result. The
// history is untouched when the selection is empty.
func (s *Session) Run(timeframe models.Timeframe) (*models.SimulationResult, error) {
	result, err := s.engine.Run(s.scenarioName, s.selection.List(), timeframe)
	if err != nil {
		return nil, err
	}
	s.history.Record(result)
	return result, nil
}

// History returns the recorded runs newest-first.
func (s *Session) History() []*models.SimulationResult {
	return s.history.List()
}

// Replay re-hydrates the working selection from a stored run's snapshot and
// returns the stored result without recomputation. The history itself is
// never mutated by a replay.
func (s *Session) Replay(resultID string) (*models.SimulationResult, error) {
	result, ok := s.history.Find(resultID)
	if !ok {
		return nil, ErrResultNotFound
	}
	s.scenarioName = result.ScenarioName
	s.selection.Restore(result.Products)
	return result, nil
}

// Schedule queues a run behind the cosmetic processing delay. Scheduling a
// new run cancels any still-pending one, so a stale run can never land after
// a newer one; the cancelled run simply discards its result.
func (s *Session) Schedule(timeframe models.Timeframe, delay time.Duration) *PendingRun {
	if s.pending != nil {
		s.pending.Cancel()
	}
	p := &PendingRun{done: make(chan struct{})}
	p.timer = time.AfterFunc(delay, func() {
		p.result, p.err = s.Run(timeframe)
		close(p.done)
	})
	s.pending = p
	return p
}

// PendingRun is a simulation run waiting out its processing delay.
type PendingRun struct {
	timer  *time.Timer
	done   chan struct{}
	result *models.SimulationResult
	err    error
}

// Cancel discards the pending run if its delay has not elapsed yet. A run
// whose computation already fired is unaffected.
func (p *PendingRun) Cancel() {
	if p.timer.Stop() {
		p.err = ErrRunCancelled
		close(p.done)
	}
}

// Wait blocks until the run completes, is cancelled, or the context ends.
// A context cancellation also cancels the pending run.
func (p *PendingRun) Wait(ctx context.Context) (*models.SimulationResult, error) {
	select {
	case <-ctx.Done():
		p.Cancel()
		return nil, ctx.Err()
	case <-p.done:
		return p.result, p.err
	}
}
