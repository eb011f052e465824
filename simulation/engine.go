package simulation

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"portal/models"
)

// Revenue thresholds for the overall risk classification.
var (
	highRevenueThreshold   = decimal.NewFromInt(500000)
	mediumRevenueThreshold = decimal.NewFromInt(200000)
)

// RecommendationProvider supplies the guidance strings attached to a result.
// The engine treats it as a pluggable strategy so a smarter, data-driven
// advisor can be swapped in without touching the calculation contract.
type RecommendationProvider interface {
	Recommendations(metrics models.SimulationMetrics) []string
}

// StaticRecommendations is the default provider: a fixed list of generic
// guidance, identical for every run.
type StaticRecommendations struct{}

func (StaticRecommendations) Recommendations(models.SimulationMetrics) []string {
	return []string{
		"Review supplier lead times before committing to large stock orders.",
		"Keep fast-moving items above their low-stock thresholds during the scenario window.",
		"Negotiate volume discounts with vendors for high-quantity selections.",
		"Re-run the simulation after adjusting quantities to compare projected outcomes.",
	}
}

// Engine projects revenue, profit, turnover and risk for a product selection.
// It is stateless apart from an id counter that keeps result ids unique when
// two runs land on the same millisecond.
type Engine struct {
	provider RecommendationProvider
	lastID   int64
}

// NewEngine creates an engine. A nil provider falls back to the static
// recommendation list.
func NewEngine(provider RecommendationProvider) *Engine {
	if provider == nil {
		provider = StaticRecommendations{}
	}
	return &Engine{provider: provider}
}

// Run computes a SimulationResult for the given selection and timeframe.
// An empty selection returns ErrEmptySelection and produces nothing.
//
// The timeframe's day count is resolved for the result's duration label but
// intentionally does not scale revenue or cost: totals reflect a single
// aggregate purchase of the chosen quantities regardless of horizon.
func (e *Engine) Run(scenarioName string, selection []models.SelectionEntry, timeframe models.Timeframe) (*models.SimulationResult, error) {
	if len(selection) == 0 {
		return nil, ErrEmptySelection
	}

	revenue := decimal.Zero
	cost := decimal.Zero
	stockoutRisk := 25
	for _, entry := range selection {
		qty := decimal.NewFromInt(int64(entry.Quantity))
		revenue = revenue.Add(entry.Product.SellingPrice.Mul(qty))
		cost = cost.Add(entry.Product.CostPrice.Mul(qty))

		// Binary risk score: any entry drawing down more than 80% of
		// on-hand stock flips the whole run to 75.
		if float64(entry.Quantity) > 0.8*float64(entry.Product.CurrentStock) {
			stockoutRisk = 75
		}
	}

	profit := revenue.Sub(cost)

	turnover := decimal.Zero
	if !cost.IsZero() {
		turnover = revenue.Div(cost.Mul(decimal.NewFromFloat(0.5)))
	}

	overallRisk := "low"
	switch {
	case revenue.GreaterThan(highRevenueThreshold) || stockoutRisk > 50:
		overallRisk = "high"
	case revenue.GreaterThan(mediumRevenueThreshold):
		overallRisk = "medium"
	}

	metrics := models.SimulationMetrics{
		TotalRevenue:      revenue,
		TotalProfit:       profit,
		InventoryTurnover: turnover,
		StockoutRisk:      stockoutRisk,
		OverallRisk:       overallRisk,
	}

	snapshot := make([]models.SelectionEntry, len(selection))
	copy(snapshot, selection)

	return &models.SimulationResult{
		ID:              e.nextID(),
		ScenarioName:    scenarioName,
		Timestamp:       time.Now(),
		Duration:        timeframe.Label(),
		Products:        snapshot,
		Results:         metrics,
		Recommendations: e.provider.Recommendations(metrics),
	}, nil
}

// nextID derives a unique, monotonic result id from the current time.
func (e *Engine) nextID() string {
	now := time.Now().UnixMilli()
	if now <= e.lastID {
		now = e.lastID + 1
	}
	e.lastID = now
	return "run-" + strconv.FormatInt(now, 10)
}
