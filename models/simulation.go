package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item in the simulator's catalog. Products are seeded
// at startup and never mutated during a session.
type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CurrentStock int             `json:"current_stock"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	DailyDemand  int             `json:"daily_demand"`
}

// EstimatedImpact is the rough estimate shown on a scenario card. Display
// only; the calculation engine never reads it.
type EstimatedImpact struct {
	Revenue string `json:"revenue"`
	Margin  string `json:"margin"`
	Risk    string `json:"risk"`
}

// ScenarioTemplate is a named demand pattern used to pre-select products.
// Keywords are matched case-insensitively against product name and category;
// the custom scenario has no keywords and starts with an empty selection.
type ScenarioTemplate struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Keywords        []string        `json:"keywords"`
	EstimatedImpact EstimatedImpact `json:"estimated_impact"`
}

// SelectionEntry pairs a chosen product with the quantity under evaluation.
type SelectionEntry struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Timeframe is the simulated horizon for a run.
type Timeframe string

const (
	TimeframeOneWeek  Timeframe = "1week"
	TimeframeTwoWeeks Timeframe = "2weeks"
	TimeframeOneMonth Timeframe = "1month"
)

// Days returns the day-count multiplier for the timeframe. Unknown values
// fall back to one week, the default horizon.
func (t Timeframe) Days() int {
	switch t {
	case TimeframeTwoWeeks:
		return 14
	case TimeframeOneMonth:
		return 30
	default:
		return 7
	}
}

// Label returns the display label derived from the day-count multiplier.
func (t Timeframe) Label() string {
	switch t.Days() {
	case 14:
		return "2 Weeks"
	case 30:
		return "1 Month"
	default:
		return "1 Week"
	}
}

// Valid reports whether the timeframe is one of the supported horizons.
func (t Timeframe) Valid() bool {
	switch t {
	case TimeframeOneWeek, TimeframeTwoWeeks, TimeframeOneMonth:
		return true
	}
	return false
}

// SimulationMetrics holds the computed figures of a single run.
type SimulationMetrics struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalProfit       decimal.Decimal `json:"total_profit"`
	InventoryTurnover decimal.Decimal `json:"inventory_turnover"`
	StockoutRisk      int             `json:"stockout_risk"`
	OverallRisk       string          `json:"overall_risk"`
}

// SimulationResult is an immutable record of one simulation run. Products is
// a snapshot of the selection at run time, so later edits to the working
// selection cannot retroactively alter a stored result.
type SimulationResult struct {
	ID              string            `json:"id"`
	ScenarioName    string            `json:"scenario_name"`
	Timestamp       time.Time         `json:"timestamp"`
	Duration        string            `json:"duration"`
	Products        []SelectionEntry  `json:"products"`
	Results         SimulationMetrics `json:"results"`
	Recommendations []string          `json:"recommendations"`
}
