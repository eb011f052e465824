package simulation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"portal/models"
)

func sodaProduct() models.Product {
	return models.Product{
		ID:           "bev-001",
		Name:         "Sparkling Lime Soda 330ml",
		Category:     "Beverages",
		CurrentStock: 450,
		CostPrice:    decimal.NewFromInt(85),
		SellingPrice: decimal.NewFromInt(110),
		DailyDemand:  32,
	}
}

func fanProduct() models.Product {
	return models.Product{
		ID:           "app-001",
		Name:         "Tower Cooling Fan",
		Category:     "Appliances",
		CurrentStock: 85,
		CostPrice:    decimal.NewFromInt(2500),
		SellingPrice: decimal.NewFromInt(3200),
		DailyDemand:  4,
	}
}

func TestEngineRun_GoldenScenario(t *testing.T) {
	engine := NewEngine(nil)

	selection := []models.SelectionEntry{
		{Product: sodaProduct(), Quantity: 45},
		{Product: fanProduct(), Quantity: 25},
	}

	result, err := engine.Run("Heatwave", selection, models.TimeframeOneWeek)
	assert.NoError(t, err)

	// 110*45 + 3200*25 = 84950
	assert.True(t, result.Results.TotalRevenue.Equal(decimal.NewFromInt(84950)),
		"revenue = %s", result.Results.TotalRevenue)
	// 85*45 + 2500*25 = 66325; profit = 84950 - 66325
	assert.True(t, result.Results.TotalProfit.Equal(decimal.NewFromInt(18625)),
		"profit = %s", result.Results.TotalProfit)
	// 84950 / (66325 * 0.5)
	assert.Equal(t, "2.5616", result.Results.InventoryTurnover.StringFixed(4))
	// 25/85 and 45/450 are both well under 0.8
	assert.Equal(t, 25, result.Results.StockoutRisk)
	// 84950 <= 200000
	assert.Equal(t, "low", result.Results.OverallRisk)

	assert.Equal(t, "Heatwave", result.ScenarioName)
	assert.Equal(t, "1 Week", result.Duration)
	assert.Len(t, result.Products, 2)
	assert.Len(t, result.Recommendations, 4)
}

func TestEngineRun_ProfitIsRevenueMinusCost(t *testing.T) {
	engine := NewEngine(nil)

	selection := []models.SelectionEntry{
		{Product: sodaProduct(), Quantity: 137},
		{Product: fanProduct(), Quantity: 3},
	}

	result, err := engine.Run("Custom Scenario", selection, models.TimeframeOneMonth)
	assert.NoError(t, err)

	// revenue = 110*137 + 3200*3 = 24670; cost = 85*137 + 2500*3 = 19145
	assert.True(t, result.Results.TotalRevenue.Equal(decimal.NewFromInt(24670)),
		"revenue = %s", result.Results.TotalRevenue)
	assert.True(t, result.Results.TotalProfit.Equal(decimal.NewFromInt(5525)),
		"profit = %s", result.Results.TotalProfit)
	assert.Equal(t, "1 Month", result.Duration)
}

func TestEngineRun_EmptySelection(t *testing.T) {
	engine := NewEngine(nil)

	result, err := engine.Run("Heatwave", nil, models.TimeframeOneWeek)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrEmptySelection)
}

func TestEngineRun_StockoutRiskIsBinary(t *testing.T) {
	engine := NewEngine(nil)

	// 70 of 85 units is over the 80% depletion line.
	selection := []models.SelectionEntry{
		{Product: fanProduct(), Quantity: 70},
	}
	result, err := engine.Run("Heatwave", selection, models.TimeframeOneWeek)
	assert.NoError(t, err)
	assert.Equal(t, 75, result.Results.StockoutRisk)
	// Elevated stock-out risk alone forces a high classification.
	assert.Equal(t, "high", result.Results.OverallRisk)

	// 68 of 85 is exactly 80% and must not trip the risk.
	selection[0].Quantity = 68
	result, err = engine.Run("Heatwave", selection, models.TimeframeOneWeek)
	assert.NoError(t, err)
	assert.Equal(t, 25, result.Results.StockoutRisk)
}

func TestEngineRun_OverallRiskThresholds(t *testing.T) {
	engine := NewEngine(nil)
	bulk := models.Product{
		ID:           "bulk-1",
		Name:         "Bulk Item",
		CurrentStock: 100000,
		CostPrice:    decimal.NewFromInt(85),
		SellingPrice: decimal.NewFromInt(110),
	}

	cases := []struct {
		quantity int
		want     string
	}{
		{1000, "low"},     // revenue 110000
		{2300, "medium"},  // revenue 253000
		{5000, "high"},    // revenue 550000
	}
	for _, tc := range cases {
		result, err := engine.Run("Custom Scenario", []models.SelectionEntry{{Product: bulk, Quantity: tc.quantity}}, models.TimeframeOneWeek)
		if err != nil {
			t.Fatalf("run with quantity %d: %v", tc.quantity, err)
		}
		assert.Equal(t, tc.want, result.Results.OverallRisk, "quantity %d", tc.quantity)
		assert.Equal(t, 25, result.Results.StockoutRisk)
	}
}

func TestEngineRun_ZeroCostTurnoverGuard(t *testing.T) {
	engine := NewEngine(nil)
	freebie := models.Product{
		ID:           "free-1",
		Name:         "Promo Giveaway",
		CurrentStock: 100,
		CostPrice:    decimal.Zero,
		SellingPrice: decimal.NewFromInt(100),
	}

	result, err := engine.Run("Custom Scenario", []models.SelectionEntry{{Product: freebie, Quantity: 5}}, models.TimeframeOneWeek)
	assert.NoError(t, err)
	assert.True(t, result.Results.InventoryTurnover.IsZero())
	assert.True(t, result.Results.TotalProfit.Equal(decimal.NewFromInt(500)))
}

func TestEngineRun_TimeframeDoesNotScaleRevenue(t *testing.T) {
	engine := NewEngine(nil)
	selection := []models.SelectionEntry{{Product: sodaProduct(), Quantity: 10}}

	week, err := engine.Run("Heatwave", selection, models.TimeframeOneWeek)
	assert.NoError(t, err)
	month, err := engine.Run("Heatwave", selection, models.TimeframeOneMonth)
	assert.NoError(t, err)

	// Totals describe one aggregate purchase; only the label changes.
	assert.True(t, week.Results.TotalRevenue.Equal(month.Results.TotalRevenue))
	assert.Equal(t, "1 Week", week.Duration)
	assert.Equal(t, "1 Month", month.Duration)
}

func TestEngineRun_ResultIDsAreUnique(t *testing.T) {
	engine := NewEngine(nil)
	selection := []models.SelectionEntry{{Product: sodaProduct(), Quantity: 1}}

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		result, err := engine.Run("Heatwave", selection, models.TimeframeOneWeek)
		assert.NoError(t, err)
		if seen[result.ID] {
			t.Fatalf("duplicate result id %s", result.ID)
		}
		seen[result.ID] = true
	}
}

func TestEngineRun_SnapshotIsDetached(t *testing.T) {
	engine := NewEngine(nil)
	selection := []models.SelectionEntry{{Product: sodaProduct(), Quantity: 45}}

	result, err := engine.Run("Heatwave", selection, models.TimeframeOneWeek)
	assert.NoError(t, err)

	selection[0].Quantity = 1
	assert.Equal(t, 45, result.Products[0].Quantity)
}

func TestStaticRecommendations_SameForEveryRun(t *testing.T) {
	provider := StaticRecommendations{}
	a := provider.Recommendations(models.SimulationMetrics{OverallRisk: "low"})
	b := provider.Recommendations(models.SimulationMetrics{OverallRisk: "high", StockoutRisk: 75})
	assert.Equal(t, a, b)
	assert.Len(t, a, 4)
}
