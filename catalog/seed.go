package catalog

import (
	"github.com/shopspring/decimal"

	"portal/models"
)

// SeedProducts returns the static product list the simulator works against.
// Stock and demand figures are representative sample data for the portal.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: "bev-001", Name: "Sparkling Lime Soda 330ml", Category: "Beverages", CurrentStock: 450, CostPrice: decimal.NewFromInt(85), SellingPrice: decimal.NewFromInt(110), DailyDemand: 32},
		{ID: "bev-002", Name: "Drinking Water 1L", Category: "Beverages", CurrentStock: 600, CostPrice: decimal.NewFromInt(120), SellingPrice: decimal.NewFromInt(150), DailyDemand: 48},
		{ID: "bev-003", Name: "Iced Milk Tea Bottle", Category: "Beverages", CurrentStock: 220, CostPrice: decimal.NewFromInt(300), SellingPrice: decimal.NewFromInt(420), DailyDemand: 18},
		{ID: "frz-001", Name: "Ice Cream Cup Vanilla", Category: "Frozen", CurrentStock: 180, CostPrice: decimal.NewFromInt(450), SellingPrice: decimal.NewFromInt(700), DailyDemand: 22},
		{ID: "app-001", Name: "Tower Cooling Fan", Category: "Appliances", CurrentStock: 85, CostPrice: decimal.NewFromInt(2500), SellingPrice: decimal.NewFromInt(3200), DailyDemand: 4},
		{ID: "app-002", Name: "Ceiling Fan 56 Inch", Category: "Appliances", CurrentStock: 40, CostPrice: decimal.NewFromInt(18000), SellingPrice: decimal.NewFromInt(23500), DailyDemand: 1},
		{ID: "fes-001", Name: "Festival Gift Basket", Category: "Seasonal", CurrentStock: 120, CostPrice: decimal.NewFromInt(9500), SellingPrice: decimal.NewFromInt(13000), DailyDemand: 6},
		{ID: "fes-002", Name: "Paper Lantern Set", Category: "Seasonal", CurrentStock: 300, CostPrice: decimal.NewFromInt(1200), SellingPrice: decimal.NewFromInt(1800), DailyDemand: 10},
		{ID: "snk-001", Name: "Fried Bean Snack Pack", Category: "Snacks", CurrentStock: 800, CostPrice: decimal.NewFromInt(350), SellingPrice: decimal.NewFromInt(500), DailyDemand: 60},
		{ID: "rain-001", Name: "Folding Umbrella", Category: "Rainwear", CurrentStock: 250, CostPrice: decimal.NewFromInt(2200), SellingPrice: decimal.NewFromInt(3000), DailyDemand: 8},
		{ID: "rain-002", Name: "Rubber Rain Boots", Category: "Rainwear", CurrentStock: 140, CostPrice: decimal.NewFromInt(5500), SellingPrice: decimal.NewFromInt(7200), DailyDemand: 3},
		{ID: "grc-001", Name: "Jasmine Rice 5kg", Category: "Groceries", CurrentStock: 500, CostPrice: decimal.NewFromInt(8500), SellingPrice: decimal.NewFromInt(9800), DailyDemand: 26},
	}
}

// SeedScenarios returns the demand scenarios offered by the simulator. The
// custom scenario has no keywords and starts with an empty selection.
func SeedScenarios() []models.ScenarioTemplate {
	return []models.ScenarioTemplate{
		{
			ID:          "heatwave",
			Name:        "Heatwave",
			Description: "Sustained high temperatures drive demand for drinks, frozen goods and cooling appliances.",
			Keywords:    []string{"soda", "water", "ice", "cooling", "fan"},
			EstimatedImpact: models.EstimatedImpact{
				Revenue: "+25-40%",
				Margin:  "+5%",
				Risk:    "medium",
			},
		},
		{
			ID:          "festival",
			Name:        "Festival Season",
			Description: "Holiday shopping lifts gift sets, decorations and snack sales across all regions.",
			Keywords:    []string{"gift", "lantern", "snack", "seasonal"},
			EstimatedImpact: models.EstimatedImpact{
				Revenue: "+30-50%",
				Margin:  "+8%",
				Risk:    "medium",
			},
		},
		{
			ID:          "monsoon",
			Name:        "Monsoon",
			Description: "Heavy rain shifts demand toward umbrellas, boots and other rainwear.",
			Keywords:    []string{"umbrella", "rain", "boot"},
			EstimatedImpact: models.EstimatedImpact{
				Revenue: "+10-15%",
				Margin:  "-2%",
				Risk:    "low",
			},
		},
		{
			ID:          "custom",
			Name:        "Custom Scenario",
			Description: "Build a selection by hand, starting from an empty basket.",
			Keywords:    nil,
			EstimatedImpact: models.EstimatedImpact{
				Revenue: "n/a",
				Margin:  "n/a",
				Risk:    "unknown",
			},
		},
	}
}
