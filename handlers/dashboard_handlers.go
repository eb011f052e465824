package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"portal/models"
	"portal/utils"
)

// HandleGetDashboardSummary aggregates the portal's sample data into the
// landing-page KPI tiles.
// GET /api/v1/portal/dashboard/summary
func HandleGetDashboardSummary(c *fiber.Ctx) error {
	var summary models.DashboardSummary

	// Revenue counts every order that wasn't cancelled.
	revenue := decimal.Zero
	for _, o := range sampleOrders {
		if o.Status == "cancelled" {
			continue
		}
		revenue = revenue.Add(o.TotalAmount)
		if o.Status == "pending" {
			summary.PendingOrders++
		}
	}
	summary.TotalOrderRevenue = models.KpiData{
		Value: revenue,
		Label: utils.FormatCurrency(revenue),
	}

	for _, v := range sampleVendors {
		if v.IsActive {
			summary.ActiveVendors++
		}
	}
	for _, v := range sampleFleet {
		if v.Status == "on_route" {
			summary.VehiclesOnRoad++
		}
	}
	for _, s := range sampleStaff {
		if s.IsOnDuty {
			summary.StaffOnDuty++
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": summary})
}
