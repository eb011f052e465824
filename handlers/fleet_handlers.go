package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"portal/models"
	"portal/utils"
)

// sampleFleet is the static data behind the fleet screen.
var sampleFleet = []models.Vehicle{
	{ID: "veh-001", PlateNumber: "YGN-4821", Type: "box_truck", Region: "Yangon", Status: "on_route", DriverName: "U Kyaw Win", LastServiced: time.Date(2025, 4, 18, 0, 0, 0, 0, time.UTC)},
	{ID: "veh-002", PlateNumber: "YGN-5110", Type: "van", Region: "Yangon", Status: "idle", DriverName: "Ma Hnin Wai", LastServiced: time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)},
	{ID: "veh-003", PlateNumber: "MDY-2207", Type: "box_truck", Region: "Mandalay", Status: "on_route", DriverName: "U Soe Moe", LastServiced: time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC)},
	{ID: "veh-004", PlateNumber: "MDY-2381", Type: "motorbike", Region: "Mandalay", Status: "maintenance", DriverName: "Ko Zaw Lin", LastServiced: time.Date(2025, 5, 28, 0, 0, 0, 0, time.UTC)},
	{ID: "veh-005", PlateNumber: "BGO-0944", Type: "van", Region: "Bago", Status: "on_route", DriverName: "U Than Htut", LastServiced: time.Date(2025, 4, 9, 0, 0, 0, 0, time.UTC)},
	{ID: "veh-006", PlateNumber: "NPW-1600", Type: "box_truck", Region: "Naypyidaw", Status: "idle", DriverName: "Ko Myo Min", LastServiced: time.Date(2025, 5, 15, 0, 0, 0, 0, time.UTC)},
}

// HandleListFleet returns the fleet screen data with optional status, type
// and region filters.
// GET /api/v1/portal/fleet?status=&type=&region=&page=&pageSize=
func HandleListFleet(c *fiber.Ctx) error {
	status := c.Query("status")
	vehicleType := c.Query("type")
	region := c.Query("region")

	filtered := make([]models.Vehicle, 0)
	for _, v := range sampleFleet {
		if status != "" && v.Status != status {
			continue
		}
		if vehicleType != "" && v.Type != vehicleType {
			continue
		}
		if region != "" && !strings.EqualFold(v.Region, region) {
			continue
		}
		filtered = append(filtered, v)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       utils.Paginate(filtered, page, pageSize),
		"pagination": utils.CreatePagination(len(filtered), page, pageSize),
	})
}
