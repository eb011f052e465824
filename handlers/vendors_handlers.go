package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portal/models"
	"portal/utils"
)

// sampleVendors is the static data behind the vendor management screen.
var sampleVendors = []models.Vendor{
	{ID: "ven-001", Name: "Ayeyarwady Beverages Co", Category: "Beverages", Region: "Yangon", ContactPhone: "09-421-000-111", Rating: 4.6, IsActive: true},
	{ID: "ven-002", Name: "Golden Harvest Foods", Category: "Groceries", Region: "Mandalay", ContactPhone: "09-421-000-222", Rating: 4.2, IsActive: true},
	{ID: "ven-003", Name: "Mandalay Cooling Systems", Category: "Appliances", Region: "Mandalay", ContactPhone: "09-421-000-333", Rating: 3.9, IsActive: true},
	{ID: "ven-004", Name: "Shwe Snack Factory", Category: "Snacks", Region: "Bago", ContactPhone: "09-421-000-444", Rating: 4.8, IsActive: true},
	{ID: "ven-005", Name: "Monsoon Gear Trading", Category: "Rainwear", Region: "Yangon", ContactPhone: "09-421-000-555", Rating: 3.5, IsActive: false},
	{ID: "ven-006", Name: "Festival Crafts Collective", Category: "Seasonal", Region: "Naypyidaw", ContactPhone: "09-421-000-666", Rating: 4.1, IsActive: true},
}

// HandleListVendors returns the vendor screen data with optional category,
// region and active-status filters.
// GET /api/v1/portal/vendors?category=&region=&active=&page=&pageSize=
func HandleListVendors(c *fiber.Ctx) error {
	category := c.Query("category")
	region := c.Query("region")
	active := c.Query("active")

	filtered := make([]models.Vendor, 0)
	for _, v := range sampleVendors {
		if category != "" && !strings.EqualFold(v.Category, category) {
			continue
		}
		if region != "" && !strings.EqualFold(v.Region, region) {
			continue
		}
		if active != "" {
			want, err := strconv.ParseBool(active)
			if err == nil && v.IsActive != want {
				continue
			}
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
