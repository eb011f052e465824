package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"portal/models"
	"portal/utils"
)

// sampleOrders is the static data behind the orders screen.
var sampleOrders = []models.Order{
	{ID: "ord-1001", CustomerName: "Shwe La Min Mart", Region: "Yangon", Status: "pending", ItemCount: 14, TotalAmount: decimal.NewFromInt(452000), OrderedAt: time.Date(2025, 6, 2, 9, 15, 0, 0, time.UTC)},
	{ID: "ord-1002", CustomerName: "Golden Valley Grocers", Region: "Yangon", Status: "delivered", ItemCount: 6, TotalAmount: decimal.NewFromInt(128500), OrderedAt: time.Date(2025, 6, 2, 11, 40, 0, 0, time.UTC)},
	{ID: "ord-1003", CustomerName: "Aung Family Store", Region: "Mandalay", Status: "in_transit", ItemCount: 22, TotalAmount: decimal.NewFromInt(787300), OrderedAt: time.Date(2025, 6, 3, 8, 5, 0, 0, time.UTC)},
	{ID: "ord-1004", CustomerName: "City Corner Mini Mart", Region: "Bago", Status: "pending", ItemCount: 9, TotalAmount: decimal.NewFromInt(231000), OrderedAt: time.Date(2025, 6, 3, 14, 22, 0, 0, time.UTC)},
	{ID: "ord-1005", CustomerName: "Moe Kaung Retail", Region: "Mandalay", Status: "delivered", ItemCount: 31, TotalAmount: decimal.NewFromInt(1204800), OrderedAt: time.Date(2025, 6, 4, 10, 0, 0, 0, time.UTC)},
	{ID: "ord-1006", CustomerName: "Thiri Convenience", Region: "Naypyidaw", Status: "cancelled", ItemCount: 4, TotalAmount: decimal.NewFromInt(86200), OrderedAt: time.Date(2025, 6, 4, 16, 45, 0, 0, time.UTC)},
	{ID: "ord-1007", CustomerName: "Pearl Street Shop", Region: "Yangon", Status: "in_transit", ItemCount: 17, TotalAmount: decimal.NewFromInt(556400), OrderedAt: time.Date(2025, 6, 5, 9, 30, 0, 0, time.UTC)},
	{ID: "ord-1008", CustomerName: "Mingalar Market Stall 12", Region: "Bago", Status: "pending", ItemCount: 11, TotalAmount: decimal.NewFromInt(342700), OrderedAt: time.Date(2025, 6, 5, 13, 10, 0, 0, time.UTC)},
}

// orderView decorates an order with a display-formatted total.
type orderView struct {
	models.Order
	TotalDisplay string `json:"total_display"`
}

// HandleListOrders returns the orders screen data with optional status,
// region and customer-name filters.
// GET /api/v1/portal/orders?status=&region=&search=&page=&pageSize=
func HandleListOrders(c *fiber.Ctx) error {
	status := c.Query("status")
	region := c.Query("region")
	search := strings.ToLower(c.Query("search"))

	filtered := make([]models.Order, 0)
	for _, o := range sampleOrders {
		if status != "" && o.Status != status {
			continue
		}
		if region != "" && !strings.EqualFold(o.Region, region) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(o.CustomerName), search) {
			continue
		}
		filtered = append(filtered, o)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))

	views := make([]orderView, 0)
	for _, o := range utils.Paginate(filtered, page, pageSize) {
		views = append(views, orderView{Order: o, TotalDisplay: utils.FormatCurrency(o.TotalAmount)})
	}

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       views,
		"pagination": utils.CreatePagination(len(filtered), page, pageSize),
	})
}
