package handlers

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"portal/models"
	"portal/utils"
)

// sampleStaff is the static data behind the staff roster screen.
var sampleStaff = []models.StaffMember{
	{ID: "stf-001", Name: "Ma Thandar Oo", Role: "store_supervisor", Region: "Yangon", Shift: "morning", IsOnDuty: true},
	{ID: "stf-002", Name: "Ko Aung Myat", Role: "warehouse_picker", Region: "Yangon", Shift: "morning", IsOnDuty: true},
	{ID: "stf-003", Name: "Ma Ei Phyu", Role: "cashier", Region: "Yangon", Shift: "evening", IsOnDuty: false},
	{ID: "stf-004", Name: "U Hla Shwe", Role: "warehouse_picker", Region: "Mandalay", Shift: "night", IsOnDuty: true},
	{ID: "stf-005", Name: "Ko Thura Zaw", Role: "delivery_driver", Region: "Mandalay", Shift: "morning", IsOnDuty: false},
	{ID: "stf-006", Name: "Ma Khin Lay", Role: "store_supervisor", Region: "Bago", Shift: "evening", IsOnDuty: true},
	{ID: "stf-007", Name: "Ko Wai Yan", Role: "cashier", Region: "Naypyidaw", Shift: "morning", IsOnDuty: true},
}

// HandleListStaff returns the staff roster with optional role, region, shift
// and on-duty filters.
// GET /api/v1/portal/staff?role=&region=&shift=&onDuty=&page=&pageSize=
func HandleListStaff(c *fiber.Ctx) error {
	role := c.Query("role")
	region := c.Query("region")
	shift := c.Query("shift")
	onDuty := c.Query("onDuty")

	filtered := make([]models.StaffMember, 0)
	for _, s := range sampleStaff {
		if role != "" && s.Role != role {
			continue
		}
		if region != "" && !strings.EqualFold(s.Region, region) {
			continue
		}
		if shift != "" && s.Shift != shift {
			continue
		}
		if onDuty != "" {
			want, err := strconv.ParseBool(onDuty)
			if err == nil && s.IsOnDuty != want {
				continue
			}
		}
		filtered = append(filtered, s)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "10"))

	return c.JSON(fiber.Map{
		"status":     "success",
		"data":       utils.Paginate(filtered, page, pageSize),
		"pagination": utils.CreatePagination(len(filtered), page, pageSize),
	})
}
