package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// User represents a portal user (admin, manager, or staff).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Region    string    `json:"region"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// --- Portal Screen Models ---

// Order represents a customer order shown on the orders screen.
type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Region       string          `json:"region"`
	Status       string          `json:"status"`
	ItemCount    int             `json:"item_count"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	OrderedAt    time.Time       `json:"ordered_at"`
}

// Vendor represents a supplier shown on the vendor management screen.
type Vendor struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Region       string  `json:"region"`
	ContactPhone string  `json:"contact_phone"`
	Rating       float64 `json:"rating"`
	IsActive     bool    `json:"is_active"`
}

// Vehicle represents a delivery vehicle shown on the fleet screen.
type Vehicle struct {
	ID           string    `json:"id"`
	PlateNumber  string    `json:"plate_number"`
	Type         string    `json:"type"`
	Region       string    `json:"region"`
	Status       string    `json:"status"`
	DriverName   string    `json:"driver_name"`
	LastServiced time.Time `json:"last_serviced"`
}

// StaffMember represents an employee on the staff roster screen.
type StaffMember struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Region   string `json:"region"`
	Shift    string `json:"shift"`
	IsOnDuty bool   `json:"is_on_duty"`
}

// KpiData represents a single Key Performance Indicator.
type KpiData struct {
	Value decimal.Decimal `json:"value"`
	Label string          `json:"label"`
}

// DashboardSummary defines the structure for the operations dashboard summary.
type DashboardSummary struct {
	TotalOrderRevenue KpiData `json:"total_order_revenue"`
	PendingOrders     int     `json:"pending_orders"`
	ActiveVendors     int     `json:"active_vendors"`
	VehiclesOnRoad    int     `json:"vehicles_on_road"`
	StaffOnDuty       int     `json:"staff_on_duty"`
}
