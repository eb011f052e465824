package routes

import (
	"portal/handlers"
	"portal/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Inventory Simulator ---
	sim := api.Group("/simulator", middleware.JWTMiddleware, middleware.ManagerRequired)

	// Catalogs
	sim.Get("/scenarios", handlers.HandleListScenarios)
	sim.Get("/products", handlers.HandleListProducts)

	// Working selection
	sim.Get("/session", handlers.HandleGetSession)
	sim.Post("/session/scenario", handlers.HandleSelectScenario)
	sim.Post("/session/products", handlers.HandleAddProduct)
	sim.Put("/session/products/:productId", handlers.HandleSetQuantity)
	sim.Delete("/session", handlers.HandleResetSession)

	// Runs and history
	sim.Post("/run", handlers.HandleRunSimulation)
	sim.Get("/history", handlers.HandleGetHistory)
	sim.Post("/history/:resultId/replay", handlers.HandleReplayResult)
	sim.Post("/advisor", handlers.HandleAdviseOnResult)

	// --- Portal Screens ---
	portal := api.Group("/portal", middleware.JWTMiddleware)
	portal.Get("/orders", handlers.HandleListOrders)
	portal.Get("/vendors", handlers.HandleListVendors)
	portal.Get("/fleet", handlers.HandleListFleet)
	portal.Get("/dashboard/summary", handlers.HandleGetDashboardSummary)
	portal.Get("/staff", middleware.AdminRequired, handlers.HandleListStaff)
}
