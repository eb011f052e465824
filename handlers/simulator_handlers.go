package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"portal/config"
	"portal/models"
	"portal/simulation"
)

// HandleListScenarios returns the demand scenario catalog.
// GET /api/v1/simulator/scenarios
func HandleListScenarios(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "success", "data": scenarioCatalog.List()})
}

// HandleListProducts returns the product catalog, optionally filtered by
// category and a case-insensitive name search.
// GET /api/v1/simulator/products?category=&search=
func HandleListProducts(c *fiber.Ctx) error {
	category := c.Query("category")
	search := c.Query("search")

	products := productCatalog.Filter(category, search)
	return c.JSON(fiber.Map{"status": "success", "data": products})
}

// HandleGetSession returns the user's current working selection.
// GET /api/v1/simulator/session
func HandleGetSession(c *fiber.Ctx) error {
	sess := sessionFor(currentUserID(c))
	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"scenario_name": sess.ScenarioName(),
		"selection":     sess.Selection(),
	}})
}

// HandleSelectScenario resets the selection and auto-populates it from the
// chosen scenario's keywords.
// POST /api/v1/simulator/session/scenario
func HandleSelectScenario(c *fiber.Ctx) error {
	var req struct {
		ScenarioID string `json:"scenarioId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	sess := sessionFor(currentUserID(c))
	if err := sess.SelectScenario(req.ScenarioID); err != nil {
		if errors.Is(err, simulation.ErrScenarioNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Scenario not found"})
		}
		log.Printf("Error selecting scenario %s: %v", req.ScenarioID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to select scenario"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"scenario_name": sess.ScenarioName(),
		"selection":     sess.Selection(),
	}})
}

// HandleAddProduct adds one unit of a product to the selection.
// POST /api/v1/simulator/session/products
func HandleAddProduct(c *fiber.Ctx) error {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	if _, ok := productCatalog.Get(req.ProductID); !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Product not found"})
	}

	sess := sessionFor(currentUserID(c))
	sess.AddProduct(req.ProductID)

	return c.JSON(fiber.Map{"status": "success", "data": sess.Selection()})
}

// HandleSetQuantity sets a selected product's quantity. Zero removes the
// product from the selection.
// PUT /api/v1/simulator/session/products/:productId
func HandleSetQuantity(c *fiber.Ctx) error {
	productID := c.Params("productId")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	sess := sessionFor(currentUserID(c))
	sess.SetQuantity(productID, req.Quantity)

	return c.JSON(fiber.Map{"status": "success", "data": sess.Selection()})
}

// HandleResetSession empties the working selection. Run history is kept.
// DELETE /api/v1/simulator/session
func HandleResetSession(c *fiber.Ctx) error {
	sess := sessionFor(currentUserID(c))
	sess.Reset()
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleRunSimulation schedules a run behind the configured processing delay
// and waits for it. A newer run issued while this one is pending cancels it.
// POST /api/v1/simulator/run
func HandleRunSimulation(c *fiber.Ctx) error {
	var req struct {
		Timeframe string `json:"timeframe"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	timeframe := models.TimeframeOneWeek
	if req.Timeframe != "" {
		timeframe = models.Timeframe(req.Timeframe)
		if !timeframe.Valid() {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Unknown timeframe, expected 1week, 2weeks or 1month"})
		}
	}

	sess := sessionFor(currentUserID(c))
	pending := sess.Schedule(timeframe, config.AppConfig.RunDelay)

	result, err := pending.Wait(c.Context())
	if err != nil {
		switch {
		case errors.Is(err, simulation.ErrEmptySelection):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "No products selected"})
		case errors.Is(err, simulation.ErrRunCancelled):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "Run superseded by a newer simulation"})
		default:
			log.Printf("Error running simulation: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to run simulation"})
		}
	}

	return c.JSON(fiber.Map{"status": "success", "data": result})
}

// HandleGetHistory returns the user's run history, newest first.
// GET /api/v1/simulator/history
func HandleGetHistory(c *fiber.Ctx) error {
	sess := sessionFor(currentUserID(c))
	return c.JSON(fiber.Map{"status": "success", "data": sess.History()})
}

// HandleReplayResult re-hydrates the selection from a stored run and returns
// the stored result without recomputation.
// POST /api/v1/simulator/history/:resultId/replay
func HandleReplayResult(c *fiber.Ctx) error {
	resultID := c.Params("resultId")

	sess := sessionFor(currentUserID(c))
	result, err := sess.Replay(resultID)
	if err != nil {
		if errors.Is(err, simulation.ErrResultNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Simulation result not found"})
		}
		log.Printf("Error replaying result %s: %v", resultID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to replay result"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": fiber.Map{
		"result":    result,
		"selection": sess.Selection(),
	}})
}
