package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"portal/config"
	"portal/models"
	"portal/utils"
)

// HandleAdviseOnResult asks the Gemini advisor to narrate a stored
// simulation run: what the numbers mean and what to watch out for.
// POST /api/v1/simulator/advisor
func HandleAdviseOnResult(c *fiber.Ctx) error {
	var req struct {
		ResultID string `json:"resultId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	sess := sessionFor(currentUserID(c))
	var result *models.SimulationResult
	for _, r := range sess.History() {
		if r.ID == req.ResultID {
			result = r
			break
		}
	}
	if result == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"status": "error", "message": "Simulation result not found"})
	}

	if config.AppConfig.GeminiAPIKey == "" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "error", "message": "Advisor is not configured"})
	}

	// Initialize the Gemini client
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		log.Printf("Error creating Gemini client: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to initialize advisor"})
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-1.5-pro-latest")
	resp, err := model.GenerateContent(ctx, genai.Text(advisorPrompt(result)))
	if err != nil {
		log.Printf("Error generating advisor content: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Failed to generate advice"})
	}

	return c.JSON(fiber.Map{"status": "success", "data": resp})
}

func advisorPrompt(result *models.SimulationResult) string {
	var items []string
	for _, e := range result.Products {
		items = append(items, fmt.Sprintf("%s x%d", e.Product.Name, e.Quantity))
	}

	return fmt.Sprintf(
		"You are a retail operations advisor. A %s inventory simulation over %s "+
			"projected revenue of %s, profit of %s, inventory turnover of %s and a "+
			"stock-out risk score of %d (overall risk: %s). The selection was: %s. "+
			"In three short paragraphs, explain what these figures suggest and what "+
			"the operations team should do next.",
		result.ScenarioName,
		result.Duration,
		utils.FormatCurrency(result.Results.TotalRevenue),
		utils.FormatCurrency(result.Results.TotalProfit),
		result.Results.InventoryTurnover.StringFixed(2),
		result.Results.StockoutRisk,
		result.Results.OverallRisk,
		strings.Join(items, ", "),
	)
}
