package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"portal/catalog"
	"portal/config"
	"portal/handlers"
	"portal/middleware"
	"portal/routes"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	config.AppConfig.RunDelay = 800 * time.Millisecond
	if ms := os.Getenv("RUN_DELAY_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n >= 0 {
			config.AppConfig.RunDelay = time.Duration(n) * time.Millisecond
		}
	}
	middleware.JWTSecret = []byte(jwtSecret)

	// Seed the static catalogs and wire the handlers
	products := catalog.NewProductCatalog(catalog.SeedProducts())
	scenarios := catalog.NewScenarioCatalog(catalog.SeedScenarios())
	handlers.Setup(products, scenarios)

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
