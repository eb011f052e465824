package handlers

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"portal/catalog"
	"portal/simulation"
)

var (
	productCatalog  *catalog.ProductCatalog
	scenarioCatalog *catalog.ScenarioCatalog

	sessionsMu sync.Mutex
	sessions   map[string]*simulation.Session
)

// Setup wires the static catalogs and the per-user simulator session store.
// Must be called once before routes are registered.
func Setup(products *catalog.ProductCatalog, scenarios *catalog.ScenarioCatalog) {
	productCatalog = products
	scenarioCatalog = scenarios
	sessions = make(map[string]*simulation.Session)
}

// sessionFor returns the simulator session for a user, creating it on first
// use. Each user works against an independent session; requests from the
// same user are expected to arrive one at a time.
func sessionFor(userID string) *simulation.Session {
	sessionsMu.Lock()
	defer sessionsMu.Unlock()

	s, ok := sessions[userID]
	if !ok {
		s = simulation.NewSession(productCatalog, scenarioCatalog, nil)
		sessions[userID] = s
	}
	return s
}

func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("userID").(string)
	return id
}
