package handlers

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"portal/config"
	"portal/models"
)

type rosterUser struct {
	user         models.User
	passwordHash []byte
}

var (
	rosterOnce sync.Once
	roster     map[string]*rosterUser // keyed by email
)

// seedRoster builds the demo user roster. There is no user database in this
// portal; credentials live in memory for the life of the process.
func seedRoster() {
	seed := []struct {
		id, name, email, role, region, password string
	}{
		{"usr-001", "Aye Chan", "aye.chan@portal.example", "admin", "Yangon", "admin123"},
		{"usr-002", "Min Thu", "min.thu@portal.example", "manager", "Yangon", "manager123"},
		{"usr-003", "Su Myat", "su.myat@portal.example", "manager", "Mandalay", "manager123"},
		{"usr-004", "Ko Naing", "ko.naing@portal.example", "staff", "Bago", "staff123"},
	}

	roster = make(map[string]*rosterUser, len(seed))
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Error hashing roster password for %s: %v", u.email, err)
		}
		roster[u.email] = &rosterUser{
			user: models.User{
				ID:        u.id,
				Name:      u.name,
				Email:     u.email,
				Role:      u.role,
				Region:    u.region,
				IsActive:  true,
				CreatedAt: time.Now(),
			},
			passwordHash: hash,
		}
	}
}

// HandleLogin authenticates a portal user and returns a JWT token.
// POST /api/v1/auth/login
func HandleLogin(c *fiber.Ctx) error {
	rosterOnce.Do(seedRoster)

	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Cannot parse JSON"})
	}

	entry, ok := roster[req.Email]
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}

	if !entry.user.IsActive {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "User account is inactive"})
	}

	if err := bcrypt.CompareHashAndPassword(entry.passwordHash, []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Invalid credentials"})
	}

	token, err := createJWT(entry.user.ID, entry.user.Role)
	if err != nil {
		log.Printf("Error creating JWT for user %s: %v", entry.user.ID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Could not sign token"})
	}

	return c.JSON(fiber.Map{"accessToken": token, "user": entry.user})
}

func createJWT(userID, role string) (string, error) {
	claims := models.JwtClaims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * 72)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
