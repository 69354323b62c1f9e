package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/RIBO420/offerte-builder-sub001/internal/application/dto"
	"github.com/RIBO420/offerte-builder-sub001/pkg/jwt"
)

// Locals key voor het UserID in Fiber.
const LocalUserID = "user_id"

// AuthMiddleware valideert het Bearer JWT en zet het UserID in c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization-header vereist"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formaat: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "leeg token"})
		}
		userID, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token ongeldig of verlopen"})
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUserID geeft het UserID uit de context (na de auth-middleware).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
