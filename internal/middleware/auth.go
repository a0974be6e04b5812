// Package middleware provides HTTP middleware components for the application.
// It includes authentication and authorization middleware for the fiber
// web framework.
package middleware

import (
	"log"
	"strings"

	"simpasar/internal/models"
	"simpasar/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// AuthMiddleware handles JWT token validation. It extracts the token from
// the Authorization header, validates it, and adds the user claims to the
// request context.
func AuthMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	_, claims, err := utils.ParseToken(tokenString)
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	c.Locals("claims", claims)
	c.Locals("userID", claims.UserID)

	return c.Next()
}

// RequirePermission gates a route on one claim permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*models.UserClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
		}
		if !claims.HasPermission(permission) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "insufficient permissions"})
		}
		return c.Next()
	}
}

// RequireSuperAdmin gates a route on the super-admin role.
func RequireSuperAdmin(c *fiber.Ctx) error {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}
	if claims.Role != models.RoleSuperAdmin {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "super admin role required"})
	}
	return c.Next()
}
