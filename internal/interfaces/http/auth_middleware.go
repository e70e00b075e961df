package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/renova-gestion/internal/application/dto"
	"github.com/tu-usuario/renova-gestion/pkg/jwt"
)

// Locals keys para Username y UserType en Fiber.
const (
	LocalUsername = "username"
	LocalUserType = "user_type"
)

// AuthMiddleware valida el Bearer Token JWT y extrae Username y UserType a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		username, userType, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalUserType, userType)
		return c.Next()
	}
}

// RequireUserType autoriza solo a los tipos de usuario indicados. Debe ir
// después de AuthMiddleware.
func RequireUserType(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userType := GetUserType(c)
		for _, a := range allowed {
			if userType == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "tipo de usuario sin permiso para esta operación"})
	}
}

// GetUsername devuelve el Username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUserType devuelve el UserType del contexto (después del middleware de auth).
func GetUserType(c *fiber.Ctx) string {
	v := c.Locals(LocalUserType)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
