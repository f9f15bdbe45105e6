package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/pkg/jwt"
)

// Locals key para el username autenticado en Fiber.
const LocalUsername = "username"

// UserLoader resuelve el usuario actual para la autorización por permiso.
type UserLoader interface {
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// AuthMiddleware valida el Bearer Token JWT y deja el username en c.Locals.
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
		username, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUsername, username)
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// RequirePermission autoriza la petición contra los permisos vigentes del
// usuario. El permiso se evalúa contra la base en cada request, no contra el
// token: revocar un permiso surte efecto de inmediato.
func RequirePermission(loader UserLoader, perm entity.Permission) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username := GetUsername(c)
		if username == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "no autenticado"})
		}
		user, err := loader.GetByUsername(c.Context(), username)
		if err != nil {
			errLog.Error().Err(err).Str("username", username).Msg("carga de usuario para autorización")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: internalErrorMessage})
		}
		if user == nil {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "USER_NOT_FOUND", Message: "usuario no encontrado"})
		}
		if !user.IsActive {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INACTIVE_USER", Message: "usuario desactivado"})
		}
		if !user.Permissions.Has(perm) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "FORBIDDEN",
				Message: "Permiso requerido: " + string(perm),
			})
		}
		c.Locals("user_id", user.ID)
		return c.Next()
	}
}

// GetUserID devuelve el ID del usuario autorizado, o nil si no pasó por
// RequirePermission.
func GetUserID(c *fiber.Ctx) *int {
	v := c.Locals("user_id")
	if v == nil {
		return nil
	}
	if id, ok := v.(int); ok {
		return &id
	}
	return nil
}
