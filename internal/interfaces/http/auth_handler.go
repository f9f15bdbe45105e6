package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/auth"
	"github.com/jhoicas/kirana-api/internal/application/dto"
)

// AuthHandler maneja login, autorregistro y sesión actual.
type AuthHandler struct {
	uc *auth.Usecase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.Usecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar cuenta de autoservicio (permisos mínimos)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.Register(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Logout godoc
// @Summary      Cerrar sesión (sin revocación; el token expira solo)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(dto.StatusResponse{Status: "success", Message: "sesión cerrada"})
}

// Me godoc
// @Summary      Usuario autenticado actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	out, err := h.uc.Me(c.Context(), GetUsername(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
