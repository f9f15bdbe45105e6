package http

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
)

var validate = validator.New()

// parseAndValidate decodifica el cuerpo JSON y aplica las reglas de los tags
// validate. Si falla escribe la respuesta 400 y devuelve false.
func parseAndValidate(c *fiber.Ctx, in any) bool {
	if err := c.BodyParser(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return false
	}
	if err := validate.Struct(in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		return false
	}
	return true
}
