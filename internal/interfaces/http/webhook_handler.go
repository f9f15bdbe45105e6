package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/orders"
	"github.com/jhoicas/kirana-api/internal/interfaces/http/twiml"
)

// WebhookHandler recibe los pedidos simulados de mensajería. Ambos endpoints
// son públicos: un proveedor real firma los webhooks, acá no hay firma.
type WebhookHandler struct {
	uc *orders.Usecase
}

// NewWebhookHandler construye el handler.
func NewWebhookHandler(uc *orders.Usecase) *WebhookHandler {
	return &WebhookHandler{uc: uc}
}

// WhatsAppOrder godoc
// @Summary      Recibir un pedido simulado de WhatsApp
// @Description  Los fallos de negocio se reportan en el cuerpo con status
// @Description  "error" y HTTP 200, como espera un proveedor de mensajería.
// @Tags         webhooks
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WhatsAppOrderRequest  true  "Pedido"
// @Success      200   {object}  dto.WhatsAppOrderResponse
// @Router       /api/webhook/whatsapp [post]
func (h *WebhookHandler) WhatsAppOrder(c *fiber.Ctx) error {
	var in dto.WhatsAppOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.JSON(dto.WhatsAppOrderResponse{Status: "error", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(&in); err != nil {
		return c.JSON(dto.WhatsAppOrderResponse{Status: "error", Message: err.Error()})
	}
	out, err := h.uc.PlaceWhatsAppOrder(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SMS godoc
// @Summary      Responder una consulta de precio por SMS (TwiML)
// @Tags         webhooks
// @Accept       x-www-form-urlencoded
// @Produce      xml
// @Param        Body  formData  string  false  "Texto del SMS entrante"
// @Success      200   {string}  string  "documento TwiML"
// @Router       /api/sms [post]
func (h *WebhookHandler) SMS(c *fiber.Ctx) error {
	body := c.FormValue("Body")
	reply, err := h.uc.SMSReply(c.Context(), body)
	if err != nil {
		// Un proveedor de SMS espera TwiML incluso ante fallas internas.
		reply = "Lo sentimos, no pudimos procesar su consulta. Intente de nuevo más tarde."
	}
	xml, err := twiml.Message(reply)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/xml; charset=utf-8")
	return c.SendString(xml)
}
