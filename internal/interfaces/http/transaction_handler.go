package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
)

// TransactionHandler maneja el registro y reversa de ventas y compras.
type TransactionHandler struct {
	uc *usecase.TransactionUsecase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *usecase.TransactionUsecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// CreateSale godoc
// @Summary      Registrar una venta
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSaleRequest  true  "Venta"
// @Success      201   {object}  dto.SaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *TransactionHandler) CreateSale(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RecordSale(c.Context(), in, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteSale godoc
// @Summary      Eliminar una venta devolviendo su cantidad al stock
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la venta"
// @Success      200  {object}  dto.DeleteTransactionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [delete]
func (h *TransactionHandler) DeleteSale(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.DeleteSale(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreatePurchase godoc
// @Summary      Registrar una compra de reposición
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseRequest  true  "Compra"
// @Success      201   {object}  dto.PurchaseResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *TransactionHandler) CreatePurchase(c *fiber.Ctx) error {
	var in dto.CreatePurchaseRequest
	if !parseAndValidate(c, &in) {
		return nil
	}
	out, err := h.uc.RecordPurchase(c.Context(), in, GetUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeletePurchase godoc
// @Summary      Eliminar una compra retirando su cantidad del stock
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        id   path  int  true  "ID de la compra"
// @Success      200  {object}  dto.DeleteTransactionResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchases/{id} [delete]
func (h *TransactionHandler) DeletePurchase(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser numérico"})
	}
	out, err := h.uc.DeletePurchase(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
