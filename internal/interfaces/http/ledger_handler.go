package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
)

// LedgerHandler expone los libros y reportes derivados.
type LedgerHandler struct {
	uc *usecase.LedgerUsecase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *usecase.LedgerUsecase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// productIDQuery lee el filtro opcional product_id.
func productIDQuery(c *fiber.Ctx) *int {
	if id := c.QueryInt("product_id", 0); id > 0 {
		return &id
	}
	return nil
}

// Sales godoc
// @Summary      Libro de ventas
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        date_from   query  string  false  "Fecha inicial (ISO o dd-mm-yyyy)"
// @Param        date_to     query  string  false  "Fecha final (ISO o dd-mm-yyyy)"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Success      200  {array}  dto.SalesLedgerEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledgers/sales [get]
func (h *LedgerHandler) Sales(c *fiber.Ctx) error {
	out, err := h.uc.SalesLedger(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Purchases godoc
// @Summary      Libro de compras
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        date_from   query  string  false  "Fecha inicial (ISO o dd-mm-yyyy)"
// @Param        date_to     query  string  false  "Fecha final (ISO o dd-mm-yyyy)"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Success      200  {array}  dto.PurchaseLedgerEntry
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledgers/purchases [get]
func (h *LedgerHandler) Purchases(c *fiber.Ctx) error {
	out, err := h.uc.PurchaseLedger(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Libro de stock de un producto (apertura + balance corrido)
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {object}  dto.StockLedgerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ledgers/stock/{product_id} [get]
func (h *LedgerHandler) Stock(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "product_id debe ser numérico"})
	}
	out, err := h.uc.StockLedger(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Products godoc
// @Summary      Productos con sus totales de movimiento (selección de libros)
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LedgerProduct
// @Router       /api/ledgers/products [get]
func (h *LedgerHandler) Products(c *fiber.Ctx) error {
	out, err := h.uc.LedgerProducts(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Summary godoc
// @Summary      Tablero de resumen de libros
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LedgerSummaryResponse
// @Router       /api/ledgers/summary [get]
func (h *LedgerHandler) Summary(c *fiber.Ctx) error {
	out, err := h.uc.Summary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Snapshot godoc
// @Summary      Snapshot de stock, vivo o reconstruido a una fecha de corte
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        date_from   query  string  false  "Corte alternativo (stock al inicio)"
// @Param        date_to     query  string  false  "Fecha de corte"
// @Param        product_id  query  int     false  "Restringir a un producto"
// @Success      200  {array}  dto.StockSnapshot
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledgers/stock [get]
func (h *LedgerHandler) Snapshot(c *fiber.Ctx) error {
	out, err := h.uc.StockSnapshot(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Opening godoc
// @Summary      Registro de stock inicial derivado
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.OpeningStockEntry
// @Router       /api/ledgers/opening-stock [get]
func (h *LedgerHandler) Opening(c *fiber.Ctx) error {
	out, err := h.uc.OpeningStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ProfitLoss godoc
// @Summary      Estado de resultados bruto por producto
// @Tags         ledgers
// @Security     Bearer
// @Produce      json
// @Param        date_from  query  string  false  "Fecha inicial"
// @Param        date_to    query  string  false  "Fecha final"
// @Success      200  {object}  dto.ProfitLossReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledgers/profit-loss [get]
func (h *LedgerHandler) ProfitLoss(c *fiber.Ctx) error {
	out, err := h.uc.ProfitLoss(c.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
