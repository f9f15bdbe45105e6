package http

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/export"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
	"github.com/jhoicas/kirana-api/internal/infrastructure/pdf"
)

// DownloadHandler sirve los libros y reportes como archivos descargables
// (CSV, y PDF para el estado de resultados).
type DownloadHandler struct {
	ledgers *usecase.LedgerUsecase
	pdfGen  *pdf.ProfitLossPDFGenerator
}

// NewDownloadHandler construye el handler.
func NewDownloadHandler(ledgers *usecase.LedgerUsecase, pdfGen *pdf.ProfitLossPDFGenerator) *DownloadHandler {
	return &DownloadHandler{ledgers: ledgers, pdfGen: pdfGen}
}

// sendCSV escribe los bytes con los headers de descarga.
func sendCSV(c *fiber.Ctx, filename string, buf *bytes.Buffer) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// SalesCSV godoc
// @Summary      Descargar el libro de ventas en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Param        date_from   query  string  false  "Fecha inicial"
// @Param        date_to     query  string  false  "Fecha final"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/downloads/sales-ledger [get]
func (h *DownloadHandler) SalesCSV(c *fiber.Ctx) error {
	entries, err := h.ledgers.SalesLedger(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteSalesLedgerCSV(&buf, entries); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "sales_ledger.csv", &buf)
}

// PurchasesCSV godoc
// @Summary      Descargar el libro de compras en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Param        date_from   query  string  false  "Fecha inicial"
// @Param        date_to     query  string  false  "Fecha final"
// @Param        product_id  query  int     false  "Filtrar por producto"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/downloads/purchase-ledger [get]
func (h *DownloadHandler) PurchasesCSV(c *fiber.Ctx) error {
	entries, err := h.ledgers.PurchaseLedger(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WritePurchaseLedgerCSV(&buf, entries); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "purchase_ledger.csv", &buf)
}

// StockLedgerCSV godoc
// @Summary      Descargar el libro de stock de un producto en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Param        product_id  path  int  true  "ID del producto"
// @Success      200  {string}  string  "archivo CSV"
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/downloads/stock-ledger/{product_id} [get]
func (h *DownloadHandler) StockLedgerCSV(c *fiber.Ctx) error {
	id, err := c.ParamsInt("product_id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "product_id debe ser numérico"})
	}
	ledger, err := h.ledgers.StockLedger(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteStockLedgerCSV(&buf, ledger); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "stock_ledger.csv", &buf)
}

// SnapshotCSV godoc
// @Summary      Descargar el snapshot de stock en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Param        date_from   query  string  false  "Corte alternativo"
// @Param        date_to     query  string  false  "Fecha de corte"
// @Param        product_id  query  int     false  "Restringir a un producto"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/downloads/stock [get]
func (h *DownloadHandler) SnapshotCSV(c *fiber.Ctx) error {
	snaps, err := h.ledgers.StockSnapshot(c.Context(), c.Query("date_from"), c.Query("date_to"), productIDQuery(c))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteStockSnapshotCSV(&buf, snaps); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "stock_report.csv", &buf)
}

// OpeningCSV godoc
// @Summary      Descargar el registro de stock inicial en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/downloads/opening-stock [get]
func (h *DownloadHandler) OpeningCSV(c *fiber.Ctx) error {
	entries, err := h.ledgers.OpeningStock(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteOpeningStockCSV(&buf, entries); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "opening_stock.csv", &buf)
}

// ProfitLossCSV godoc
// @Summary      Descargar el estado de resultados en CSV
// @Tags         downloads
// @Security     Bearer
// @Produce      text/csv
// @Param        date_from  query  string  false  "Fecha inicial"
// @Param        date_to    query  string  false  "Fecha final"
// @Success      200  {string}  string  "archivo CSV"
// @Router       /api/downloads/profit-loss [get]
func (h *DownloadHandler) ProfitLossCSV(c *fiber.Ctx) error {
	report, err := h.ledgers.ProfitLoss(c.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return writeError(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteProfitLossCSV(&buf, report); err != nil {
		return writeError(c, err)
	}
	return sendCSV(c, "profit_loss.csv", &buf)
}

// ProfitLossPDF godoc
// @Summary      Descargar el estado de resultados en PDF
// @Tags         downloads
// @Security     Bearer
// @Produce      application/pdf
// @Param        date_from  query  string  false  "Fecha inicial"
// @Param        date_to    query  string  false  "Fecha final"
// @Success      200  {string}  string  "archivo PDF"
// @Router       /api/downloads/profit-loss.pdf [get]
func (h *DownloadHandler) ProfitLossPDF(c *fiber.Ctx) error {
	report, err := h.ledgers.ProfitLoss(c.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		return writeError(c, err)
	}
	data, err := h.pdfGen.Generate(report)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="profit_loss.pdf"`)
	return c.Send(data)
}
