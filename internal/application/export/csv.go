// Package export serializa los libros y reportes a CSV para descarga.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/jhoicas/kirana-api/internal/application/dto"
)

const dateLayout = "2006-01-02 15:04:05"

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// WriteSalesLedgerCSV escribe el libro de ventas.
func WriteSalesLedgerCSV(w io.Writer, entries []dto.SalesLedgerEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"sale_id", "date", "product_id", "product_name", "quantity", "unit_price", "total_amount"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.SaleID),
			formatDate(e.Date),
			strconv.Itoa(e.ProductID),
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatFloat(e.UnitPrice),
			formatFloat(e.TotalAmount),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WritePurchaseLedgerCSV escribe el libro de compras.
func WritePurchaseLedgerCSV(w io.Writer, entries []dto.PurchaseLedgerEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"purchase_id", "date", "product_id", "product_name", "quantity", "unit_cost", "total_cost"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.PurchaseID),
			formatDate(e.Date),
			strconv.Itoa(e.ProductID),
			e.ProductName,
			strconv.Itoa(e.Quantity),
			formatFloat(e.UnitCost),
			formatFloat(e.TotalCost),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStockLedgerCSV escribe el libro de stock de un producto con su balance
// corrido.
func WriteStockLedgerCSV(w io.Writer, ledger *dto.StockLedgerResponse) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "transaction_type", "reference", "quantity", "stock_after_transaction", "details"}); err != nil {
		return err
	}
	for _, h := range ledger.History {
		record := []string{
			formatDate(h.Date),
			h.TransactionType,
			h.Reference,
			strconv.Itoa(h.Quantity),
			strconv.Itoa(h.StockAfterTransaction),
			h.Details,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteStockSnapshotCSV escribe el snapshot de stock (vivo o reconstruido).
func WriteStockSnapshotCSV(w io.Writer, snaps []dto.StockSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_id", "product_name", "unit_type", "stock", "purchase_price", "stock_value"}); err != nil {
		return err
	}
	for _, s := range snaps {
		record := []string{
			strconv.Itoa(s.ProductID),
			s.ProductName,
			s.UnitType,
			strconv.Itoa(s.Stock),
			formatFloat(s.Price),
			formatFloat(s.StockValue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteOpeningStockCSV escribe el registro de stock inicial derivado.
func WriteOpeningStockCSV(w io.Writer, entries []dto.OpeningStockEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_id", "product_name", "unit_type", "opening_stock", "purchase_price", "opening_value"}); err != nil {
		return err
	}
	for _, e := range entries {
		record := []string{
			strconv.Itoa(e.ProductID),
			e.ProductName,
			e.UnitType,
			strconv.Itoa(e.OpeningStock),
			formatFloat(e.PurchasePrice),
			formatFloat(e.OpeningValue),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteProfitLossCSV escribe el estado de resultados con su fila de totales.
func WriteProfitLossCSV(w io.Writer, report *dto.ProfitLossReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"product_id", "product_name", "units_sold", "revenue", "cogs", "gross_profit"}); err != nil {
		return err
	}
	for _, l := range report.Lines {
		record := []string{
			strconv.Itoa(l.ProductID),
			l.ProductName,
			strconv.Itoa(l.UnitsSold),
			formatFloat(l.Revenue),
			formatFloat(l.COGS),
			formatFloat(l.GrossProfit),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	totals := []string{
		"", "TOTAL", "",
		formatFloat(report.TotalRevenue),
		formatFloat(report.TotalCOGS),
		formatFloat(report.TotalGrossProfit),
	}
	if err := cw.Write(totals); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
