package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/application/dto"
)

func TestWriteSalesLedgerCSV(t *testing.T) {
	var buf bytes.Buffer
	entries := []dto.SalesLedgerEntry{
		{
			SaleID:      7,
			Date:        time.Date(2025, 6, 10, 12, 30, 0, 0, time.UTC),
			ProductID:   1,
			ProductName: "Azúcar",
			Quantity:    10,
			UnitPrice:   100,
			TotalAmount: 1000,
		},
	}
	require.NoError(t, WriteSalesLedgerCSV(&buf, entries))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "sale_id,date,product_id,product_name,quantity,unit_price,total_amount", lines[0])
	assert.Equal(t, "7,2025-06-10 12:30:00,1,Azúcar,10,100.00,1000.00", lines[1])
}

func TestWriteStockLedgerCSV(t *testing.T) {
	var buf bytes.Buffer
	ledger := &dto.StockLedgerResponse{
		History: []dto.StockHistoryEntry{
			{
				Date:                  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
				TransactionType:       "OPENING",
				Reference:             "Opening Stock",
				Quantity:              50,
				StockAfterTransaction: 50,
				Details:               "Opening stock balance",
			},
			{
				Date:                  time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
				TransactionType:       "SALE",
				Reference:             "Sale #7",
				Quantity:              -10,
				StockAfterTransaction: 40,
				Details:               "Sold 10 units at 100.00 each",
			},
		},
	}
	require.NoError(t, WriteStockLedgerCSV(&buf, ledger))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "SALE,Sale #7,-10,40")
}

func TestWriteProfitLossCSVTotales(t *testing.T) {
	var buf bytes.Buffer
	report := &dto.ProfitLossReport{
		Lines: []dto.ProfitLossLine{
			{ProductID: 1, ProductName: "Azúcar", UnitsSold: 10, Revenue: 1000, COGS: 800, GrossProfit: 200},
			{ProductID: 2, ProductName: "Rice", UnitsSold: 4, Revenue: 480, COGS: 400, GrossProfit: 80},
		},
		TotalRevenue:     1480,
		TotalCOGS:        1200,
		TotalGrossProfit: 280,
	}
	require.NoError(t, WriteProfitLossCSV(&buf, report))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, ",TOTAL,,1480.00,1200.00,280.00", lines[3])
}

func TestWriteStockSnapshotCSVVacio(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteStockSnapshotCSV(&buf, nil))

	// Solo el encabezado.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, "product_id,product_name,unit_type,stock,purchase_price,stock_value", lines[0])
}
