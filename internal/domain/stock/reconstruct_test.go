package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/domain/stock"
)

// La apertura revierte todo el historial: con stock actual 45, 10 vendidas y
// 5 compradas en total, la tienda arrancó con 50.
func TestOpening_RevierteHistorial(t *testing.T) {
	assert.Equal(t, 50, stock.Opening(45, 10, 5))
}

// Datos inconsistentes (más compras que stock+ventas) producen apertura
// negativa; Clamp la recorta a cero antes de reportar.
func TestOpening_NegativaSeRecorta(t *testing.T) {
	opening := stock.Opening(0, 2, 10)
	assert.Equal(t, -8, opening)
	assert.Equal(t, 0, stock.Clamp(opening))
	assert.Equal(t, 3, stock.Clamp(3), "valores positivos pasan sin cambio")
}

// Consistencia del motor: con corte en el infinito (todos los movimientos
// incluidos) el stock reconstruido coincide con el stock vivo.
func TestAsOf_CorteInfinitoIgualaStockActual(t *testing.T) {
	const (
		currentStock  = 45
		salesEver     = 10
		purchasesEver = 5
	)
	opening := stock.Opening(currentStock, salesEver, purchasesEver)
	assert.Equal(t, currentStock, stock.AsOf(opening, purchasesEver, salesEver))
}

// Con corte antes de cualquier movimiento, el stock reconstruido es la apertura.
func TestAsOf_CorteEnElPasadoIgualaApertura(t *testing.T) {
	opening := stock.Opening(45, 10, 5)
	assert.Equal(t, opening, stock.AsOf(opening, 0, 0))
}

// Ejemplo de referencia: producto creado con stock=50, costo 80, precio 100.
// Venta de 10 -> stock 40; compra de 5 -> stock 45; la valuación del snapshot
// usa el costo de reposición actual: 45 × 80 = 3600.
func TestReconstruccion_EjemploCompleto(t *testing.T) {
	const (
		currentStock = 45
		salesEver    = 10
		purchasesEver = 5
		purchasePrice = 80.0
	)
	opening := stock.Opening(currentStock, salesEver, purchasesEver)
	require.Equal(t, 50, opening)

	// Corte después de la venta pero antes de la compra.
	assert.Equal(t, 40, stock.AsOf(opening, 0, 10))

	// Corte al final: todo incluido.
	atEnd := stock.AsOf(opening, purchasesEver, salesEver)
	assert.Equal(t, 45, atEnd)
	assert.InDelta(t, 3600.0, stock.Valuation(atEnd, purchasePrice), 1e-9)
}

func TestValuation_UsaFloat64(t *testing.T) {
	// La valuación es costo_actual × cantidad en doble precisión.
	assert.InDelta(t, 375.0, stock.Valuation(5, 75.0), 1e-9)
	assert.InDelta(t, 0.0, stock.Valuation(0, 99.99), 1e-9)
}

func TestHistory_BalanceCorrido(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	movs := []stock.Movement{
		stock.SaleMovement(7, base.Add(48*time.Hour), 10, 1000),
		stock.PurchaseMovement(12, base, 5, 375),
	}

	lines := stock.History(50, movs, time.Now())
	require.Len(t, lines, 3)

	// Línea de apertura con la fecha del primer movimiento.
	assert.Equal(t, stock.MovementOpening, lines[0].Type)
	assert.Equal(t, base, lines[0].Date)
	assert.Equal(t, 50, lines[0].Balance)

	// Los movimientos quedan ordenados por fecha aunque llegaran desordenados.
	assert.Equal(t, stock.MovementPurchase, lines[1].Type)
	assert.Equal(t, "Purchase #12", lines[1].Reference)
	assert.Equal(t, 55, lines[1].Balance)

	assert.Equal(t, stock.MovementSale, lines[2].Type)
	assert.Equal(t, -10, lines[2].Quantity)
	assert.Equal(t, 45, lines[2].Balance)
}

func TestHistory_SinMovimientos(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	lines := stock.History(15, nil, now)
	require.Len(t, lines, 1)
	assert.Equal(t, stock.MovementOpening, lines[0].Type)
	assert.Equal(t, now, lines[0].Date)
	assert.Equal(t, 15, lines[0].Balance)
}

// Propiedad de conservación: tras N ventas y M compras el balance final del
// libro es apertura − ventas + compras.
func TestHistory_Conservacion(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	var movs []stock.Movement
	totalSold, totalBought := 0, 0
	for i := 0; i < 6; i++ {
		movs = append(movs, stock.PurchaseMovement(i, base.AddDate(0, 0, i), 4, 100))
		totalBought += 4
	}
	for i := 0; i < 9; i++ {
		movs = append(movs, stock.SaleMovement(i, base.AddDate(0, 0, 10+i), 2, 50))
		totalSold += 2
	}

	lines := stock.History(30, movs, time.Now())
	final := lines[len(lines)-1].Balance
	assert.Equal(t, 30-totalSold+totalBought, final)
}
