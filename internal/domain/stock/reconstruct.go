// Package stock implementa la reconstrucción histórica de stock: dado el
// stock vivo de un producto y los agregados de sus movimientos, deriva el
// stock de apertura y el stock a una fecha de corte, sin mutar estado.
//
// Invariante central:
//
//	apertura = stock_actual + ventas_totales − compras_totales
//
// es decir, la apertura se obtiene revirtiendo todos los movimientos
// registrados desde el presente hacia atrás. Caminando hacia adelante con los
// movimientos hasta el corte:
//
//	stock_en(corte) = apertura + compras_hasta(corte) − ventas_hasta(corte)
package stock

import (
	"fmt"
	"sort"
	"time"
)

// Opening deriva el stock de apertura implícito revirtiendo todo el
// historial. Puede salir negativo si los datos son inconsistentes (ventas
// registradas que el stock actual no respalda); el que reporta decide si
// recorta con Clamp. Política única de este sistema: todo stock derivado se
// recorta antes de reportarse (ver DESIGN.md).
func Opening(currentStock, totalSalesEver, totalPurchasesEver int) int {
	return currentStock + totalSalesEver - totalPurchasesEver
}

// AsOf calcula el stock al final del corte a partir de la apertura y los
// movimientos con timestamp <= corte.
func AsOf(opening, purchasesUpTo, salesUpTo int) int {
	return opening + purchasesUpTo - salesUpTo
}

// Clamp recorta un stock derivado negativo a cero.
func Clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// Valuation valora una cantidad al costo de reposición actual del producto.
// Política deliberada: costo actual × cantidad, no costo histórico, en
// aritmética de punto flotante doble.
func Valuation(qty int, purchasePrice float64) float64 {
	return purchasePrice * float64(qty)
}

// Tipos de movimiento en el libro de stock.
const (
	MovementOpening  = "OPENING"
	MovementPurchase = "PURCHASE"
	MovementSale     = "SALE"
)

// Movement es un movimiento individual de stock (compra o venta) para el
// libro por producto. Quantity es positiva para compras y negativa para
// ventas.
type Movement struct {
	Date      time.Time
	Type      string // PURCHASE o SALE
	Reference string // "Purchase #12", "Sale #7"
	Quantity  int
	Detail    string
}

// LedgerLine es una línea del libro de stock con balance corrido.
type LedgerLine struct {
	Date      time.Time
	Type      string
	Reference string
	Quantity  int
	Balance   int // stock después del movimiento
	Detail    string
}

// History ordena los movimientos por fecha, antepone la línea de apertura y
// calcula el balance corrido. now se usa como fecha de la apertura cuando no
// hay movimientos.
func History(opening int, movs []Movement, now time.Time) []LedgerLine {
	sorted := make([]Movement, len(movs))
	copy(sorted, movs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	openingDate := now
	if len(sorted) > 0 {
		openingDate = sorted[0].Date
	}

	lines := make([]LedgerLine, 0, len(sorted)+1)
	lines = append(lines, LedgerLine{
		Date:      openingDate,
		Type:      MovementOpening,
		Reference: "Opening Stock",
		Quantity:  opening,
		Balance:   opening,
		Detail:    "Opening stock balance",
	})

	balance := opening
	for _, m := range sorted {
		balance += m.Quantity
		lines = append(lines, LedgerLine{
			Date:      m.Date,
			Type:      m.Type,
			Reference: m.Reference,
			Quantity:  m.Quantity,
			Balance:   balance,
			Detail:    m.Detail,
		})
	}
	return lines
}

// PurchaseMovement arma el movimiento de una compra para el libro.
func PurchaseMovement(id int, date time.Time, qty int, totalCost float64) Movement {
	return Movement{
		Date:      date,
		Type:      MovementPurchase,
		Reference: fmt.Sprintf("Purchase #%d", id),
		Quantity:  qty,
		Detail:    fmt.Sprintf("Purchased %d units at %.2f each", qty, totalCost/float64(qty)),
	}
}

// SaleMovement arma el movimiento de una venta para el libro (cantidad negativa).
func SaleMovement(id int, date time.Time, qty int, totalAmount float64) Movement {
	return Movement{
		Date:      date,
		Type:      MovementSale,
		Reference: fmt.Sprintf("Sale #%d", id),
		Quantity:  -qty,
		Detail:    fmt.Sprintf("Sold %d units at %.2f each", qty, totalAmount/float64(qty)),
	}
}
