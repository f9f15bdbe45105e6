package entity

import "time"

// Tipos de unidad válidos para un producto.
const (
	UnitKilograms = "kgs"
	UnitLiters    = "ltr"
	UnitPieces    = "pcs"
)

// IsValidUnitType verifica que la unidad pertenezca al vocabulario fijo.
func IsValidUnitType(u string) bool {
	return u == UnitKilograms || u == UnitLiters || u == UnitPieces
}

// Product representa un producto del catálogo de la tienda.
// Stock es la cantidad viva en mano: cada venta la decrementa y cada compra
// la incrementa. El invariante Stock >= 0 se garantiza en la frontera
// transaccional (UPDATE condicional); el CHECK del esquema solo respalda.
type Product struct {
	ID            int
	Name          string  // único
	PurchasePrice float64 // costo de reposición actual (valuación de inventario)
	SellingPrice  float64 // precio de venta al cliente
	UnitType      string  // kgs, ltr o pcs
	Stock         int
	CreatedAt     time.Time
}
