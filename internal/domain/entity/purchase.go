package entity

import "time"

// Purchase registra una compra a proveedor. TotalCost es un snapshot de
// unit_cost × quantity con el costo que indicó el comprador (puede diferir
// del purchase_price del catálogo: registra varianza de costo).
type Purchase struct {
	ID           int
	ProductID    int
	Quantity     int // > 0
	TotalCost    float64
	PurchaseDate time.Time
	CreatedBy    *int // UserID, opcional
}
