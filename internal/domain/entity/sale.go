package entity

import "time"

// Sale registra una venta. TotalAmount es un snapshot de
// selling_price × quantity al momento de la venta; no se recalcula si el
// precio del producto cambia después. Las filas son inmutables salvo borrado.
type Sale struct {
	ID          int
	ProductID   int
	Quantity    int // > 0
	TotalAmount float64
	SaleDate    time.Time
	CreatedBy   *int // UserID, opcional (pedidos por webhook no llevan usuario)
}
