package dto

import "time"

// CreateSaleRequest entrada para registrar una venta. El monto lo calcula el
// servidor con el precio de venta vigente del producto.
type CreateSaleRequest struct {
	ProductID int `json:"product_id" validate:"required"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID          int       `json:"id"`
	ProductID   int       `json:"product_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
	SaleDate    time.Time `json:"sale_date"`
}

// CreatePurchaseRequest entrada para registrar una compra. El costo unitario
// lo aporta el llamador (registra varianza frente al catálogo).
type CreatePurchaseRequest struct {
	ProductID int     `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
	UnitCost  float64 `json:"unit_cost" validate:"required,gt=0"`
}

// PurchaseResponse salida de una compra registrada.
type PurchaseResponse struct {
	ID           int       `json:"id"`
	ProductID    int       `json:"product_id"`
	Quantity     int       `json:"quantity"`
	TotalCost    float64   `json:"total_cost"`
	PurchaseDate time.Time `json:"purchase_date"`
}

// DeleteTransactionResponse resultado de borrar una venta o compra.
type DeleteTransactionResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	ID      int    `json:"id"`
}
