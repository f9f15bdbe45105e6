package dto

import "time"

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	Name          string  `json:"name" validate:"required,min=1,max=200"`
	PurchasePrice float64 `json:"purchase_price" validate:"required,gt=0"`
	SellingPrice  float64 `json:"selling_price" validate:"required,gt=0"`
	UnitType      string  `json:"unit_type" validate:"required,oneof=kgs ltr pcs"`
	Stock         int     `json:"stock" validate:"gte=0"`
}

// UpdateProductRequest entrada para actualizar un producto (campos opcionales).
type UpdateProductRequest struct {
	Name          *string  `json:"name" validate:"omitempty,min=1,max=200"`
	PurchasePrice *float64 `json:"purchase_price" validate:"omitempty,gt=0"`
	SellingPrice  *float64 `json:"selling_price" validate:"omitempty,gt=0"`
	UnitType      *string  `json:"unit_type" validate:"omitempty,oneof=kgs ltr pcs"`
	Stock         *int     `json:"stock" validate:"omitempty,gte=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	PurchasePrice float64   `json:"purchase_price"`
	SellingPrice  float64   `json:"selling_price"`
	UnitType      string    `json:"unit_type"`
	Stock         int       `json:"stock"`
	CreatedAt     time.Time `json:"created_at"`
}

// CatalogProduct forma que consume el frontend en GET /products:
// price es el precio de venta y el frontend genera las imágenes.
type CatalogProduct struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	PurchasePrice float64 `json:"purchase_price"`
	SellingPrice  float64 `json:"selling_price"`
	UnitType      string  `json:"unit_type"`
	ImageURL      string  `json:"imageUrl"`
	Stock         int     `json:"stock"`
}

// DeleteProductResponse resultado del borrado en cascada de un producto.
type DeleteProductResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	ProductID        int    `json:"product_id"`
	SalesDeleted     int    `json:"sales_deleted"`
	PurchasesDeleted int    `json:"purchases_deleted"`
}
