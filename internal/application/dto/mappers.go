package dto

import (
	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

// NewUserResponse mapea una entidad usuario a su DTO de salida.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		IsActive:    u.IsActive,
		Permissions: u.Permissions.Strings(),
		CreatedAt:   u.CreatedAt,
		LastLogin:   u.LastLogin,
	}
}

// NewProductResponse mapea una entidad producto a su DTO de salida.
func NewProductResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		UnitType:      p.UnitType,
		Stock:         p.Stock,
		CreatedAt:     p.CreatedAt,
	}
}

// NewCatalogProduct mapea un producto a la forma del catálogo público.
func NewCatalogProduct(p *entity.Product) CatalogProduct {
	return CatalogProduct{
		ID:            p.ID,
		Name:          p.Name,
		Price:         p.SellingPrice,
		PurchasePrice: p.PurchasePrice,
		SellingPrice:  p.SellingPrice,
		UnitType:      p.UnitType,
		Stock:         p.Stock,
	}
}

// NewSaleResponse mapea una venta registrada a su DTO de salida.
func NewSaleResponse(s *entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		ProductID:   s.ProductID,
		Quantity:    s.Quantity,
		TotalAmount: s.TotalAmount,
		SaleDate:    s.SaleDate,
	}
}

// NewPurchaseResponse mapea una compra registrada a su DTO de salida.
func NewPurchaseResponse(p *entity.Purchase) PurchaseResponse {
	return PurchaseResponse{
		ID:           p.ID,
		ProductID:    p.ProductID,
		Quantity:     p.Quantity,
		TotalCost:    p.TotalCost,
		PurchaseDate: p.PurchaseDate,
	}
}
