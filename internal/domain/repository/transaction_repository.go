package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

// TxFilter filtros opcionales para listados de ventas/compras.
type TxFilter struct {
	From      *time.Time
	To        *time.Time
	ProductID *int
}

// SaleRow fila de venta con el nombre del producto resuelto (JOIN).
type SaleRow struct {
	ID          int
	ProductID   int
	ProductName string
	Quantity    int
	TotalAmount float64
	SaleDate    time.Time
}

// PurchaseRow fila de compra con el nombre del producto resuelto (JOIN).
type PurchaseRow struct {
	ID           int
	ProductID    int
	ProductName  string
	Quantity     int
	TotalCost    float64
	PurchaseDate time.Time
}

// SaleRepository puerto de persistencia para ventas.
type SaleRepository interface {
	Create(ctx context.Context, s *entity.Sale) error // asigna s.ID
	GetByID(ctx context.Context, id int) (*entity.Sale, error)
	Delete(ctx context.Context, id int) error
	DeleteByProduct(ctx context.Context, productID int) (int, error)

	// ListRows devuelve filas con nombre de producto, más recientes primero.
	ListRows(ctx context.Context, f TxFilter) ([]SaleRow, error)
	// ListByProduct devuelve las ventas de un producto ordenadas por fecha.
	ListByProduct(ctx context.Context, productID int) ([]*entity.Sale, error)

	// TotalQuantity suma cantidades del producto; con upTo != nil solo los
	// movimientos con timestamp <= upTo (insumo del motor de reconstrucción).
	TotalQuantity(ctx context.Context, productID int, upTo *time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	CountByProduct(ctx context.Context, productID int) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	SumQuantity(ctx context.Context) (int, error)
}

// PurchaseRepository puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(ctx context.Context, p *entity.Purchase) error // asigna p.ID
	GetByID(ctx context.Context, id int) (*entity.Purchase, error)
	Delete(ctx context.Context, id int) error
	DeleteByProduct(ctx context.Context, productID int) (int, error)

	ListRows(ctx context.Context, f TxFilter) ([]PurchaseRow, error)
	ListByProduct(ctx context.Context, productID int) ([]*entity.Purchase, error)

	TotalQuantity(ctx context.Context, productID int, upTo *time.Time) (int, error)
	Count(ctx context.Context) (int, error)
	CountByProduct(ctx context.Context, productID int) (int, error)
	CountSince(ctx context.Context, since time.Time) (int, error)
	SumQuantity(ctx context.Context) (int, error)
}
