package repository

import (
	"context"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

// ProductRepository puerto de persistencia para productos. Las
// implementaciones devuelven (nil, nil) cuando el producto no existe.
type ProductRepository interface {
	Create(ctx context.Context, p *entity.Product) error // asigna p.ID
	GetByID(ctx context.Context, id int) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	CountLowStock(ctx context.Context, threshold int) (int, error)

	// DecrementStock descuenta qty solo si hay stock suficiente, en un único
	// UPDATE condicional (WHERE stock >= qty). Devuelve false si la fila no
	// calificó: producto inexistente o stock insuficiente.
	DecrementStock(ctx context.Context, id, qty int) (bool, error)
	// IncrementStock suma qty al stock vivo.
	IncrementStock(ctx context.Context, id, qty int) error
}
