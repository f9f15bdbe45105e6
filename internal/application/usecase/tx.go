package usecase

import (
	"context"

	"github.com/jhoicas/kirana-api/internal/domain/repository"
)

// Repos repositorios ligados a una misma transacción.
type Repos struct {
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
}

// TxRunner ejecuta fn dentro de una transacción: commit si fn devuelve nil,
// rollback en caso contrario.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}
