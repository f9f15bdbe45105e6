package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/stock"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// TransactionUsecase registra y revierte ventas y compras. Toda mutación de
// stock viaja junto a su fila de transacción dentro de la misma transacción
// de base de datos.
type TransactionUsecase struct {
	tx  TxRunner
	log *logger.Logger
}

func NewTransactionUsecase(tx TxRunner, log *logger.Logger) *TransactionUsecase {
	return &TransactionUsecase{tx: tx, log: log}
}

// RecordSale registra una venta al precio de venta vigente. El descuento de
// stock es un UPDATE condicional: si no alcanza el stock no se toca nada.
func (uc *TransactionUsecase) RecordSale(ctx context.Context, req dto.CreateSaleRequest, createdBy *int) (*dto.SaleResponse, error) {
	var resp dto.SaleResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		p, err := r.Products.GetByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		ok, err := r.Products.DecrementStock(ctx, req.ProductID, req.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: producto %d, disponible %d, pedido %d",
				domain.ErrInsufficientStock, p.ID, p.Stock, req.Quantity)
		}

		sale := &entity.Sale{
			ProductID:   req.ProductID,
			Quantity:    req.Quantity,
			TotalAmount: stock.Valuation(req.Quantity, p.SellingPrice),
			SaleDate:    time.Now(),
			CreatedBy:   createdBy,
		}
		if err := r.Sales.Create(ctx, sale); err != nil {
			return err
		}
		resp = dto.NewSaleResponse(sale)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("sale_id", resp.ID).Int("product_id", resp.ProductID).
		Int("quantity", resp.Quantity).Msg("venta registrada")
	return &resp, nil
}

// RecordPurchase registra una compra al costo unitario que aporta el llamador
// y suma el stock en la misma transacción.
func (uc *TransactionUsecase) RecordPurchase(ctx context.Context, req dto.CreatePurchaseRequest, createdBy *int) (*dto.PurchaseResponse, error) {
	var resp dto.PurchaseResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		p, err := r.Products.GetByID(ctx, req.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		if err := r.Products.IncrementStock(ctx, req.ProductID, req.Quantity); err != nil {
			return err
		}

		purchase := &entity.Purchase{
			ProductID:    req.ProductID,
			Quantity:     req.Quantity,
			TotalCost:    stock.Valuation(req.Quantity, req.UnitCost),
			PurchaseDate: time.Now(),
			CreatedBy:    createdBy,
		}
		if err := r.Purchases.Create(ctx, purchase); err != nil {
			return err
		}
		resp = dto.NewPurchaseResponse(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("purchase_id", resp.ID).Int("product_id", resp.ProductID).
		Int("quantity", resp.Quantity).Msg("compra registrada")
	return &resp, nil
}

// DeleteSale borra una venta y devuelve su cantidad al stock vivo.
func (uc *TransactionUsecase) DeleteSale(ctx context.Context, id int) (*dto.DeleteTransactionResponse, error) {
	var resp dto.DeleteTransactionResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		sale, err := r.Sales.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if sale == nil {
			return domain.ErrNotFound
		}

		if err := r.Products.IncrementStock(ctx, sale.ProductID, sale.Quantity); err != nil {
			return err
		}
		if err := r.Sales.Delete(ctx, id); err != nil {
			return err
		}
		resp = dto.DeleteTransactionResponse{
			Status:  "success",
			Message: fmt.Sprintf("Venta %d eliminada, %d unidades devueltas al stock", id, sale.Quantity),
			ID:      id,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("sale_id", id).Msg("venta eliminada")
	return &resp, nil
}

// DeletePurchase borra una compra retirando su cantidad del stock. Si el
// stock vivo ya es menor que esa cantidad la operación se rechaza: revertir
// la compra dejaría el stock negativo.
func (uc *TransactionUsecase) DeletePurchase(ctx context.Context, id int) (*dto.DeleteTransactionResponse, error) {
	var resp dto.DeleteTransactionResponse
	err := uc.tx.Run(ctx, func(r Repos) error {
		purchase, err := r.Purchases.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}

		ok, err := r.Products.DecrementStock(ctx, purchase.ProductID, purchase.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: no se puede revertir la compra %d, el stock actual es menor que %d",
				domain.ErrInsufficientStock, id, purchase.Quantity)
		}
		if err := r.Purchases.Delete(ctx, id); err != nil {
			return err
		}
		resp = dto.DeleteTransactionResponse{
			Status:  "success",
			Message: fmt.Sprintf("Compra %d eliminada, %d unidades retiradas del stock", id, purchase.Quantity),
			ID:      id,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("purchase_id", id).Msg("compra eliminada")
	return &resp, nil
}
