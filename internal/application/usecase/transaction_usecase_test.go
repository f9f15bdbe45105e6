package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

func seedProduct(t *testing.T, products *memProductRepo, stock int) *entity.Product {
	t.Helper()
	p := &entity.Product{
		Name:          "Arroz",
		PurchasePrice: 100,
		SellingPrice:  120,
		UnitType:      entity.UnitKilograms,
		Stock:         stock,
	}
	require.NoError(t, products.Create(context.Background(), p))
	return p
}

func TestRecordSale(t *testing.T) {
	products, _, _, tx := fixture()
	p := seedProduct(t, products, 50)
	uc := NewTransactionUsecase(tx, testLogger())

	// Venta de 10 al precio de venta vigente: stock 50 -> 40, monto 10*120.
	resp, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 10, resp.Quantity)
	assert.InDelta(t, 1200.0, resp.TotalAmount, 1e-9)

	after, err := products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, after.Stock)
}

func TestRecordSaleStockInsuficiente(t *testing.T) {
	products, sales, _, tx := fixture()
	p := seedProduct(t, products, 5)
	uc := NewTransactionUsecase(tx, testLogger())

	// Pedir más de lo disponible no toca ni stock ni historial.
	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 6}, nil)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	after, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 5, after.Stock)
	n, _ := sales.Count(context.Background())
	assert.Zero(t, n)
}

func TestRecordSaleProductoInexistente(t *testing.T) {
	_, _, _, tx := fixture()
	uc := NewTransactionUsecase(tx, testLogger())

	_, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: 99, Quantity: 1}, nil)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordPurchase(t *testing.T) {
	products, _, _, tx := fixture()
	p := seedProduct(t, products, 40)
	uc := NewTransactionUsecase(tx, testLogger())

	// Compra de 5 a costo 95: stock 40 -> 45, costo total 475.
	resp, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{ProductID: p.ID, Quantity: 5, UnitCost: 95}, nil)
	require.NoError(t, err)
	assert.InDelta(t, 475.0, resp.TotalCost, 1e-9)

	after, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 45, after.Stock)
}

func TestDeleteSaleDevuelveStock(t *testing.T) {
	products, sales, _, tx := fixture()
	p := seedProduct(t, products, 50)
	uc := NewTransactionUsecase(tx, testLogger())

	resp, err := uc.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 10}, nil)
	require.NoError(t, err)

	_, err = uc.DeleteSale(context.Background(), resp.ID)
	require.NoError(t, err)

	after, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 50, after.Stock)
	n, _ := sales.Count(context.Background())
	assert.Zero(t, n)
}

func TestDeletePurchaseConStockConsumido(t *testing.T) {
	products, _, purchases, tx := fixture()
	p := seedProduct(t, products, 0)
	uc := NewTransactionUsecase(tx, testLogger())

	// Compra de 10 y luego venta de 8: quedan 2, revertir la compra de 10
	// dejaría stock negativo y se rechaza.
	compra, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{ProductID: p.ID, Quantity: 10, UnitCost: 100}, nil)
	require.NoError(t, err)
	_, err = uc.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 8}, nil)
	require.NoError(t, err)

	_, err = uc.DeletePurchase(context.Background(), compra.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// La compra sigue registrada y el stock no cambió.
	n, _ := purchases.Count(context.Background())
	assert.Equal(t, 1, n)
	after, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 2, after.Stock)
}

func TestDeletePurchaseOK(t *testing.T) {
	products, _, purchases, tx := fixture()
	p := seedProduct(t, products, 0)
	uc := NewTransactionUsecase(tx, testLogger())

	compra, err := uc.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{ProductID: p.ID, Quantity: 10, UnitCost: 100}, nil)
	require.NoError(t, err)

	_, err = uc.DeletePurchase(context.Background(), compra.ID)
	require.NoError(t, err)

	after, _ := products.GetByID(context.Background(), p.ID)
	assert.Equal(t, 0, after.Stock)
	n, _ := purchases.Count(context.Background())
	assert.Zero(t, n)
}

func TestDeleteProductoEnCascada(t *testing.T) {
	products, _, _, tx := fixture()
	p := seedProduct(t, products, 100)
	txUC := NewTransactionUsecase(tx, testLogger())
	prodUC := NewProductUsecase(products, tx, testLogger())

	for i := 0; i < 3; i++ {
		_, err := txUC.RecordSale(context.Background(), dto.CreateSaleRequest{ProductID: p.ID, Quantity: 1}, nil)
		require.NoError(t, err)
	}
	_, err := txUC.RecordPurchase(context.Background(), dto.CreatePurchaseRequest{ProductID: p.ID, Quantity: 5, UnitCost: 90}, nil)
	require.NoError(t, err)

	resp, err := prodUC.Delete(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SalesDeleted)
	assert.Equal(t, 1, resp.PurchasesDeleted)

	gone, err := products.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
