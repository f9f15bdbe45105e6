package orders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/application/usecase"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// fakeProducts implementa solo lo que este usecase toca; el resto no se usa.
type fakeProducts struct {
	items map[int]*entity.Product
}

func (f *fakeProducts) Create(_ context.Context, p *entity.Product) error { return nil }
func (f *fakeProducts) GetByID(_ context.Context, id int) (*entity.Product, error) {
	return f.items[id], nil
}
func (f *fakeProducts) List(_ context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.items))
	for i := 1; i <= len(f.items); i++ {
		if p, ok := f.items[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProducts) Update(_ context.Context, p *entity.Product) error { return nil }
func (f *fakeProducts) Delete(_ context.Context, id int) error            { return nil }
func (f *fakeProducts) Count(_ context.Context) (int, error)              { return len(f.items), nil }
func (f *fakeProducts) CountLowStock(_ context.Context, threshold int) (int, error) {
	return 0, nil
}
func (f *fakeProducts) DecrementStock(_ context.Context, id, qty int) (bool, error) {
	p, ok := f.items[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}
func (f *fakeProducts) IncrementStock(_ context.Context, id, qty int) error {
	if p, ok := f.items[id]; ok {
		p.Stock += qty
	}
	return nil
}

// fakeSales acumula ventas registradas por el pedido.
type fakeSales struct {
	created []*entity.Sale
}

func (f *fakeSales) Create(_ context.Context, s *entity.Sale) error {
	s.ID = len(f.created) + 1
	f.created = append(f.created, s)
	return nil
}

type passthroughTx struct {
	repos usecase.Repos
}

func (t *passthroughTx) Run(_ context.Context, fn func(r usecase.Repos) error) error {
	return fn(t.repos)
}

// saleRecorder satisface el puerto completo embebiendo la interfaz; los
// métodos no implementados entran en pánico si alguien los llama.
type saleRecorder struct {
	repository.SaleRepository
	inner *fakeSales
}

func (s *saleRecorder) Create(ctx context.Context, sale *entity.Sale) error {
	return s.inner.Create(ctx, sale)
}

func orderFixture() (*fakeProducts, *fakeSales, *Usecase) {
	products := &fakeProducts{items: map[int]*entity.Product{
		1: {ID: 1, Name: "Azúcar", PurchasePrice: 80, SellingPrice: 100, UnitType: entity.UnitKilograms, Stock: 50},
		2: {ID: 2, Name: "Rice", PurchasePrice: 100, SellingPrice: 120, UnitType: entity.UnitKilograms, Stock: 3},
	}}
	sales := &fakeSales{}
	tx := &passthroughTx{repos: usecase.Repos{
		Products: products,
		Sales:    &saleRecorder{inner: sales},
	}}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return products, sales, NewUsecase(products, tx, log)
}

func TestPlaceWhatsAppOrderOK(t *testing.T) {
	products, sales, uc := orderFixture()

	resp, err := uc.PlaceWhatsAppOrder(context.Background(), dto.WhatsAppOrderRequest{
		CustomerName: "Priya",
		PhoneNumber:  "+919876543210",
		Items: []dto.OrderItem{
			{ProductName: "azucar", Quantity: 2}, // sin tilde a propósito
			{ProductName: "Rice", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.OrderRef)
	// 2*100 + 1*120
	assert.InDelta(t, 320.0, resp.TotalBill, 1e-9)

	assert.Equal(t, 48, products.items[1].Stock)
	assert.Equal(t, 2, products.items[2].Stock)
	assert.Len(t, sales.created, 2)
}

func TestPlaceWhatsAppOrderProductoDesconocido(t *testing.T) {
	products, sales, uc := orderFixture()

	resp, err := uc.PlaceWhatsAppOrder(context.Background(), dto.WhatsAppOrderRequest{
		CustomerName: "Priya",
		PhoneNumber:  "+919876543210",
		Items:        []dto.OrderItem{{ProductName: "Harina", Quantity: 1}},
	})
	// Fallo de negocio: respuesta de error sin error de transporte.
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "Harina")
	assert.Empty(t, sales.created)
	assert.Equal(t, 50, products.items[1].Stock)
}

func TestPlaceWhatsAppOrderStockInsuficiente(t *testing.T) {
	products, sales, uc := orderFixture()

	resp, err := uc.PlaceWhatsAppOrder(context.Background(), dto.WhatsAppOrderRequest{
		CustomerName: "Priya",
		PhoneNumber:  "+919876543210",
		Items: []dto.OrderItem{
			{ProductName: "Azúcar", Quantity: 1},
			{ProductName: "Rice", Quantity: 10}, // solo hay 3
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "Rice")
	// Todo o nada: el primer renglón tampoco se registró.
	assert.Empty(t, sales.created)
	assert.Equal(t, 50, products.items[1].Stock)
}

func TestSMSReply(t *testing.T) {
	_, _, uc := orderFixture()

	reply, err := uc.SMSReply(context.Background(), "rice")
	require.NoError(t, err)
	assert.Contains(t, reply, "Rice")
	assert.Contains(t, reply, "120.00")

	// El nombre puede venir dentro de una consulta en texto libre.
	reply, err = uc.SMSReply(context.Background(), "what is the price of rice?")
	require.NoError(t, err)
	assert.Contains(t, reply, "Rice")
	assert.Contains(t, reply, "120.00")

	reply, err = uc.SMSReply(context.Background(), "cuánto vale el azúcar")
	require.NoError(t, err)
	assert.Contains(t, reply, "Azúcar")
	assert.Contains(t, reply, "100.00")

	reply, err = uc.SMSReply(context.Background(), "algo que no existe")
	require.NoError(t, err)
	assert.Contains(t, reply, "no reconocido")
}
