package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Fakes en memoria para ejercitar los casos de uso sin base de datos.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

type memProductRepo struct {
	items  map[int]*entity.Product
	nextID int
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: make(map[int]*entity.Product), nextID: 1}
}

func (m *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	p.ID = m.nextID
	m.nextID++
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProductRepo) GetByID(_ context.Context, id int) (*entity.Product, error) {
	p, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *memProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	ids := make([]int, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	out := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		cp := *m.items[id]
		out = append(out, &cp)
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	cp := *p
	m.items[p.ID] = &cp
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id int) error {
	delete(m.items, id)
	return nil
}

func (m *memProductRepo) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

func (m *memProductRepo) CountLowStock(_ context.Context, threshold int) (int, error) {
	n := 0
	for _, p := range m.items {
		if p.Stock <= threshold {
			n++
		}
	}
	return n, nil
}

func (m *memProductRepo) DecrementStock(_ context.Context, id, qty int) (bool, error) {
	p, ok := m.items[id]
	if !ok || p.Stock < qty {
		return false, nil
	}
	p.Stock -= qty
	return true, nil
}

func (m *memProductRepo) IncrementStock(_ context.Context, id, qty int) error {
	if p, ok := m.items[id]; ok {
		p.Stock += qty
	}
	return nil
}

type memSaleRepo struct {
	items    []*entity.Sale
	nextID   int
	products *memProductRepo
}

func newMemSaleRepo(products *memProductRepo) *memSaleRepo {
	return &memSaleRepo{nextID: 1, products: products}
}

func (m *memSaleRepo) Create(_ context.Context, s *entity.Sale) error {
	s.ID = m.nextID
	m.nextID++
	cp := *s
	m.items = append(m.items, &cp)
	return nil
}

func (m *memSaleRepo) GetByID(_ context.Context, id int) (*entity.Sale, error) {
	for _, s := range m.items {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memSaleRepo) Delete(_ context.Context, id int) error {
	for i, s := range m.items {
		if s.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memSaleRepo) DeleteByProduct(_ context.Context, productID int) (int, error) {
	kept := m.items[:0]
	deleted := 0
	for _, s := range m.items {
		if s.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, s)
	}
	m.items = kept
	return deleted, nil
}

func (m *memSaleRepo) ListRows(_ context.Context, f repository.TxFilter) ([]repository.SaleRow, error) {
	out := make([]repository.SaleRow, 0)
	for _, s := range m.items {
		if f.ProductID != nil && s.ProductID != *f.ProductID {
			continue
		}
		if f.From != nil && s.SaleDate.Before(*f.From) {
			continue
		}
		if f.To != nil && s.SaleDate.After(*f.To) {
			continue
		}
		name := ""
		if p, ok := m.products.items[s.ProductID]; ok {
			name = p.Name
		}
		out = append(out, repository.SaleRow{
			ID: s.ID, ProductID: s.ProductID, ProductName: name,
			Quantity: s.Quantity, TotalAmount: s.TotalAmount, SaleDate: s.SaleDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.After(out[j].SaleDate) })
	return out, nil
}

func (m *memSaleRepo) ListByProduct(_ context.Context, productID int) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0)
	for _, s := range m.items {
		if s.ProductID == productID {
			cp := *s
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SaleDate.Before(out[j].SaleDate) })
	return out, nil
}

func (m *memSaleRepo) TotalQuantity(_ context.Context, productID int, upTo *time.Time) (int, error) {
	total := 0
	for _, s := range m.items {
		if s.ProductID != productID {
			continue
		}
		if upTo != nil && s.SaleDate.After(*upTo) {
			continue
		}
		total += s.Quantity
	}
	return total, nil
}

func (m *memSaleRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func (m *memSaleRepo) CountByProduct(_ context.Context, productID int) (int, error) {
	n := 0
	for _, s := range m.items {
		if s.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (m *memSaleRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	n := 0
	for _, s := range m.items {
		if !s.SaleDate.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memSaleRepo) SumQuantity(_ context.Context) (int, error) {
	total := 0
	for _, s := range m.items {
		total += s.Quantity
	}
	return total, nil
}

type memPurchaseRepo struct {
	items    []*entity.Purchase
	nextID   int
	products *memProductRepo
}

func newMemPurchaseRepo(products *memProductRepo) *memPurchaseRepo {
	return &memPurchaseRepo{nextID: 1, products: products}
}

func (m *memPurchaseRepo) Create(_ context.Context, p *entity.Purchase) error {
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.items = append(m.items, &cp)
	return nil
}

func (m *memPurchaseRepo) GetByID(_ context.Context, id int) (*entity.Purchase, error) {
	for _, p := range m.items {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memPurchaseRepo) Delete(_ context.Context, id int) error {
	for i, p := range m.items {
		if p.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *memPurchaseRepo) DeleteByProduct(_ context.Context, productID int) (int, error) {
	kept := m.items[:0]
	deleted := 0
	for _, p := range m.items {
		if p.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	m.items = kept
	return deleted, nil
}

func (m *memPurchaseRepo) ListRows(_ context.Context, f repository.TxFilter) ([]repository.PurchaseRow, error) {
	out := make([]repository.PurchaseRow, 0)
	for _, p := range m.items {
		if f.ProductID != nil && p.ProductID != *f.ProductID {
			continue
		}
		if f.From != nil && p.PurchaseDate.Before(*f.From) {
			continue
		}
		if f.To != nil && p.PurchaseDate.After(*f.To) {
			continue
		}
		name := ""
		if prod, ok := m.products.items[p.ProductID]; ok {
			name = prod.Name
		}
		out = append(out, repository.PurchaseRow{
			ID: p.ID, ProductID: p.ProductID, ProductName: name,
			Quantity: p.Quantity, TotalCost: p.TotalCost, PurchaseDate: p.PurchaseDate,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.After(out[j].PurchaseDate) })
	return out, nil
}

func (m *memPurchaseRepo) ListByProduct(_ context.Context, productID int) ([]*entity.Purchase, error) {
	out := make([]*entity.Purchase, 0)
	for _, p := range m.items {
		if p.ProductID == productID {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PurchaseDate.Before(out[j].PurchaseDate) })
	return out, nil
}

func (m *memPurchaseRepo) TotalQuantity(_ context.Context, productID int, upTo *time.Time) (int, error) {
	total := 0
	for _, p := range m.items {
		if p.ProductID != productID {
			continue
		}
		if upTo != nil && p.PurchaseDate.After(*upTo) {
			continue
		}
		total += p.Quantity
	}
	return total, nil
}

func (m *memPurchaseRepo) Count(_ context.Context) (int, error) { return len(m.items), nil }

func (m *memPurchaseRepo) CountByProduct(_ context.Context, productID int) (int, error) {
	n := 0
	for _, p := range m.items {
		if p.ProductID == productID {
			n++
		}
	}
	return n, nil
}

func (m *memPurchaseRepo) CountSince(_ context.Context, since time.Time) (int, error) {
	n := 0
	for _, p := range m.items {
		if !p.PurchaseDate.Before(since) {
			n++
		}
	}
	return n, nil
}

func (m *memPurchaseRepo) SumQuantity(_ context.Context) (int, error) {
	total := 0
	for _, p := range m.items {
		total += p.Quantity
	}
	return total, nil
}

// memTx ejecuta fn directo contra los repos en memoria (sin rollback real;
// los casos probados rechazan antes de mutar).
type memTx struct {
	repos Repos
}

func (t *memTx) Run(_ context.Context, fn func(r Repos) error) error {
	return fn(t.repos)
}

// fixture arma el juego completo de fakes compartiendo el repo de productos.
func fixture() (*memProductRepo, *memSaleRepo, *memPurchaseRepo, *memTx) {
	products := newMemProductRepo()
	sales := newMemSaleRepo(products)
	purchases := newMemPurchaseRepo(products)
	tx := &memTx{repos: Repos{Products: products, Sales: sales, Purchases: purchases}}
	return products, sales, purchases, tx
}
