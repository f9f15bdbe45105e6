package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación del puerto PurchaseRepository sobre PostgreSQL (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra y asigna su ID serial.
func (r *PurchaseRepo) Create(ctx context.Context, p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (product_id, quantity, total_cost, purchase_date, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		p.ProductID, p.Quantity, p.TotalCost, p.PurchaseDate, p.CreatedBy,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID.
func (r *PurchaseRepo) GetByID(ctx context.Context, id int) (*entity.Purchase, error) {
	query := `SELECT id, product_id, quantity, total_cost, purchase_date, created_by FROM purchases WHERE id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.ProductID, &p.Quantity, &p.TotalCost, &p.PurchaseDate, &p.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// Delete elimina una compra por ID.
func (r *PurchaseRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las compras de un producto y devuelve cuántas.
func (r *PurchaseRepo) DeleteByProduct(ctx context.Context, productID int) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM purchases WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete purchases by product: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListRows devuelve filas con el nombre del producto resuelto, más recientes
// primero, con filtros opcionales de rango y producto.
func (r *PurchaseRepo) ListRows(ctx context.Context, f repository.TxFilter) ([]repository.PurchaseRow, error) {
	query := `
		SELECT c.id, c.product_id, p.name, c.quantity, c.total_cost, c.purchase_date
		FROM purchases c
		JOIN products p ON p.id = c.product_id`
	where, args := buildTxFilter("c.purchase_date", "c.product_id", f)
	query += where + ` ORDER BY c.purchase_date DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []repository.PurchaseRow
	for rows.Next() {
		var row repository.PurchaseRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.ProductName, &row.Quantity, &row.TotalCost, &row.PurchaseDate); err != nil {
			return nil, fmt.Errorf("scan purchase row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByProduct devuelve las compras de un producto ordenadas por fecha.
func (r *PurchaseRepo) ListByProduct(ctx context.Context, productID int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, product_id, quantity, total_cost, purchase_date, created_by
		FROM purchases WHERE product_id = $1 ORDER BY purchase_date`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list purchases by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(&p.ID, &p.ProductID, &p.Quantity, &p.TotalCost, &p.PurchaseDate, &p.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// TotalQuantity suma cantidades compradas del producto, opcionalmente hasta un corte.
func (r *PurchaseRepo) TotalQuantity(ctx context.Context, productID int, upTo *time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM purchases WHERE product_id = $1`
	args := []any{productID}
	if upTo != nil {
		query += ` AND purchase_date <= $2`
		args = append(args, *upTo)
	}
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum purchase quantity: %w", err)
	}
	return n, nil
}

// Count devuelve el total de compras registradas.
func (r *PurchaseRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count purchases: %w", err)
	}
	return n, nil
}

// CountByProduct cuenta las compras de un producto.
func (r *PurchaseRepo) CountByProduct(ctx context.Context, productID int) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchases WHERE product_id = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count purchases by product: %w", err)
	}
	return n, nil
}

// CountSince cuenta compras desde un instante.
func (r *PurchaseRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM purchases WHERE purchase_date >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count purchases since: %w", err)
	}
	return n, nil
}

// SumQuantity suma todas las unidades compradas.
func (r *PurchaseRepo) SumQuantity(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM purchases`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum purchases quantity: %w", err)
	}
	return n, nil
}
