package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación del puerto SaleRepository sobre PostgreSQL (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta y asigna su ID serial.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (product_id, quantity, total_amount, sale_date, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		s.ProductID, s.Quantity, s.TotalAmount, s.SaleDate, s.CreatedBy,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *SaleRepo) GetByID(ctx context.Context, id int) (*entity.Sale, error) {
	query := `SELECT id, product_id, quantity, total_amount, sale_date, created_by FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProductID, &s.Quantity, &s.TotalAmount, &s.SaleDate, &s.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// Delete elimina una venta por ID.
func (r *SaleRepo) Delete(ctx context.Context, id int) error {
	_, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	return nil
}

// DeleteByProduct elimina todas las ventas de un producto y devuelve cuántas.
func (r *SaleRepo) DeleteByProduct(ctx context.Context, productID int) (int, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM sales WHERE product_id = $1`, productID)
	if err != nil {
		return 0, fmt.Errorf("delete sales by product: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// ListRows devuelve filas con el nombre del producto resuelto, más recientes
// primero, con filtros opcionales de rango y producto.
func (r *SaleRepo) ListRows(ctx context.Context, f repository.TxFilter) ([]repository.SaleRow, error) {
	query := `
		SELECT s.id, s.product_id, p.name, s.quantity, s.total_amount, s.sale_date
		FROM sales s
		JOIN products p ON p.id = s.product_id`
	where, args := buildTxFilter("s.sale_date", "s.product_id", f)
	query += where + ` ORDER BY s.sale_date DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []repository.SaleRow
	for rows.Next() {
		var row repository.SaleRow
		if err := rows.Scan(&row.ID, &row.ProductID, &row.ProductName, &row.Quantity, &row.TotalAmount, &row.SaleDate); err != nil {
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// ListByProduct devuelve las ventas de un producto ordenadas por fecha.
func (r *SaleRepo) ListByProduct(ctx context.Context, productID int) ([]*entity.Sale, error) {
	query := `
		SELECT id, product_id, quantity, total_amount, sale_date, created_by
		FROM sales WHERE product_id = $1 ORDER BY sale_date`
	rows, err := r.q.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list sales by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Quantity, &s.TotalAmount, &s.SaleDate, &s.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// TotalQuantity suma cantidades vendidas del producto, opcionalmente hasta un corte.
func (r *SaleRepo) TotalQuantity(ctx context.Context, productID int, upTo *time.Time) (int, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM sales WHERE product_id = $1`
	args := []any{productID}
	if upTo != nil {
		query += ` AND sale_date <= $2`
		args = append(args, *upTo)
	}
	var n int
	if err := r.q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum sale quantity: %w", err)
	}
	return n, nil
}

// Count devuelve el total de ventas registradas.
func (r *SaleRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales: %w", err)
	}
	return n, nil
}

// CountByProduct cuenta las ventas de un producto.
func (r *SaleRepo) CountByProduct(ctx context.Context, productID int) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE product_id = $1`, productID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales by product: %w", err)
	}
	return n, nil
}

// CountSince cuenta ventas desde un instante.
func (r *SaleRepo) CountSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM sales WHERE sale_date >= $1`, since).Scan(&n); err != nil {
		return 0, fmt.Errorf("count sales since: %w", err)
	}
	return n, nil
}

// SumQuantity suma todas las unidades vendidas.
func (r *SaleRepo) SumQuantity(ctx context.Context) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(quantity), 0) FROM sales`).Scan(&n); err != nil {
		return 0, fmt.Errorf("sum sales quantity: %w", err)
	}
	return n, nil
}

// buildTxFilter arma la cláusula WHERE y los argumentos para un TxFilter.
func buildTxFilter(dateCol, productCol string, f repository.TxFilter) (string, []any) {
	var conds []string
	var args []any
	if f.From != nil {
		args = append(args, *f.From)
		conds = append(conds, dateCol+" >= $"+strconv.Itoa(len(args)))
	}
	if f.To != nil {
		args = append(args, *f.To)
		conds = append(conds, dateCol+" <= $"+strconv.Itoa(len(args)))
	}
	if f.ProductID != nil {
		args = append(args, *f.ProductID)
		conds = append(conds, productCol+" = $"+strconv.Itoa(len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	where := " WHERE " + conds[0]
	for _, c := range conds[1:] {
		where += " AND " + c
	}
	return where, args
}
