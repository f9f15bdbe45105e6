package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. El esquema es chico y estable;
// no hay motor de migraciones.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(200) NOT NULL UNIQUE,
			password_hash VARCHAR(200) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			last_login TIMESTAMPTZ,
			can_sales BOOLEAN NOT NULL DEFAULT FALSE,
			can_purchase BOOLEAN NOT NULL DEFAULT FALSE,
			can_create_product BOOLEAN NOT NULL DEFAULT FALSE,
			can_delete_product BOOLEAN NOT NULL DEFAULT FALSE,
			can_sales_ledger BOOLEAN NOT NULL DEFAULT FALSE,
			can_purchase_ledger BOOLEAN NOT NULL DEFAULT FALSE,
			can_stock_ledger BOOLEAN NOT NULL DEFAULT FALSE,
			can_profit_loss BOOLEAN NOT NULL DEFAULT FALSE,
			can_opening_stock BOOLEAN NOT NULL DEFAULT FALSE,
			can_user_management BOOLEAN NOT NULL DEFAULT FALSE
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL UNIQUE,
			purchase_price DOUBLE PRECISION NOT NULL,
			selling_price DOUBLE PRECISION NOT NULL,
			unit_type VARCHAR(10) NOT NULL,
			stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			total_amount DOUBLE PRECISION NOT NULL,
			sale_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_by INTEGER REFERENCES users(id)
		)`,
		`CREATE TABLE IF NOT EXISTS purchases (
			id SERIAL PRIMARY KEY,
			product_id INTEGER NOT NULL REFERENCES products(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0),
			total_cost DOUBLE PRECISION NOT NULL,
			purchase_date TIMESTAMPTZ NOT NULL DEFAULT now(),
			created_by INTEGER REFERENCES users(id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_sales_product_date ON sales (product_id, sale_date)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_product_date ON purchases (product_id, purchase_date)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
