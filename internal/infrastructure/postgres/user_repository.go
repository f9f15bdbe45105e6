package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// Los diez permisos se persisten como columnas booleanas independientes, en
// el orden canónico de entity.AllPermissions.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const userColumns = `id, username, email, password_hash, is_active, created_at, last_login,
		can_sales, can_purchase, can_create_product, can_delete_product, can_sales_ledger,
		can_purchase_ledger, can_stock_ledger, can_profit_loss, can_opening_stock, can_user_management`

// permFlags aplana un PermissionSet a los diez booleanos en orden canónico.
func permFlags(s entity.PermissionSet) []any {
	out := make([]any, len(entity.AllPermissions))
	for i, p := range entity.AllPermissions {
		out[i] = s.Has(p)
	}
	return out
}

// scanUser lee una fila de usuario incluyendo los flags de permiso.
func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	flags := make([]bool, len(entity.AllPermissions))
	dest := []any{&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.IsActive, &u.CreatedAt, &u.LastLogin}
	for i := range flags {
		dest = append(dest, &flags[i])
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	u.Permissions = entity.NewPermissionSet()
	for i, p := range entity.AllPermissions {
		if flags[i] {
			u.Permissions.Grant(p)
		}
	}
	return &u, nil
}

// Create persiste un nuevo usuario con sus permisos y asigna su ID serial.
func (r *UserRepo) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, is_active,
			can_sales, can_purchase, can_create_product, can_delete_product, can_sales_ledger,
			can_purchase_ledger, can_stock_ledger, can_profit_loss, can_opening_stock, can_user_management)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at`
	args := append([]any{u.Username, u.Email, u.PasswordHash, u.IsActive}, permFlags(u.Permissions)...)
	err := r.q.QueryRow(ctx, query, args...).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por nombre.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = $1`, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// List devuelve todos los usuarios ordenados por ID.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := r.q.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, u)
	}
	return list, rows.Err()
}

// Update actualiza email, hash, flag activo y los diez permisos.
func (r *UserRepo) Update(ctx context.Context, u *entity.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, is_active = $4,
			can_sales = $5, can_purchase = $6, can_create_product = $7, can_delete_product = $8,
			can_sales_ledger = $9, can_purchase_ledger = $10, can_stock_ledger = $11,
			can_profit_loss = $12, can_opening_stock = $13, can_user_management = $14
		WHERE id = $1`
	args := append([]any{u.ID, u.Email, u.PasswordHash, u.IsActive}, permFlags(u.Permissions)...)
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// UpdatePasswordHash actualiza solo el hash (migración de credenciales heredadas).
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	if _, err := r.q.Exec(ctx, `UPDATE users SET password_hash = $2 WHERE id = $1`, id, hash); err != nil {
		return fmt.Errorf("update password hash: %w", err)
	}
	return nil
}

// UpdateLastLogin registra el instante del último login exitoso.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id int, at time.Time) error {
	if _, err := r.q.Exec(ctx, `UPDATE users SET last_login = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}
