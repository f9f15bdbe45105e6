package repository

import (
	"context"
	"time"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios. Las implementaciones
// devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error // asigna u.ID
	GetByID(ctx context.Context, id int) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
	UpdateLastLogin(ctx context.Context, id int, at time.Time) error
}
