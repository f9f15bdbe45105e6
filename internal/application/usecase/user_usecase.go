package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/kirana-api/internal/application/auth"
	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// UserUsecase administración de usuarios y permisos. Reservado a cuentas con
// el permiso de gestión de usuarios.
type UserUsecase struct {
	users repository.UserRepository
	log   *logger.Logger
}

func NewUserUsecase(users repository.UserRepository, log *logger.Logger) *UserUsecase {
	return &UserUsecase{users: users, log: log}
}

// permissionSetFromStrings valida y convierte nombres de permiso.
func permissionSetFromStrings(names []string) (entity.PermissionSet, error) {
	set := entity.NewPermissionSet()
	for _, name := range names {
		perm := entity.Permission(name)
		if !entity.IsValidPermission(perm) {
			return nil, fmt.Errorf("%w: permiso desconocido %q", domain.ErrInvalidInput, name)
		}
		set.Grant(perm)
	}
	return set, nil
}

// List devuelve todos los usuarios.
func (uc *UserUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// Get devuelve un usuario por id.
func (uc *UserUsecase) Get(ctx context.Context, id int) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// Create da de alta un usuario con los permisos que indique el administrador.
func (uc *UserUsecase) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	perms, err := permissionSetFromStrings(req.Permissions)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Permissions:  perms,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, u); err != nil {
		return nil, err
	}
	uc.log.Info().Str("username", u.Username).Msg("usuario creado por administración")
	resp := dto.NewUserResponse(u)
	return &resp, nil
}

// Update actualiza permisos, contraseña, email o el flag activo de un
// usuario. Los usuarios no se borran: se desactivan.
func (uc *UserUsecase) Update(ctx context.Context, id int, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	u, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrUserNotFound
	}

	if req.Permissions != nil {
		perms, err := permissionSetFromStrings(*req.Permissions)
		if err != nil {
			return nil, err
		}
		u.Permissions = perms
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}

	if err := uc.users.Update(ctx, u); err != nil {
		return nil, err
	}
	uc.log.Info().Int("user_id", id).Msg("usuario actualizado")
	resp := dto.NewUserResponse(u)
	return &resp, nil
}
