package auth

import (
	"context"
	"time"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/internal/domain/repository"
	"github.com/jhoicas/kirana-api/pkg/config"
	"github.com/jhoicas/kirana-api/pkg/jwt"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Usecase maneja login, autorregistro y sesión actual.
type Usecase struct {
	users  repository.UserRepository
	jwtCfg config.JWTConfig
	log    *logger.Logger
}

func NewUsecase(users repository.UserRepository, jwtCfg config.JWTConfig, log *logger.Logger) *Usecase {
	return &Usecase{users: users, jwtCfg: jwtCfg, log: log}
}

// Login valida credenciales y emite un bearer token. Las credenciales en
// formato heredado se rehashean con bcrypt tras un login exitoso; si el
// rehash falla el login igual procede.
func (uc *Usecase) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}

	ok, legacy := VerifyCredential(user.PasswordHash, req.Password)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if legacy {
		if hash, hashErr := HashPassword(req.Password); hashErr == nil {
			if upErr := uc.users.UpdatePasswordHash(ctx, user.ID, hash); upErr != nil {
				uc.log.Warn().Err(upErr).Str("username", user.Username).
					Msg("no se pudo migrar la credencial heredada")
			}
		}
	}

	now := time.Now()
	if err := uc.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		uc.log.Warn().Err(err).Str("username", user.Username).
			Msg("no se pudo actualizar last_login")
	}
	user.LastLogin = &now

	token, err := jwt.Generate(uc.jwtCfg.Secret, user.Username, uc.jwtCfg.Issuer, uc.jwtCfg.Expiration)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        dto.NewUserResponse(user),
	}, nil
}

// Register crea una cuenta de autoservicio con los permisos mínimos de
// mostrador: registrar ventas y compras. Todo lo demás lo concede un
// administrador después.
func (uc *Usecase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	existing, err := uc.users.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	email := req.Email
	if email == "" {
		email = req.Username + "@example.com"
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: hash,
		Permissions:  entity.NewPermissionSet(entity.PermSales, entity.PermPurchase),
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.log.Info().Str("username", user.Username).Msg("usuario registrado")
	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Me devuelve el usuario autenticado actual.
func (uc *Usecase) Me(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := uc.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := dto.NewUserResponse(user)
	return &resp, nil
}
