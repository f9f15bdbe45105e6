package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/kirana-api/internal/application/auth"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
	"github.com/jhoicas/kirana-api/pkg/logger"
)

// Credenciales por defecto del primer administrador. Cambiarlas tras el
// primer login.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminEmail    = "admin@example.com"
)

// sampleProducts catálogo inicial de una tienda de barrio.
var sampleProducts = []entity.Product{
	{Name: "Apple", PurchasePrice: 80, SellingPrice: 100, UnitType: entity.UnitKilograms, Stock: 50},
	{Name: "Banana", PurchasePrice: 40, SellingPrice: 50, UnitType: entity.UnitKilograms, Stock: 30},
	{Name: "Orange", PurchasePrice: 60, SellingPrice: 80, UnitType: entity.UnitKilograms, Stock: 25},
	{Name: "Milk", PurchasePrice: 50, SellingPrice: 65, UnitType: entity.UnitLiters, Stock: 20},
	{Name: "Bread", PurchasePrice: 30, SellingPrice: 40, UnitType: entity.UnitPieces, Stock: 15},
	{Name: "Eggs", PurchasePrice: 70, SellingPrice: 90, UnitType: entity.UnitPieces, Stock: 40},
	{Name: "Rice", PurchasePrice: 100, SellingPrice: 120, UnitType: entity.UnitKilograms, Stock: 60},
	{Name: "Sugar", PurchasePrice: 45, SellingPrice: 55, UnitType: entity.UnitKilograms, Stock: 35},
}

// Seed siembra el administrador por defecto y el catálogo de muestra cuando
// las tablas correspondientes están vacías. Es idempotente.
func Seed(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	users := NewUserRepository(pool)
	products := NewProductRepository(pool)

	existing, err := users.GetByUsername(ctx, defaultAdminUsername)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if existing == nil {
		hash, err := auth.HashPassword(defaultAdminPassword)
		if err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		admin := &entity.User{
			Username:     defaultAdminUsername,
			Email:        defaultAdminEmail,
			PasswordHash: hash,
			Permissions:  entity.NewPermissionSet(entity.AllPermissions...),
			IsActive:     true,
			CreatedAt:    time.Now(),
		}
		if err := users.Create(ctx, admin); err != nil {
			return fmt.Errorf("seed admin: %w", err)
		}
		log.Info().Str("username", defaultAdminUsername).Msg("administrador por defecto creado")
	}

	count, err := products.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	if count == 0 {
		for i := range sampleProducts {
			p := sampleProducts[i]
			if err := products.Create(ctx, &p); err != nil {
				return fmt.Errorf("seed products: %w", err)
			}
		}
		log.Info().Int("products", len(sampleProducts)).Msg("catálogo de muestra sembrado")
	}
	return nil
}
