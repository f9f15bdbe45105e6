package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/application/dto"
	"github.com/jhoicas/kirana-api/internal/domain"
	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

func TestProductCreateYGet(t *testing.T) {
	products, _, _, tx := fixture()
	uc := NewProductUsecase(products, tx, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Azúcar",
		PurchasePrice: 80,
		SellingPrice:  100,
		UnitType:      entity.UnitKilograms,
		Stock:         50,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, 50, created.Stock)

	got, err := uc.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Azúcar", got.Name)
}

func TestProductCreateUnidadInvalida(t *testing.T) {
	products, _, _, tx := fixture()
	uc := NewProductUsecase(products, tx, testLogger())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Azúcar",
		PurchasePrice: 80,
		SellingPrice:  100,
		UnitType:      "cajas",
		Stock:         50,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductGetInexistente(t *testing.T) {
	products, _, _, tx := fixture()
	uc := NewProductUsecase(products, tx, testLogger())

	_, err := uc.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUpdateParcial(t *testing.T) {
	products, _, _, tx := fixture()
	uc := NewProductUsecase(products, tx, testLogger())

	created, err := uc.Create(context.Background(), dto.CreateProductRequest{
		Name:          "Rice",
		PurchasePrice: 100,
		SellingPrice:  120,
		UnitType:      entity.UnitKilograms,
		Stock:         30,
	})
	require.NoError(t, err)

	newPrice := 130.0
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateProductRequest{
		SellingPrice: &newPrice,
	})
	require.NoError(t, err)
	// Solo cambia el campo enviado.
	assert.Equal(t, 130.0, updated.SellingPrice)
	assert.Equal(t, "Rice", updated.Name)
	assert.Equal(t, 30, updated.Stock)
}

func TestProductListCatalogoConImagenes(t *testing.T) {
	products, _, _, tx := fixture()
	uc := NewProductUsecase(products, tx, testLogger())

	for _, name := range []string{"Apple", "Cardamomo"} {
		_, err := uc.Create(context.Background(), dto.CreateProductRequest{
			Name:          name,
			PurchasePrice: 80,
			SellingPrice:  100,
			UnitType:      entity.UnitKilograms,
			Stock:         10,
		})
		require.NoError(t, err)
	}

	catalog, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 2)

	// El precio del catálogo es el de venta.
	assert.Equal(t, 100.0, catalog[0].Price)
	// Producto conocido: imagen mapeada; desconocido: placeholder genérico.
	assert.Contains(t, catalog[0].ImageURL, "text=Apple")
	assert.Contains(t, catalog[1].ImageURL, "text=Product")
}
