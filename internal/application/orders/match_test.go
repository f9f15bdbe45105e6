package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/kirana-api/internal/domain/entity"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "azucar", normalizeName("Azúcar"))
	assert.Equal(t, "azucar", normalizeName("  AZÚCAR "))
	assert.Equal(t, "cafe con leche", normalizeName("Café Con Leche"))
	assert.Equal(t, "rice", normalizeName("Rice"))
	assert.Equal(t, "", normalizeName("   "))
}

func TestMatchProduct(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Azúcar"},
		{ID: 2, Name: "Rice"},
	}

	// Coincidencia sin tildes ni mayúsculas.
	p := matchProduct(products, "azucar")
	assert.NotNil(t, p)
	assert.Equal(t, 1, p.ID)

	p = matchProduct(products, "RICE ")
	assert.NotNil(t, p)
	assert.Equal(t, 2, p.ID)

	assert.Nil(t, matchProduct(products, "harina"))
	assert.Nil(t, matchProduct(products, ""))
}

func TestMatchProductInText(t *testing.T) {
	products := []*entity.Product{
		{ID: 1, Name: "Azúcar"},
		{ID: 2, Name: "Rice"},
		{ID: 3, Name: "Rice Flour"},
	}

	// El nombre aparece dentro de una pregunta en texto libre.
	p := matchProductInText(products, "what is the price of rice?")
	assert.NotNil(t, p)
	assert.Equal(t, 2, p.ID)

	p = matchProductInText(products, "¿Cuánto vale el AZUCAR hoy?")
	assert.NotNil(t, p)
	assert.Equal(t, 1, p.ID)

	// Gana la coincidencia más larga, no la primera que contenga.
	p = matchProductInText(products, "precio de rice flour por favor")
	assert.NotNil(t, p)
	assert.Equal(t, 3, p.ID)

	assert.Nil(t, matchProductInText(products, "buenos días"))
	assert.Nil(t, matchProductInText(products, ""))
}
