package stock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/domain/stock"
)

func TestParseDate_ISOConHora(t *testing.T) {
	got, dateOnly, err := stock.ParseDate("2025-03-15T14:30:00Z")
	require.NoError(t, err)
	assert.False(t, dateOnly)
	assert.Equal(t, time.Date(2025, 3, 15, 14, 30, 0, 0, time.UTC), got)

	// Sin zona también se acepta.
	got, _, err = stock.ParseDate("2025-03-15T14:30:00")
	require.NoError(t, err)
	assert.Equal(t, 14, got.Hour())
}

func TestParseDate_SoloFechaISO(t *testing.T) {
	got, dateOnly, err := stock.ParseDate("2025-03-15")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_FormatoDDMMYYYY(t *testing.T) {
	got, dateOnly, err := stock.ParseDate("15-03-2025")
	require.NoError(t, err)
	assert.True(t, dateOnly)
	assert.Equal(t, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestParseDate_Invalida(t *testing.T) {
	for _, in := range []string{"", "ayer", "2025/03/15", "15-03-25"} {
		_, _, err := stock.ParseDate(in)
		assert.Error(t, err, "input %q debe fallar", in)
	}
}

// Un date_to solo-fecha cubre el día completo: el corte se extiende a 23:59:59.
func TestParseRangeEnd_ExtiendeAlFinalDelDia(t *testing.T) {
	got, err := stock.ParseRangeEnd("2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC), got)

	// Con hora explícita no se toca.
	got, err = stock.ParseRangeEnd("2025-03-15T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, got.Hour())
}

func TestCutoff(t *testing.T) {
	// date_to manda.
	cut, ok, err := stock.Cutoff("2025-01-01", "2025-03-15")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 3, 15, 23, 59, 59, 0, time.UTC), cut)

	// Solo date_from: se usa como corte (consulta as-of al inicio de la ventana).
	cut, ok, err = stock.Cutoff("2025-01-01", "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), cut)

	// Sin filtros: no hay corte, el llamador reporta el stock vivo.
	_, ok, err = stock.Cutoff("", "")
	require.NoError(t, err)
	assert.False(t, ok)

	// Filtro malformado: error para esa consulta, el llamador decide el fallback.
	_, _, err = stock.Cutoff("", "no-es-fecha")
	assert.Error(t, err)
}
