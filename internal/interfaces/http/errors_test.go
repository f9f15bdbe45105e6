package http

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kirana-api/internal/domain"
)

func errorApp(handlerErr error) *fiber.App {
	app := fiber.New()
	app.Get("/boom", func(c *fiber.Ctx) error {
		return writeError(c, handlerErr)
	})
	return app
}

func hitBoom(t *testing.T, app *fiber.App) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

// Un error sin mapeo de dominio responde 500 con mensaje opaco; el detalle
// queda en el log del servidor, no en la respuesta.
func TestWriteError_InternoOpaco(t *testing.T) {
	status, body := hitBoom(t, errorApp(errors.New("pgx: conexión rechazada a 10.0.0.5:5432")))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Contains(t, body, "INTERNAL")
	assert.Contains(t, body, internalErrorMessage)
	assert.NotContains(t, body, "pgx", "el detalle del error no debe llegar al cliente")
	assert.NotContains(t, body, "10.0.0.5")
}

func TestWriteError_MapeoDeDominio(t *testing.T) {
	cases := []struct {
		err    error
		status int
	}{
		{domain.ErrInvalidInput, http.StatusBadRequest},
		{domain.ErrInsufficientStock, http.StatusBadRequest},
		{domain.ErrUnauthorized, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrNotFound, http.StatusNotFound},
		{domain.ErrDuplicate, http.StatusConflict},
	}
	for _, tc := range cases {
		status, _ := hitBoom(t, errorApp(tc.err))
		assert.Equal(t, tc.status, status, "error %v", tc.err)
	}
}
