package handlers

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barbearia-app/barbearia-api/internal/httperr"
)

func TestParseDateIn(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	date, err := parseDateIn(loc, "2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, time.March, date.Month())
	assert.Equal(t, 10, date.Day())
	assert.Equal(t, loc, date.Location())

	_, err = parseDateIn(loc, "10/03/2026")
	assert.Error(t, err)
}

func TestValidHM(t *testing.T) {
	assert.True(t, validHM("09:00"))
	assert.True(t, validHM("23:59"))

	assert.False(t, validHM("9:00:00"))
	assert.False(t, validHM("25:00"))
	assert.False(t, validHM(""))
	assert.False(t, validHM("almoço"))
}

func TestWriteBusinessError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() (*gin.Context, *httptest.ResponseRecorder) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		return c, w
	}

	t.Run("known business code", func(t *testing.T) {
		c, w := newCtx()
		handled := writeBusinessError(c, httperr.ErrBusiness("version_conflict"))
		assert.True(t, handled)
		assert.Equal(t, 409, w.Code)
		assert.Contains(t, w.Body.String(), "version_conflict")
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		c, w := newCtx()
		handled := writeBusinessError(c, httperr.ErrBusiness("barber_not_found"))
		assert.True(t, handled)
		assert.Equal(t, 404, w.Code)
	})

	t.Run("non business error passes through", func(t *testing.T) {
		c, w := newCtx()
		handled := writeBusinessError(c, errors.New("boom"))
		assert.False(t, handled)
		assert.Equal(t, 200, w.Code)
	})

	t.Run("unknown business code passes through", func(t *testing.T) {
		c, _ := newCtx()
		handled := writeBusinessError(c, httperr.ErrBusiness("mystery"))
		assert.False(t, handled)
	})
}
