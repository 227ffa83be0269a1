package controllers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saturn-server/internal/controllers"
)

type fakeSigner struct {
	err error
}

func (f *fakeSigner) PresignedURL(ctx context.Context, key string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://signed.example/" + key, nil
}

func TestGetPhotoURL(t *testing.T) {
	e := echo.New()

	t.Run("returns presigned url", func(t *testing.T) {
		controller := controllers.NewPhotoController(&fakeSigner{})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("key")
		c.SetParamValues("photos/one.jpg")

		require.NoError(t, controller.GetPhotoURL(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "https://signed.example/photos/one.jpg")
	})

	t.Run("provider failure maps to not found", func(t *testing.T) {
		controller := controllers.NewPhotoController(&fakeSigner{err: errors.New("provider down")})
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("key")
		c.SetParamValues("photos/one.jpg")

		require.NoError(t, controller.GetPhotoURL(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
