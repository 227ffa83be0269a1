package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saturn-server/internal/logics"
)

// PhotoController resolves media object keys to presigned URLs.
type PhotoController struct {
	mediaService logics.URLSigner
}

func NewPhotoController(mediaService logics.URLSigner) *PhotoController {
	return &PhotoController{mediaService: mediaService}
}

// GetPhotoURL handles GET /photos/:key. A provider failure is reported as
// not-found for the requested resource.
func (pc *PhotoController) GetPhotoURL(c echo.Context) error {
	key := c.Param("key")
	if key == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "photo key is required"})
	}

	url, err := pc.mediaService.PresignedURL(c.Request().Context(), key)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "photo not found"})
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
