package handler

import (
	"errors"
	"net/http"

	"autocatalog/internal/service"

	"github.com/labstack/echo/v4"
)

type UploadHandler struct {
	Blobs service.BlobStore
}

func NewUploadHandler(blobs service.BlobStore) *UploadHandler {
	return &UploadHandler{Blobs: blobs}
}

func (h *UploadHandler) Upload(c echo.Context) error {
	if h.Blobs == nil {
		return writeError(c, http.StatusServiceUnavailable, errors.New("image storage not configured"))
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("no file sent"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("unreadable file"))
	}
	defer file.Close()

	url, err := h.Blobs.Upload(c.Request().Context(), file, fileHeader.Filename)
	if err != nil {
		c.Logger().Error(err)
		return writeError(c, http.StatusInternalServerError, errors.New("image upload failed"))
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
