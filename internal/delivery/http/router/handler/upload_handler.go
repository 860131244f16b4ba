package handler

import (
	"log/slog"
	"net/http"

	"luxe/internal/delivery/http/response"
	domainerrors "luxe/internal/domain/errors"
	"luxe/internal/infra/upload"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler receives product image uploads. Admin only.
type UploadHandler struct {
	store  *upload.LocalStore
	logger *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(store *upload.LocalStore, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{
		store:  store,
		logger: logger,
	}
}

// Upload stores the "image" form file and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return domainerrors.ErrNoFileProvided
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	url, err := h.store.Save(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"imageUrl": url}, "Fichier téléversé")
}
