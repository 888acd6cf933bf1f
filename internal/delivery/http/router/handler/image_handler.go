package handler

import (
	"log/slog"
	"net/http"

	"bizdir/internal/delivery/http/middleware"
	"bizdir/internal/delivery/http/response"
	domainerrors "bizdir/internal/domain/errors"
	"bizdir/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler accepts image uploads and hands back the opaque reference
// stored on profiles, listings, reviews and deals.
type ImageHandler struct {
	encoder service.BlobEncoder
	logger  *slog.Logger
}

// NewImageHandler is the constructor for ImageHandler, injected by Fx.
func NewImageHandler(encoder service.BlobEncoder, logger *slog.Logger) *ImageHandler {
	return &ImageHandler{
		encoder: encoder,
		logger:  logger,
	}
}

// Upload encodes a multipart image upload. The caller places the returned
// image_ref on whatever document the image belongs to.
func (h *ImageHandler) Upload(c echo.Context) error {
	if middleware.Actor(c) == nil {
		return domainerrors.ErrLoginRequired
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing image upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open image upload")
	}
	defer file.Close()

	imageRef, err := h.encoder.Encode(file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"image_ref": imageRef}, "Image uploaded")
}
