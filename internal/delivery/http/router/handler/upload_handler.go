package handler

import (
	"log/slog"
	"net/http"

	"nexstock/internal/delivery/http/response"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UploadHandler accepts multipart image uploads and stores them in the blob
// bucket.
type UploadHandler struct {
	uploader service.Uploader
	logger   *slog.Logger
}

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	Uploader service.Uploader
	Logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{uploader: params.Uploader, logger: params.Logger}
}

// Upload stores the "file" form part and returns its public URL.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file form part")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}
	defer func() { _ = src.Close() }()

	url, err := h.uploader.Upload(
		c.Request().Context(),
		fileHeader.Filename,
		fileHeader.Header.Get(echo.HeaderContentType),
		src,
	)
	if err != nil {
		h.logger.Error("Upload failed", slog.String("filename", fileHeader.Filename), slog.Any("error", err))

		return domainerrors.ErrUploadFailed.WithDetails(err.Error())
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Upload complete")
}
