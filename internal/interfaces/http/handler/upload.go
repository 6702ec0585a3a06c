package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/baerenfell/backend/internal/application/upload"
)

// UploadHandler handles admin image uploads
type UploadHandler struct {
	BaseHandler
	uploadService *upload.Service
	maxFileSize   int64
	logger        *zap.Logger
}

// NewUploadHandler creates a new upload handler. maxFileSize caps the
// accepted image size in bytes, zero disables the check.
func NewUploadHandler(uploadService *upload.Service, maxFileSize int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxFileSize:   maxFileSize,
		logger:        logger,
	}
}

// Upload handles POST /api/upload/:kind where kind is "products" or
// "artists". The image arrives as multipart field "image".
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := upload.Kind(c.Param("kind"))

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.BadRequest(c, "No image file uploaded")
		return
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		h.Error(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("Image exceeds the maximum size of %d bytes", h.maxFileSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded file", zap.Error(err))
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read uploaded file", zap.Error(err))
		h.InternalError(c, "Failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.uploadService.Store(c.Request.Context(), kind, contentType, data)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Delete handles DELETE /api/upload/*path, removing a stored image by its
// path relative to the upload root.
func (h *UploadHandler) Delete(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("path"), "/")
	if key == "" {
		h.BadRequest(c, "Missing image path")
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), key); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"message": "Image deleted"})
}
