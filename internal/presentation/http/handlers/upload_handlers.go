package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/pkg/config"
)

// UploadHandlers contains upload HTTP handlers
type UploadHandlers struct {
	uploadService *services.UploadService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewUploadHandlers creates upload handlers with injected dependencies
func NewUploadHandlers(uploadService *services.UploadService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *UploadHandlers {
	return &UploadHandlers{
		uploadService: uploadService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// Upload accepts a multipart file and returns the ledger id and URL
func (h *UploadHandlers) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field is required"})
		return
	}
	if fileHeader.Size > config.MaxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": fmt.Sprintf("file exceeds %d byte limit", config.MaxUploadBytes),
		})
		return
	}

	marker := h.perfTracker.StartOperation("upload_request")
	defer marker.Complete()

	f, err := fileHeader.Open()
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	result, err := h.uploadService.Store(data, fileHeader.Filename)
	if err != nil {
		marker.SetError(err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	marker.SetSuccess(true)
	h.logger.Media().Info("Upload request completed", "id", result.ID, "size", result.Size)
	c.JSON(http.StatusCreated, result)
}

// Serve streams the stored binary for an upload id
func (h *UploadHandlers) Serve(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	upload, err := h.uploadService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if upload == nil {
		writeNotFound(c)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.Header("Content-Type", upload.Mime)
	c.File(h.uploadService.FilePath(upload))
}

// AdminList returns the upload ledger for the dashboard
func (h *UploadHandlers) AdminList(c *gin.Context) {
	uploads, err := h.uploadService.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": uploads, "count": len(uploads)})
}

// AdminDelete removes an upload and its binaries
func (h *UploadHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.uploadService.Delete(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if !removed {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
