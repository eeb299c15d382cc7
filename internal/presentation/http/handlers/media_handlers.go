package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
)

// MediaHandlers contains all media-gallery HTTP handlers
type MediaHandlers struct {
	mediaService *services.MediaService
	logger       *logging.ChanneledLogger
	perfTracker  *performance.Tracker
}

// NewMediaHandlers creates media handlers with injected dependencies
func NewMediaHandlers(mediaService *services.MediaService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *MediaHandlers {
	return &MediaHandlers{
		mediaService: mediaService,
		logger:       logger,
		perfTracker:  perfTracker,
	}
}

// List returns localized gallery items for the public site
func (h *MediaHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_media_request")
	defer marker.Complete()

	items, err := h.mediaService.List(lang, true, queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List media request completed", "lang", lang, "count", len(items), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// GetByID returns one localized gallery item
func (h *MediaHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.mediaService.GetByID(id, lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetBySlug returns one localized gallery item by its URL slug
func (h *MediaHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	item, err := h.mediaService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetSettings returns the localized media page settings
func (h *MediaHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.mediaService.Settings(lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettingsView{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminList returns the full bilingual records for the dashboard
func (h *MediaHandlers) AdminList(c *gin.Context) {
	items, err := h.mediaService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// AdminGet returns one bilingual record
func (h *MediaHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.mediaService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if item == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, item)
}

// AdminCreate creates a gallery item
func (h *MediaHandlers) AdminCreate(c *gin.Context) {
	var req content.MediaItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_media_request")
	defer marker.Complete()

	created, err := h.mediaService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a gallery item wholesale
func (h *MediaHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.MediaItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.mediaService.Update(id, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	if updated == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AdminDelete removes a gallery item
func (h *MediaHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.mediaService.Delete(id)
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

// AdminGetSettings returns the bilingual media page settings
func (h *MediaHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.mediaService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the media page settings
func (h *MediaHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.mediaService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
