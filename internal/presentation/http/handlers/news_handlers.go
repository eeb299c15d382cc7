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

// NewsHandlers contains all news-related HTTP handlers
type NewsHandlers struct {
	newsService *services.NewsService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewNewsHandlers creates news handlers with injected dependencies
func NewNewsHandlers(newsService *services.NewsService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *NewsHandlers {
	return &NewsHandlers{
		newsService: newsService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns localized news items for the public site
func (h *NewsHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_news_request")
	defer marker.Complete()

	items, err := h.newsService.List(lang, true, queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List news request completed", "lang", lang, "count", len(items), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// GetByID returns one localized news item
func (h *NewsHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	item, err := h.newsService.GetByID(id, lang)
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

// GetBySlug returns one localized news item by its URL slug
func (h *NewsHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	item, err := h.newsService.GetBySlug(c.Param("slug"), lang)
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

// GetSettings returns the localized news page settings
func (h *NewsHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.newsService.Settings(lang)
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
func (h *NewsHandlers) AdminList(c *gin.Context) {
	items, err := h.newsService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// AdminGet returns one bilingual record
func (h *NewsHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.newsService.GetRaw(id)
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

// AdminCreate creates a news item
func (h *NewsHandlers) AdminCreate(c *gin.Context) {
	var req content.NewsItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_news_request")
	defer marker.Complete()

	created, err := h.newsService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a news item wholesale
func (h *NewsHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.NewsItem
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.newsService.Update(id, &req)
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

// AdminDelete removes a news item
func (h *NewsHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.newsService.Delete(id)
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

// AdminGetSettings returns the bilingual news page settings
func (h *NewsHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.newsService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the news page settings
func (h *NewsHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.newsService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
