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

// PageHandlers contains static-page and site-settings HTTP handlers
type PageHandlers struct {
	pageService *services.PageService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewPageHandlers creates page handlers with injected dependencies
func NewPageHandlers(pageService *services.PageService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *PageHandlers {
	return &PageHandlers{
		pageService: pageService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns localized pages; ?menu=true limits to menu-visible ones
func (h *PageHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_pages_request")
	defer marker.Complete()

	pages, err := h.pageService.List(lang, queryFlag(c, "menu"))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List pages request completed", "lang", lang, "count", len(pages), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": pages, "count": len(pages)})
}

// GetByID returns one localized page
func (h *PageHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	page, err := h.pageService.GetByID(id, lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if page == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetBySlug returns one localized page by its URL slug
func (h *PageHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	page, err := h.pageService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if page == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, page)
}

// GetSiteSettings returns the localized global site settings
func (h *PageHandlers) GetSiteSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.pageService.SiteSettings(lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SiteSettingsView{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminList returns the full bilingual records for the dashboard
func (h *PageHandlers) AdminList(c *gin.Context) {
	pages, err := h.pageService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": pages, "count": len(pages)})
}

// AdminGet returns one bilingual record
func (h *PageHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	page, err := h.pageService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if page == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, page)
}

// AdminCreate creates a page
func (h *PageHandlers) AdminCreate(c *gin.Context) {
	var req content.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_page_request")
	defer marker.Complete()

	created, err := h.pageService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a page wholesale
func (h *PageHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.Page
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.pageService.Update(id, &req)
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

// AdminDelete removes a page
func (h *PageHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.pageService.Delete(id)
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

// AdminGetSiteSettings returns the bilingual site settings
func (h *PageHandlers) AdminGetSiteSettings(c *gin.Context) {
	settings, err := h.pageService.SiteSettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SiteSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSiteSettings replaces the global site settings
func (h *PageHandlers) AdminUpdateSiteSettings(c *gin.Context) {
	var req content.SiteSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.pageService.UpsertSiteSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
