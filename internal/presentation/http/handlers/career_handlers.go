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

// CareerHandlers contains all career-related HTTP handlers
type CareerHandlers struct {
	careerService *services.CareerService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewCareerHandlers creates career handlers with injected dependencies
func NewCareerHandlers(careerService *services.CareerService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *CareerHandlers {
	return &CareerHandlers{
		careerService: careerService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// List returns localized vacancies; ?open=true limits to open positions
func (h *CareerHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_careers_request")
	defer marker.Complete()

	careers, err := h.careerService.List(lang, queryFlag(c, "open"), queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List careers request completed", "lang", lang, "count", len(careers), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": careers, "count": len(careers)})
}

// GetByID returns one localized vacancy
func (h *CareerHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	career, err := h.careerService.GetByID(id, lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if career == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, career)
}

// GetBySlug returns one localized vacancy by its URL slug
func (h *CareerHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	career, err := h.careerService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if career == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, career)
}

// GetSettings returns the localized careers page settings
func (h *CareerHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.careerService.Settings(lang)
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
func (h *CareerHandlers) AdminList(c *gin.Context) {
	careers, err := h.careerService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": careers, "count": len(careers)})
}

// AdminGet returns one bilingual record
func (h *CareerHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	career, err := h.careerService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if career == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, career)
}

// AdminCreate creates a vacancy
func (h *CareerHandlers) AdminCreate(c *gin.Context) {
	var req content.Career
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_career_request")
	defer marker.Complete()

	created, err := h.careerService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a vacancy wholesale
func (h *CareerHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.Career
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.careerService.Update(id, &req)
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

// AdminDelete removes a vacancy
func (h *CareerHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.careerService.Delete(id)
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

// AdminGetSettings returns the bilingual careers page settings
func (h *CareerHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.careerService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the careers page settings
func (h *CareerHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.careerService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
