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

// ProjectHandlers contains all project-related HTTP handlers
type ProjectHandlers struct {
	projectService *services.ProjectService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewProjectHandlers creates project handlers with injected dependencies
func NewProjectHandlers(projectService *services.ProjectService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ProjectHandlers {
	return &ProjectHandlers{
		projectService: projectService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// List returns localized projects for the public site
func (h *ProjectHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_projects_request")
	defer marker.Complete()

	// Public listings never expose drafts.
	projects, err := h.projectService.List(lang, true, queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List projects request completed", "lang", lang, "count", len(projects), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": projects, "count": len(projects)})
}

// GetByID returns one localized project
func (h *ProjectHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("get_project_request")
	defer marker.Complete()

	project, err := h.projectService.GetByID(id, lang)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}
	if project == nil {
		writeNotFound(c)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, project)
}

// GetBySlug returns one localized project by its URL slug
func (h *ProjectHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("get_project_by_slug_request")
	defer marker.Complete()

	project, err := h.projectService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}
	if project == nil {
		writeNotFound(c)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, project)
}

// GetSettings returns the localized projects page settings
func (h *ProjectHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.projectService.Settings(lang)
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
func (h *ProjectHandlers) AdminList(c *gin.Context) {
	projects, err := h.projectService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": projects, "count": len(projects)})
}

// AdminGet returns one bilingual record
func (h *ProjectHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	project, err := h.projectService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if project == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, project)
}

// AdminCreate creates a new project
func (h *ProjectHandlers) AdminCreate(c *gin.Context) {
	var req content.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_project_request")
	defer marker.Complete()

	created, err := h.projectService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a project wholesale
func (h *ProjectHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.Project
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("update_project_request")
	defer marker.Complete()

	updated, err := h.projectService.Update(id, &req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}
	if updated == nil {
		writeNotFound(c)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusOK, updated)
}

// AdminDelete removes a project
func (h *ProjectHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.projectService.Delete(id)
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

// AdminGetSettings returns the bilingual projects page settings
func (h *ProjectHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.projectService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the projects page settings
func (h *ProjectHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.projectService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
