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

// BlogHandlers contains all blog-related HTTP handlers
type BlogHandlers struct {
	blogService *services.BlogService
	logger      *logging.ChanneledLogger
	perfTracker *performance.Tracker
}

// NewBlogHandlers creates blog handlers with injected dependencies
func NewBlogHandlers(blogService *services.BlogService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *BlogHandlers {
	return &BlogHandlers{
		blogService: blogService,
		logger:      logger,
		perfTracker: perfTracker,
	}
}

// List returns localized blog posts for the public site
func (h *BlogHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_blog_posts_request")
	defer marker.Complete()

	posts, err := h.blogService.List(lang, true, queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List blog posts request completed", "lang", lang, "count", len(posts), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": posts, "count": len(posts)})
}

// GetByID returns one localized blog post
func (h *BlogHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetByID(id, lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetBySlug returns one localized blog post by its URL slug
func (h *BlogHandlers) GetBySlug(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	post, err := h.blogService.GetBySlug(c.Param("slug"), lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, post)
}

// GetSettings returns the localized blog page settings
func (h *BlogHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.blogService.Settings(lang)
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
func (h *BlogHandlers) AdminList(c *gin.Context) {
	posts, err := h.blogService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": posts, "count": len(posts)})
}

// AdminGet returns one bilingual record
func (h *BlogHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	post, err := h.blogService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if post == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, post)
}

// AdminCreate creates a blog post
func (h *BlogHandlers) AdminCreate(c *gin.Context) {
	var req content.BlogPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_blog_post_request")
	defer marker.Complete()

	created, err := h.blogService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a blog post wholesale
func (h *BlogHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.BlogPost
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.blogService.Update(id, &req)
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

// AdminDelete removes a blog post
func (h *BlogHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.blogService.Delete(id)
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

// AdminGetSettings returns the bilingual blog page settings
func (h *BlogHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.blogService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the blog page settings
func (h *BlogHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.blogService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
