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

// ClientHandlers contains all client-logo HTTP handlers
type ClientHandlers struct {
	clientService *services.ClientService
	logger        *logging.ChanneledLogger
	perfTracker   *performance.Tracker
}

// NewClientHandlers creates client handlers with injected dependencies
func NewClientHandlers(clientService *services.ClientService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ClientHandlers {
	return &ClientHandlers{
		clientService: clientService,
		logger:        logger,
		perfTracker:   perfTracker,
	}
}

// List returns localized clients; ?menu=true limits to menu-visible ones
func (h *ClientHandlers) List(c *gin.Context) {
	start := time.Now()
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	marker := h.perfTracker.StartOperation("list_clients_request")
	defer marker.Complete()

	clients, err := h.clientService.List(lang, queryFlag(c, "menu"), queryLimit(c))
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Debug("List clients request completed", "lang", lang, "count", len(clients), "duration", time.Since(start))
	c.JSON(http.StatusOK, gin.H{"items": clients, "count": len(clients)})
}

// GetByID returns one localized client
func (h *ClientHandlers) GetByID(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.clientService.GetByID(id, lang)
	if err != nil {
		writeError(c, err)
		return
	}
	if client == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, client)
}

// GetSettings returns the localized clients page settings
func (h *ClientHandlers) GetSettings(c *gin.Context) {
	lang, ok := requestLang(c)
	if !ok {
		return
	}

	settings, err := h.clientService.Settings(lang)
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
func (h *ClientHandlers) AdminList(c *gin.Context) {
	clients, err := h.clientService.ListRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": clients, "count": len(clients)})
}

// AdminGet returns one bilingual record
func (h *ClientHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	client, err := h.clientService.GetRaw(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if client == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, client)
}

// AdminCreate creates a client entry
func (h *ClientHandlers) AdminCreate(c *gin.Context) {
	var req content.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("create_client_request")
	defer marker.Complete()

	created, err := h.clientService.Create(&req)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	c.JSON(http.StatusCreated, created)
}

// AdminUpdate replaces a client entry wholesale
func (h *ClientHandlers) AdminUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req content.Client
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.clientService.Update(id, &req)
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

// AdminDelete removes a client entry
func (h *ClientHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.clientService.Delete(id)
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

// AdminGetSettings returns the bilingual clients page settings
func (h *ClientHandlers) AdminGetSettings(c *gin.Context) {
	settings, err := h.clientService.SettingsRaw()
	if err != nil {
		writeError(c, err)
		return
	}
	if settings == nil {
		settings = &content.SectionSettings{}
	}
	c.JSON(http.StatusOK, settings)
}

// AdminUpdateSettings replaces the clients page settings
func (h *ClientHandlers) AdminUpdateSettings(c *gin.Context) {
	var req content.SectionSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.clientService.UpsertSettings(&req); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, &req)
}
