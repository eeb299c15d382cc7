package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
)

// ContactRequest is the public contact-form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Body    string `json:"body" binding:"required"`
}

// MarkReadRequest toggles the read flag on a stored message
type MarkReadRequest struct {
	Read bool `json:"read"`
}

// ContactHandlers contains contact-form HTTP handlers
type ContactHandlers struct {
	contactService *services.ContactService
	logger         *logging.ChanneledLogger
	perfTracker    *performance.Tracker
}

// NewContactHandlers creates contact handlers with injected dependencies
func NewContactHandlers(contactService *services.ContactService, logger *logging.ChanneledLogger, perfTracker *performance.Tracker) *ContactHandlers {
	return &ContactHandlers{
		contactService: contactService,
		logger:         logger,
		perfTracker:    perfTracker,
	}
}

// Submit stores a contact-form submission and queues the notification email
func (h *ContactHandlers) Submit(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	marker := h.perfTracker.StartOperation("contact_submit_request")
	defer marker.Complete()

	msg := &content.Message{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Body:    req.Body,
	}
	created, err := h.contactService.Submit(msg)
	if err != nil {
		marker.SetError(err)
		writeError(c, err)
		return
	}

	marker.SetSuccess(true)
	h.logger.Content().Info("Contact form submitted", "id", created.ID)
	c.JSON(http.StatusCreated, gin.H{"id": created.ID})
}

// AdminList returns all stored messages for the dashboard
func (h *ContactHandlers) AdminList(c *gin.Context) {
	messages, err := h.contactService.List()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": messages, "count": len(messages)})
}

// AdminGet returns one stored message
func (h *ContactHandlers) AdminGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	msg, err := h.contactService.Get(id)
	if err != nil {
		writeError(c, err)
		return
	}
	if msg == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// AdminMarkRead toggles a message's read flag
func (h *ContactHandlers) AdminMarkRead(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req MarkReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.contactService.MarkRead(id, req.Read)
	if err != nil {
		writeError(c, err)
		return
	}
	if msg == nil {
		writeNotFound(c)
		return
	}
	c.JSON(http.StatusOK, msg)
}

// AdminDelete removes a stored message
func (h *ContactHandlers) AdminDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	removed, err := h.contactService.Delete(id)
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
