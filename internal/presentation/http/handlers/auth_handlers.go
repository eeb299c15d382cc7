package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/presentation/http/middleware"
)

// LoginRequest is the dashboard login payload
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// AuthHandlers contains authentication HTTP handlers
type AuthHandlers struct {
	authService *services.AuthService
	logger      *logging.ChanneledLogger
}

// NewAuthHandlers creates auth handlers with injected dependencies
func NewAuthHandlers(authService *services.AuthService, logger *logging.ChanneledLogger) *AuthHandlers {
	return &AuthHandlers{
		authService: authService,
		logger:      logger,
	}
}

// Login exchanges a dashboard password for a bearer token
func (h *AuthHandlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password is required"})
		return
	}

	result := h.authService.Authenticate(req.Password)
	if !result.Success {
		c.JSON(http.StatusUnauthorized, gin.H{"error": result.Error})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": result.Token, "role": result.Role})
}

// Status reports the role behind the presented token. Mounted behind the
// admin auth middleware, so an invalid token never reaches this handler.
func (h *AuthHandlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "role": middleware.RoleFromContext(c)})
}
