package services

import (
	"strings"
	"time"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/security"
)

// AuthService handles dashboard authentication and JWT operations
type AuthService struct {
	jwtSecret      string
	adminPassword  string
	editorPassword string
	tokenTTL       time.Duration
	logger         *logging.ChanneledLogger
}

// NewAuthService creates a new authentication service
func NewAuthService(jwtSecret, adminPassword, editorPassword string, tokenTTL time.Duration, logger *logging.ChanneledLogger) *AuthService {
	return &AuthService{
		jwtSecret:      jwtSecret,
		adminPassword:  adminPassword,
		editorPassword: editorPassword,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// AuthResult holds authentication result data
type AuthResult struct {
	Token   string `json:"token"`
	Role    string `json:"role"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// Authenticate validates admin or editor credentials and mints a JWT
func (a *AuthService) Authenticate(password string) *AuthResult {
	var role string

	if security.CheckPassword(a.adminPassword, password) {
		role = "admin"
	} else if security.CheckPassword(a.editorPassword, password) {
		role = "editor"
	}

	if role == "" {
		a.logger.LogAuthOperation("login", false, nil)
		return &AuthResult{Success: false, Error: "Invalid credentials"}
	}

	token, err := security.GenerateAdminToken(role, a.jwtSecret, a.tokenTTL)
	if err != nil {
		a.logger.Auth().Error("Failed to sign token", "error", err.Error())
		return &AuthResult{Success: false, Error: "Token generation failed"}
	}

	a.logger.LogAuthOperation("login", true, map[string]any{"role": role})
	return &AuthResult{Token: token, Role: role, Success: true}
}

// ValidateToken checks an Authorization header value and returns the role,
// or "" when the token is missing or invalid.
func (a *AuthService) ValidateToken(authHeader string) string {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return ""
	}

	claims, err := security.ValidateJWT(tokenString, a.jwtSecret)
	if err != nil {
		return ""
	}
	return security.RoleFromClaims(claims)
}
