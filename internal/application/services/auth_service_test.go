package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToConsole = false
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func newTestAuthService(t *testing.T) *AuthService {
	t.Helper()
	return NewAuthService("test-secret", "admin-pass", "editor-pass", time.Hour, testLogger(t))
}

func TestAuthenticate_AdminAndEditor(t *testing.T) {
	auth := newTestAuthService(t)

	result := auth.Authenticate("admin-pass")
	require.True(t, result.Success)
	assert.Equal(t, "admin", result.Role)
	assert.NotEmpty(t, result.Token)

	result = auth.Authenticate("editor-pass")
	require.True(t, result.Success)
	assert.Equal(t, "editor", result.Role)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	auth := newTestAuthService(t)

	result := auth.Authenticate("nope")
	assert.False(t, result.Success)
	assert.Empty(t, result.Token)
	assert.NotEmpty(t, result.Error)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	auth := newTestAuthService(t)

	result := auth.Authenticate("admin-pass")
	require.True(t, result.Success)

	role := auth.ValidateToken("Bearer " + result.Token)
	assert.Equal(t, "admin", role)
}

func TestValidateToken_Rejections(t *testing.T) {
	auth := newTestAuthService(t)

	assert.Empty(t, auth.ValidateToken(""))
	assert.Empty(t, auth.ValidateToken("Bearer "))
	assert.Empty(t, auth.ValidateToken("Bearer not-a-jwt"))
	assert.Empty(t, auth.ValidateToken("Token something"))

	// Token signed with a different secret must not validate.
	other := NewAuthService("other-secret", "admin-pass", "editor-pass", time.Hour, testLogger(t))
	foreign := other.Authenticate("admin-pass")
	require.True(t, foreign.Success)
	assert.Empty(t, auth.ValidateToken("Bearer "+foreign.Token))
}
