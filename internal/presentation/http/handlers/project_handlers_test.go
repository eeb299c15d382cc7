package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/application/services"
	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/logging"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/observability/performance"
	persistence "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/presentation/http/middleware"
)

func testLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	cfg := logging.DefaultLoggerConfig()
	cfg.OutputToConsole = false
	logger, err := logging.NewChanneledLogger(cfg)
	require.NoError(t, err)
	return logger
}

func newTestRouter(t *testing.T) (*gin.Engine, *services.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := testLogger(t)
	tracker := performance.NewTracker()
	repo := persistence.NewProjectRepository(t.TempDir(), store.NewLockManager())
	projectService := services.NewProjectService(repo, logger)
	authService := services.NewAuthService("test-secret", "admin-pass", "editor-pass", time.Hour, logger)

	h := NewProjectHandlers(projectService, logger, tracker)

	r := gin.New()
	r.GET("/api/v1/projects", h.List)
	r.GET("/api/v1/projects/slug/:slug", h.GetBySlug)
	r.GET("/api/v1/projects/:id", h.GetByID)

	admin := r.Group("/api/v1/admin")
	admin.Use(middleware.AdminAuth(authService))
	admin.GET("/projects", h.AdminList)
	admin.POST("/projects", h.AdminCreate)
	admin.PUT("/projects/:id", h.AdminUpdate)
	admin.DELETE("/projects/:id", h.AdminDelete)

	return r, authService
}

func doRequest(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListProjects_Localized(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/projects?lang=ar", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Items []content.ProjectView `json:"items"`
		Count int                   `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "برج الحمراء", resp.Items[0].Title)
	assert.Equal(t, "al-hamra-tower", resp.Items[0].Slug)
}

func TestListProjects_UnsupportedLanguage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/projects?lang=fr", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "fr")
}

func TestGetProjectBySlug(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/projects/slug/al-hamra-tower", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view content.ProjectView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.Equal(t, "Al-Hamra Tower", view.Title)

	w = doRequest(r, http.MethodGet, "/api/v1/projects/slug/no-such-slug", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetProjectByID_InvalidID(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/projects/banana", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes_RequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doRequest(r, http.MethodGet, "/api/v1/admin/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/admin/projects", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminCreateUpdateDelete(t *testing.T) {
	r, auth := newTestRouter(t)
	token := auth.Authenticate("admin-pass").Token
	require.NotEmpty(t, token)

	create := content.Project{
		Title:     content.Localized{En: "Marina Bridge", Ar: "جسر المارينا"},
		Published: true,
	}
	w := doRequest(r, http.MethodPost, "/api/v1/admin/projects", token, create)
	require.Equal(t, http.StatusCreated, w.Code)

	var created content.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, 4, created.ID)
	assert.Equal(t, "marina-bridge", created.GetSlug())

	// Update without a slug keeps the public URL stable.
	update := content.Project{Title: content.Localized{En: "Marina Bridge Phase 2"}}
	w = doRequest(r, http.MethodPut, "/api/v1/admin/projects/4", token, update)
	require.Equal(t, http.StatusOK, w.Code)

	var updated content.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "marina-bridge", updated.GetSlug())
	assert.Equal(t, "Marina Bridge Phase 2", updated.Title.En)

	w = doRequest(r, http.MethodDelete, "/api/v1/admin/projects/4", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/admin/projects/4", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
