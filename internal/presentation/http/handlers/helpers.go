// Package handlers provides HTTP handlers for the content API
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	content "github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/domain/entities/content"
	"github.com/abdelrahmanmoahmed59-afk/act-website--sub000/internal/infrastructure/persistence/store"
)

// requestLang resolves the ?lang query parameter. A missing parameter falls
// back to English; an unknown value writes a 400 and returns ok=false.
func requestLang(c *gin.Context) (content.Lang, bool) {
	lang, ok := content.ParseLang(c.Query("lang"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported language: " + c.Query("lang")})
		return "", false
	}
	return lang, true
}

// pathID parses the :id path parameter, writing a 400 on garbage input.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}

// queryLimit parses the optional ?limit parameter; 0 means unlimited.
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// queryFlag reports whether a boolean query parameter is set truthy.
func queryFlag(c *gin.Context, name string) bool {
	v, err := strconv.ParseBool(c.Query(name))
	return err == nil && v
}

// writeError maps store errors onto HTTP statuses. Slug conflicts surface as
// 409 so the dashboard can prompt for a different slug.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrSlugConflict) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func writeNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
}
