// Package config provides centralized default values for the ACT website server
package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

var envLoaded sync.Once

func loadEnvFile() {
	envLoaded.Do(func() {
		if err := godotenv.Load(); err == nil {
			log.Println("Loading configuration overrides from .env file...")
		}
	})
}

func getEnvInt(key string, defaultValue int) int {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := strconv.Atoi(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%d (default: %d)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

func getEnvString(key string, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		if val != defaultValue {
			log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
		}
		return val
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if valStr := os.Getenv(key); valStr != "" {
		if val, err := time.ParseDuration(valStr); err == nil {
			if val != defaultValue {
				log.Printf("Config override: %s=%s (default: %s)", key, val, defaultValue)
			}
			return val
		}
	}
	return defaultValue
}

var (
	// Server Configuration
	Port               string
	ServerReadTimeout  time.Duration
	ServerWriteTimeout time.Duration
	ServerIdleTimeout  time.Duration

	// Storage Configuration
	ContentDir string
	UploadDir  string

	// Auth Configuration
	JWTSecret      string
	AdminPassword  string
	EditorPassword string
	TokenTTL       time.Duration

	// Upload Configuration
	MaxUploadBytes int64
	ImageMaxWidth  int
	WebPQuality    int

	// Contact Configuration
	ResendAPIKey   string
	ContactToEmail string
	EmailFrom      string
	EmailFromName  string
)

func init() {
	loadEnvFile()

	// Server Configuration
	Port = getEnvString("PORT", "8080")
	ServerReadTimeout = getEnvDuration("SERVER_READ_TIMEOUT", 15*time.Second)
	ServerWriteTimeout = getEnvDuration("SERVER_WRITE_TIMEOUT", 15*time.Second)
	ServerIdleTimeout = getEnvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second)

	// Storage Configuration
	ContentDir = getEnvString("CONTENT_DIR", "content")
	UploadDir = getEnvString("UPLOAD_DIR", "uploads")

	// Auth Configuration
	JWTSecret = getEnvString("JWT_SECRET", "")
	AdminPassword = getEnvString("ADMIN_PASSWORD", "")
	EditorPassword = getEnvString("EDITOR_PASSWORD", "")
	TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)

	// Upload Configuration
	MaxUploadBytes = int64(getEnvInt("MAX_UPLOAD_MB", 20)) * 1024 * 1024
	ImageMaxWidth = getEnvInt("IMAGE_MAX_WIDTH", 1920)
	WebPQuality = getEnvInt("WEBP_QUALITY", 80)

	// Contact Configuration
	ResendAPIKey = getEnvString("RESEND_API_KEY", "")
	ContactToEmail = getEnvString("CONTACT_TO_EMAIL", "")
	EmailFrom = getEnvString("EMAIL_FROM", "noreply@act.com.kw")
	EmailFromName = getEnvString("EMAIL_FROM_NAME", "ACT Website")
}
