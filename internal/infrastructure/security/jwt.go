// Package security provides JWT token utilities and credential checks
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// ValidateJWT validates a JWT token and returns the claims
func ValidateJWT(tokenString, jwtSecret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// GenerateAdminToken mints an HS256 token carrying the dashboard role
func GenerateAdminToken(role, jwtSecret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"role": role,
		"type": "admin_auth",
		"iat":  time.Now().UTC().Unix(),
		"exp":  time.Now().UTC().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecret))
}

// RoleFromClaims extracts the dashboard role from validated claims
func RoleFromClaims(claims jwt.MapClaims) string {
	if claims["type"] != "admin_auth" {
		return ""
	}
	if role, ok := claims["role"].(string); ok {
		return role
	}
	return ""
}

// CheckPassword compares a supplied password against the configured one,
// accepting either a bcrypt hash or a plaintext value for local setups.
func CheckPassword(configured, supplied string) bool {
	if configured == "" || supplied == "" {
		return false
	}
	if err := bcrypt.CompareHashAndPassword([]byte(configured), []byte(supplied)); err == nil {
		return true
	}
	return configured == supplied
}
