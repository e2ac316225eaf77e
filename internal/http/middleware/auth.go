package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminIDKey = "admin_id"

// RequireAdmin guards the back-office routes: a valid bearer token with the
// ADMIN role, signed with the configured secret.
func RequireAdmin(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token requerido"})
			return
		}

		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token invalido o expirado"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || claims["rol"] != "ADMIN" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "se requiere rol de administrador"})
			return
		}

		if id, ok := claims["admin_id"].(float64); ok {
			c.Set(adminIDKey, int64(id))
		}
		c.Next()
	}
}

// GetAdminID returns the authenticated admin's id, or 0 outside admin routes.
func GetAdminID(c *gin.Context) int64 {
	if v, ok := c.Get(adminIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}
