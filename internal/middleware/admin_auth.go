package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/origem/origem-api/pkg/jwt"
	"github.com/origem/origem-api/pkg/logger"
	"go.uber.org/zap"
)

// AdminClaimsContextKey stores the validated operator claims in the gin context
const AdminClaimsContextKey = "admin_claims"

var ErrAdminClaimsNotFound = errors.New("admin claims not found in context")

// AdminAuthMiddleware accepts "Authorization: Bearer <jwt>" tokens carrying the admin role
func AdminAuthMiddleware(tokenManager *jwt.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			_ = c.Error(fmt.Errorf("missing bearer token")) //nolint:errcheck
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := tokenManager.ValidateToken(token)
		if err != nil {
			_ = c.Error(fmt.Errorf("invalid admin token: %w", err)) //nolint:errcheck
			if errors.Is(err, jwt.ErrExpiredToken) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			}
			c.Abort()
			return
		}

		if claims.Role != jwt.RoleAdmin {
			logger.Warn("Token without admin role",
				zap.String("path", c.Request.URL.Path),
				zap.String("subject", claims.Subject),
				zap.String("client_ip", c.ClientIP()),
			)
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			c.Abort()
			return
		}

		c.Set(AdminClaimsContextKey, claims)
		c.Next()
	}
}

// GetAdminClaims returns the claims stored by AdminAuthMiddleware
func GetAdminClaims(c *gin.Context) (*jwt.AdminClaims, error) {
	value, exists := c.Get(AdminClaimsContextKey)
	if !exists {
		return nil, ErrAdminClaimsNotFound
	}
	claims, ok := value.(*jwt.AdminClaims)
	if !ok {
		return nil, ErrAdminClaimsNotFound
	}
	return claims, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(prefix):])
	return token, token != ""
}
