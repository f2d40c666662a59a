package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"news-cms/cmd/api/auth"
	"news-cms/cmd/api/services"
	"news-cms/cmd/internal/logger"
)

// Context keys set by AdminAuth for downstream handlers.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// AdminAuth verifies the bearer JWT and requires the admin role.
func AdminAuth(authSvc *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		claims, err := authSvc.ParseAccessToken(token)
		if err != nil {
			logger.Log.Infof("token parse error: %v", err)
			auth.AbortWithUnauthorized(c, err)
			return
		}

		if claims.Role != auth.RoleAdmin {
			logger.Log.Infof("access denied: user %s has role %s, want admin", claims.Username, claims.Role)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"success": false, "error": "forbidden_insufficient_permissions"})
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUsername, claims.Username)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}
