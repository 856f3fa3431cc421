package middleware

import (
	"net/http"

	"github.com/charapedia/charapedia-backend/internal/common"
	"github.com/charapedia/charapedia-backend/internal/domain"
	"github.com/gin-gonic/gin"
)

// RequireAdmin checks that the authenticated user has admin level
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		level := GetUserLevel(c)
		if level < domain.AdminLevel {
			common.ErrorResponse(c, http.StatusForbidden, "Administrator privileges required", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
