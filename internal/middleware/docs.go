package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clinicdesk/clinic-api/internal/utils"
)

// ProtectDocs guards the documentation and export routes. The token rides
// as a path segment so the routes stay usable from a plain browser link.
// Only superAdmin accounts get through.
func ProtectDocs(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Param("token")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "failed",
				"message": "Unauthorized: Token is missing in URL",
			})
			return
		}

		claims, err := utils.ValidateToken(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"status":  "failed",
				"message": "Invalid token",
			})
			return
		}

		// The role enum stores superAdmin; older tokens carry SuperAdmin.
		if !strings.EqualFold(claims.Role, "superAdmin") {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"status":  "failed",
				"message": "Access Denied: SuperAdmin only",
			})
			return
		}

		c.Set("userID", claims.ID)
		c.Set("userRole", claims.Role)

		c.Next()
	}
}
