package middlewares

import (
	"net/http"
	"strings"

	"github.com/ChPurna2003/CravingConnect/configs"
	"github.com/ChPurna2003/CravingConnect/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts the JWT either as a Bearer header (API clients) or as
// the "token" cookie set by /login (browser flows).
func AuthMiddleware(cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := ""
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenStr = strings.TrimPrefix(h, "Bearer ")
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		utils.SetIdentity(c, claims.Identity())
		c.Next()
	}
}
