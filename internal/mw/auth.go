package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"aedb-backend/internal/schema"
	"aedb-backend/internal/token"
)

const userKey = "mw.user"

// RequireAuth enforces bearer-token authentication. Requests without a
// valid token are rejected with 401 before any handler runs.
func RequireAuth(codec *token.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		claims, err := codec.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}

		c.Set(userKey, schema.User{Name: claims.Name, Email: claims.Subject})
		c.Next()
	}
}

// CurrentUser returns the authenticated identity set by RequireAuth.
func CurrentUser(c *gin.Context) (schema.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return schema.User{}, false
	}
	u, ok := v.(schema.User)
	return u, ok
}
