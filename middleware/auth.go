package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-desk/models"
	"hotel-desk/services"
	"hotel-desk/utils"
)

// UserKey is the gin context key under which the session user is stored.
const UserKey = "sessionUser"

// RequireSession resolves the bearer token into a session user and aborts
// with 401 when there is none.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.JSONError(c, http.StatusUnauthorized, "missing session token")
			c.Abort()
			return
		}
		user, ok := auth.Lookup(token)
		if !ok {
			utils.JSONError(c, http.StatusUnauthorized, "invalid session token")
			c.Abort()
			return
		}
		c.Set(UserKey, user)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the session user is the admin. It must
// run after RequireSession.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := SessionUser(c)
		if !ok || !user.IsAdmin {
			utils.JSONError(c, http.StatusForbidden, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUser returns the user RequireSession stored on the context.
func SessionUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(UserKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}
