package middleware

import (
	"net/http"

	"booktracker/internal/http-api/models"
	"booktracker/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// SessionCookie is the cookie the session token travels in.
const SessionCookie = "session_token"

const currentUserKey = "currentUser"

// SessionAuth resolves the caller's identity from the session cookie and
// stores it in the gin context. Requests without a valid session continue as
// anonymous; route-level gates decide whether that is acceptable.
// Every authenticated request also touches the user's last-seen timestamp,
// best-effort.
func SessionAuth(sessions service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			// stale or revoked cookie: treat as anonymous
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		sessions.Touch(c.Request.Context(), user.ID)

		c.Next()
	}
}

// CurrentUser returns the resolved identity, or nil for anonymous callers.
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(currentUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// RequireAuth rejects anonymous callers with a 401.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin rejects callers without the admin flag with a 403. An
// anonymous caller is simply not an admin; the check never panics on a
// missing identity.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Admin access required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
