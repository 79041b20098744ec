package middleware

import (
	"net/http"                      // HTTP status codes
	"task_tracker/internal/service" // Identity lookup
	"task_tracker/internal/utils"   // Session token helpers

	"github.com/gin-gonic/gin" // Gin web framework
)

// SessionCookie is the cookie holding the signed session token
const SessionCookie = "task_session"

// ClearSession drops the session cookie
func ClearSession(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
}

// SessionAuth resolves the session cookie to a user on every request.
// The token is parsed and the user row re-read each time, so a deleted
// user becomes anonymous immediately. Anonymous requests are redirected
// to the login page rather than rejected with an error status.
func SessionAuth(auth *service.AuthService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie) // Get session cookie
		if err != nil || token == "" {
			// No session at all
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		claims, err := utils.ParseSessionToken(token, secret) // Parse the signed token
		if err != nil {
			// Invalid or expired token
			ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		user, err := auth.LoadUser(claims.UserID) // Resolve the bound user ID to a record
		if err != nil {
			// The user no longer exists; treat the session as anonymous
			ClearSession(c)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set("userID", user.ID)         // Store userID in context
		c.Set("username", user.Username) // Store username for rendering
		c.Next()                         // Proceed to the next handler
	}
}
