package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/student-admin-panel/internal/session"
)

// RequireSession gates authenticated views: without a token every path
// redirects to the login view.
func RequireSession(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Token(c) == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectAuthenticated sends sessions that already hold a token away from
// the login view, straight to the dashboard.
func RedirectAuthenticated(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions.Token(c) != "" {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
