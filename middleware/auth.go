package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/services"
)

// RequireAuth resolves the session for the request and redirects anonymous
// visitors to the login page. Pages behind it read the session from the
// request context instead of touching the token themselves.
func RequireAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Resolve(c)
		if !sess.LoggedIn() {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}

// OptionalAuth resolves the session without forcing a login, for public
// pages whose chrome changes when a user is signed in.
func OptionalAuth(sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("session", sessions.Resolve(c))
		c.Next()
	}
}
