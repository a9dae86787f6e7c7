package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the login page and handles login/logout.
type Controller struct {
	API      *services.BackendClient
	Sessions *services.SessionService
	Flashes  *services.FlashService
}

// ShowLogin renders the login form. An already-authenticated visitor goes
// straight to the dashboard.
func (ct *Controller) ShowLogin(c *gin.Context) {
	if sess := services.SessionFromContext(c); sess.LoggedIn() {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Sign in",
		"Flashes": ct.Flashes.Pop(c),
	})
}

// Login exchanges the submitted credentials for a token at the backend and
// establishes the session.
func (ct *Controller) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		ct.Flashes.Error(c, "Email and password are required")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	token, err := ct.API.Login(c.Request.Context(), email, password)
	if err != nil {
		log.Printf("[auth.login] login failed for %s: %v", email, err)
		if services.IsUnauthorized(err) {
			ct.Flashes.Error(c, "Invalid email or password")
		} else {
			ct.Flashes.Error(c, "Login failed. Please try again.")
		}
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if _, err := ct.Sessions.Establish(c, token); err != nil {
		log.Printf("[auth.login] session establish failed: %v", err)
		ct.Flashes.Error(c, "Login failed. Please try again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ct.Flashes.Success(c, "Login successful!")
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the stored token and returns to the login page.
func (ct *Controller) Logout(c *gin.Context) {
	ct.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
