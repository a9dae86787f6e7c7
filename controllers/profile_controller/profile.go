package profile_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/models"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the profile page: personal details, password change,
// notification settings and account deletion.
type Controller struct {
	API      *services.BackendClient
	Sessions *services.SessionService
	Flashes  *services.FlashService
}

func (ct *Controller) ShowProfile(c *gin.Context) {
	sess := services.SessionFromContext(c)

	c.HTML(http.StatusOK, "profile.html", gin.H{
		"Title":   "My Profile",
		"Session": sess,
		"Flashes": ct.Flashes.Pop(c),
		"User":    sess.User,
	})
}

func (ct *Controller) UpdateProfile(c *gin.Context) {
	sess := services.SessionFromContext(c)

	var update models.ProfileUpdate
	if err := c.ShouldBind(&update); err != nil {
		ct.Flashes.Error(c, "Invalid profile details")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	if err := ct.API.UpdateProfile(c.Request.Context(), sess.Token, update); err != nil {
		log.Printf("[profile] update failed: %v", err)
		ct.Flashes.Error(c, services.BackendMessage(err, "Failed to update profile"))
	} else {
		ct.Flashes.Success(c, "Profile updated successfully")
	}
	c.Redirect(http.StatusFound, "/profile")
}

// ChangePassword checks the confirmation client-side before any network
// call; a mismatch never reaches the backend.
func (ct *Controller) ChangePassword(c *gin.Context) {
	sess := services.SessionFromContext(c)

	current := c.PostForm("currentPassword")
	newPassword := c.PostForm("newPassword")
	confirm := c.PostForm("confirmPassword")

	if newPassword == "" || newPassword != confirm {
		ct.Flashes.Error(c, "New passwords do not match")
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	if err := ct.API.ChangePassword(c.Request.Context(), sess.Token, current, newPassword); err != nil {
		log.Printf("[profile] password change failed: %v", err)
		if services.IsUnauthorized(err) {
			ct.Flashes.Error(c, "Current password is incorrect")
		} else {
			ct.Flashes.Error(c, services.BackendMessage(err, "Failed to change password"))
		}
	} else {
		ct.Flashes.Success(c, "Password changed successfully")
	}
	c.Redirect(http.StatusFound, "/profile")
}

func (ct *Controller) UpdateSettings(c *gin.Context) {
	sess := services.SessionFromContext(c)

	settings := models.Settings{
		EmailNotifications:     c.PostForm("emailNotifications") == "on",
		NewsletterSubscription: c.PostForm("newsletterSubscription") == "on",
	}

	if err := ct.API.UpdateSettings(c.Request.Context(), sess.Token, settings); err != nil {
		log.Printf("[profile] settings update failed: %v", err)
		ct.Flashes.Error(c, services.BackendMessage(err, "Failed to update settings"))
	} else {
		ct.Flashes.Success(c, "Settings updated")
	}
	c.Redirect(http.StatusFound, "/profile")
}

// DeleteAccount removes the account at the backend and tears the session
// down regardless of which state it was in.
func (ct *Controller) DeleteAccount(c *gin.Context) {
	sess := services.SessionFromContext(c)

	if err := ct.API.DeleteAccount(c.Request.Context(), sess.Token, sess.User.ID); err != nil {
		log.Printf("[profile] account deletion failed: %v", err)
		ct.Flashes.Error(c, services.BackendMessage(err, "Failed to delete account"))
		c.Redirect(http.StatusFound, "/profile")
		return
	}

	ct.Sessions.Clear(c)
	c.Redirect(http.StatusFound, "/login")
}
