package pages_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controller serves the static chrome pages.
type Controller struct {
	Flashes *services.FlashService
}

// Home renders the landing page with the hero section and promotional
// banner. The call to action points at the dashboard for signed-in
// visitors and at the login page otherwise.
func (ct *Controller) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"Title":   "Village Mart — Fresh groceries, delivered",
		"Session": services.SessionFromContext(c),
		"Flashes": ct.Flashes.Pop(c),
	})
}

func (ct *Controller) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title":   "About Village Mart",
		"Session": services.SessionFromContext(c),
		"Flashes": ct.Flashes.Pop(c),
	})
}
