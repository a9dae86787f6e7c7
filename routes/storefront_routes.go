package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sajid85/village-mart-customer-frontend/controllers/auth_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/cart_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/checkout_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/dashboard_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/order_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/pages_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/product_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/profile_controller"
	"github.com/sajid85/village-mart-customer-frontend/middleware"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

// Controllers bundles the page controllers for route registration.
type Controllers struct {
	Pages     *pages_controller.Controller
	Auth      *auth_controller.Controller
	Dashboard *dashboard_controller.Controller
	Products  *product_controller.Controller
	Cart      *cart_controller.Controller
	Checkout  *checkout_controller.Controller
	Orders    *order_controller.Controller
	Profile   *profile_controller.Controller
}

// SetupPublicRoutes registers the pages that work without a session. The
// chrome still reflects a signed-in user when one is present.
func SetupPublicRoutes(router *gin.Engine, sessions *services.SessionService, ct Controllers) {
	public := router.Group("/")
	public.Use(middleware.OptionalAuth(sessions))
	{
		public.GET("/", ct.Pages.Home)
		public.GET("/about", ct.Pages.About)
		public.GET("/products", ct.Products.Products)
	}
}

// SetupAuthRoutes registers login and logout. The login form is rate
// limited per IP.
func SetupAuthRoutes(router *gin.Engine, sessions *services.SessionService, ct Controllers) {
	login := router.Group("/login")
	login.Use(middleware.OptionalAuth(sessions))
	login.GET("", ct.Auth.ShowLogin)
	login.POST("", middleware.RateLimiter(10, time.Minute), ct.Auth.Login)

	router.POST("/logout", ct.Auth.Logout)
}

// SetupAccountRoutes registers every page that requires a resolved,
// authenticated session.
func SetupAccountRoutes(router *gin.Engine, sessions *services.SessionService, ct Controllers) {
	account := router.Group("/")
	account.Use(middleware.RequireAuth(sessions))
	{
		account.GET("/dashboard", ct.Dashboard.Dashboard)

		account.GET("/cart", ct.Cart.ShowCart)
		account.POST("/cart/:id/quantity", ct.Cart.UpdateQuantity)
		account.POST("/cart/:id/remove", ct.Cart.RemoveItem)

		account.GET("/checkout", ct.Checkout.ShowCheckout)
		account.POST("/checkout", ct.Checkout.PlaceOrder)

		account.GET("/orders", ct.Orders.Orders)
		account.GET("/orders/:id", ct.Orders.OrderDetails)
		account.GET("/orders/:id/receipt", ct.Orders.DownloadReceipt)

		account.GET("/profile", ct.Profile.ShowProfile)
		account.POST("/profile", ct.Profile.UpdateProfile)
		account.POST("/profile/password", ct.Profile.ChangePassword)
		account.POST("/profile/settings", ct.Profile.UpdateSettings)
		account.POST("/profile/delete", ct.Profile.DeleteAccount)
	}
}
