package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sajid85/village-mart-customer-frontend/config"
	"github.com/sajid85/village-mart-customer-frontend/controllers/auth_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/cart_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/checkout_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/dashboard_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/order_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/pages_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/product_controller"
	"github.com/sajid85/village-mart-customer-frontend/controllers/profile_controller"
	"github.com/sajid85/village-mart-customer-frontend/routes"
	"github.com/sajid85/village-mart-customer-frontend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Configuration and Redis connection
	config.Load()
	config.ConnectRedis()

	// Backend API client and services
	api := services.NewBackendClient(config.App.BackendURL)
	sessions := services.NewSessionService(api)
	flashes := services.NewFlashService(config.RedisClient)
	receipts := services.NewReceiptService(config.RedisClient)
	log.Println("✅ Backend API client initialized:", config.App.BackendURL)

	controllers := routes.Controllers{
		Pages:     &pages_controller.Controller{Flashes: flashes},
		Auth:      &auth_controller.Controller{API: api, Sessions: sessions, Flashes: flashes},
		Dashboard: &dashboard_controller.Controller{API: api, Flashes: flashes},
		Products:  &product_controller.Controller{API: api, Flashes: flashes},
		Cart:      &cart_controller.Controller{API: api, Flashes: flashes},
		Checkout:  &checkout_controller.Controller{API: api, Flashes: flashes, Receipts: receipts},
		Orders:    &order_controller.Controller{API: api, Flashes: flashes, Receipts: receipts},
		Profile:   &profile_controller.Controller{API: api, Sessions: sessions, Flashes: flashes},
	}

	if config.App.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	corsCfg := cors.Config{
		AllowOrigins:     config.App.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // Expose these headers for downloads
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupPublicRoutes(router, sessions, controllers)
	routes.SetupAuthRoutes(router, sessions, controllers)
	routes.SetupAccountRoutes(router, sessions, controllers)
	log.Println("✅ Storefront routes registered")

	fmt.Println("🚀 Village Mart storefront is running on http://localhost:" + config.App.Port)
	if err := router.Run(":" + config.App.Port); err != nil {
		log.Fatalf("❌ Server exited: %v", err)
	}
}
