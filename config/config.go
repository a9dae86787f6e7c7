package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

// AppConfig is the storefront's environment-driven configuration.
type AppConfig struct {
	Port           string   `envconfig:"PORT" default:"3000"`
	BackendURL     string   `envconfig:"BACKEND_API_URL" default:"http://localhost:3005"`
	RedisURL       string   `envconfig:"REDIS_URL" default:"redis://localhost:6379"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:3001"`
	AppEnv         string   `envconfig:"APP_ENV" default:"development"`
}

var App AppConfig

// Load populates App from the environment. godotenv is loaded by main's
// init before this runs.
func Load() {
	if err := envconfig.Process("", &App); err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}
	log.Printf("✅ Configuration loaded (env: %s, backend: %s)", App.AppEnv, App.BackendURL)
}
