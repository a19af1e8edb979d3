package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: .env file not found, using system environment variables")
	}
}

// envDuration reads a duration env var ("1s", "500ms", "24h"), falling back
// to the default on absence or parse failure.
func envDuration(name string, def time.Duration) time.Duration {
	raw := os.Getenv(name)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("⚠️ Warning: invalid %s=%q, using %s", name, raw, def)
		return def
	}
	return d
}

func main() {

	// Load .env variables
	LoadEnv()

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET is missing in .env")
	}
	log.Println("🔐 JWT_SECRET loaded successfully")

	// Seed catalogs and session state
	InitCatalogs()
	InitStores(
		envDuration("AUTH_LATENCY", time.Second),
		envDuration("SESSION_TTL", 24*time.Hour),
	)

	// Start Gin
	r := gin.Default()

	// CORS
	r.Use(CORSMiddleware())

	// Routes
	SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Println("🚀 Server running on http://localhost:" + port)
	r.Run(":" + port)
}
