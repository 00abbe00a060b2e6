package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// JWT Settings
	JWTSecret string

	// Prometheus endpoint listens on its own port
	MetricsPort string

	// Drop, remigrate and reseed the database on startup
	SeedDB bool
}

func LoadConfig() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	config := &Config{
		AppPort:     getEnv("PORT", "3000"),
		HOST:        getEnv("HOST", "0.0.0.0"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		MetricsPort: getEnv("METRICS_PORT", "9090"),
		SeedDB:      os.Getenv("SEED_DB") == "true",
	}

	return config
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
