package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server Settings
	AppPort     string
	HOST        string
	DatabaseURL string

	// JWT Settings
	JWTSecret     string
	JWTExpiration string
}

func LoadConfig() *Config {
	// Load configuration from the environment, with .env as a convenience
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		AppPort:     os.Getenv("PORT"),
		HOST:        os.Getenv("HOST"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		JWTSecret:     os.Getenv("JWT_SECRET"),
		JWTExpiration: os.Getenv("JWT_EXPIRES_IN"),
	}

	if config.AppPort == "" {
		config.AppPort = "5000"
	}
	if config.JWTSecret == "" {
		log.Println("JWT_SECRET is not set; tokens will be signed with an empty secret")
	}

	return config
}

// TokenTTL parses JWT_EXPIRES_IN as a Go duration, defaulting to 24h.
func (c *Config) TokenTTL() time.Duration {
	ttl, err := time.ParseDuration(c.JWTExpiration)
	if err != nil || ttl <= 0 {
		return 24 * time.Hour
	}
	return ttl
}
