package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application configuration, read once at startup
type Config struct {
	// MongoURI is the full connection string for the document store
	MongoURI string
	// MongoDatabase is the name of the application database
	MongoDatabase string
	// Token is the shared secret gating writes and private reads
	Token string
	// Port is the HTTP listen port
	Port string
}

// Load builds the configuration from the environment. A .env file is applied
// first when present. MongoURI and Token have no usable defaults, so the
// process refuses to start without them.
func Load() (*Config, error) {
	// Ignore a missing .env; the variables may come from the real environment
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:      os.Getenv("REPROVA_MONGO"),
		MongoDatabase: getEnv("REPROVA_MONGO_DB", "reprova"),
		Token:         os.Getenv("REPROVA_TOKEN"),
		Port:          getEnv("PORT", "8080"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("REPROVA_MONGO must be set")
	}
	if cfg.Token == "" {
		return nil, fmt.Errorf("REPROVA_TOKEN must be set")
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
