package config

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	LogLevel         string
	BaserowToken     string
	BaserowTableID   string
	CodaToken        string
	CodaDocID        string
	CodaCuratedTable string
	CodaInboxTable   string
	BrandfetchAPIKey string
	RedisURL         string
}

func Load() *Config {
	// A .env file is a local-dev convenience; absence is fine.
	_ = godotenv.Load()

	config := &Config{
		Port:             getEnvWithDefault("PORT", "8080"),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		BaserowTableID:   getEnvWithDefault("BASEROW_TABLE_ID", "809876"),
		CodaDocID:        getEnvWithDefault("CODA_DOC_ID", "x8nvwL5l1e"),
		CodaCuratedTable: getEnvWithDefault("CODA_CURATED_TABLE", "grid-curated-live"),
		CodaInboxTable:   getEnvWithDefault("CODA_INBOX_TABLE", "grid-inbox"),
	}

	// Store tokens; required for the API binary, validated per-binary.
	config.BaserowToken = getEnvWithDefault("BASEROW_TOKEN", "")
	config.CodaToken = getEnvWithDefault("CODA_API_KEY", "")

	// Optional: without a key the brand-logo endpoint degrades to null.
	config.BrandfetchAPIKey = getEnvWithDefault("BRANDFETCH_API_KEY", "")

	// Optional: without Redis the icon cache lives in memory.
	config.RedisURL = getEnvWithDefault("REDIS_URL", "")

	// Command line flags override environment
	flag.StringVar(&config.Port, "port", config.Port, "Server port")
	flag.StringVar(&config.LogLevel, "log-level", config.LogLevel, "Log level")
	flag.Parse()

	return config
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ValidateForAPI ensures all required fields for the API service are present
func (c *Config) ValidateForAPI() error {
	if c.BaserowToken == "" {
		log.Fatalf("Environment variable BASEROW_TOKEN is required for API service")
	}
	if c.CodaToken == "" {
		log.Fatalf("Environment variable CODA_API_KEY is required for API service")
	}
	return nil
}

// ValidateForUnfurl ensures all required fields for the unfurl CLI are present
func (c *Config) ValidateForUnfurl() error {
	// Unfurl only talks to public endpoints, no store tokens required
	return nil
}
