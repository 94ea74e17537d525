package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env         string   `validate:"required,oneof=development production test"`
	Port        string   `validate:"required,numeric"`
	LogLevel    string   `validate:"omitempty,oneof=debug info warn error"`
	CORSOrigins []string `validate:"min=1,dive,required"`

	// Session store. The DSN must point at an in-memory database: datasets
	// live for the lifetime of the process only.
	DatabaseDSN   string        `validate:"required"`
	SessionSecret string        `validate:"required,min=16"`
	SessionTTL    time.Duration `validate:"gt=0"`

	// Ingestion and presentation
	MaxUploadBytes  int64  `validate:"gt=0"`
	DisplayCurrency string `validate:"required,len=3,uppercase"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if not already loaded
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Env:             getEnv("ENV", "development"),
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", ""),
		CORSOrigins:     splitList(getEnv("CORS_ORIGINS", "*")),
		DatabaseDSN:     getEnv("DATABASE_DSN", "file:assetboard?mode=memory&cache=shared"),
		SessionSecret:   getEnv("SESSION_SECRET", "fallback-session-secret-for-dev-only"),
		DisplayCurrency: strings.ToUpper(getEnv("DISPLAY_CURRENCY", "KRW")),
	}

	ttlStr := getEnv("SESSION_TTL", "12h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		log.Printf("Warning: invalid SESSION_TTL value '%s', falling back to 12h\n", ttlStr)
		ttl = 12 * time.Hour
	}
	config.SessionTTL = ttl

	mbStr := getEnv("MAX_UPLOAD_MB", "10")
	mb, err := strconv.ParseInt(mbStr, 10, 64)
	if err != nil || mb <= 0 {
		log.Printf("Warning: invalid MAX_UPLOAD_MB value '%s', falling back to 10\n", mbStr)
		mb = 10
	}
	config.MaxUploadBytes = mb << 20

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the struct tags of the configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
