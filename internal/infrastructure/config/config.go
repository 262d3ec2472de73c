package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// MongoDB
	MongoURI string
	MongoDB  string

	// PostgreSQL
	PostgresURI string

	// Extraction providers
	DefaultProvider string
	GeminiAPIKey    string
	OpenAIAPIKey    string
	GeminiModel     string
	OpenAIModel     string

	// Mail relay
	ResendAPIKey string
	MailFromName string
	MailFromAddr string

	// Config-blob sealing
	SealSecret string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 120)) * time.Second,
		CORSOrigins:  strings.Split(getEnv("CORS_ORIGINS", "*"), ","),

		MongoURI: getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "flightcast"),

		PostgresURI: getEnv("POSTGRES_DSN", "postgres://localhost:5432/flightcast"),

		DefaultProvider: getEnv("DEFAULT_PROVIDER", "gemini"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
		OpenAIModel:     getEnv("OPENAI_MODEL", "gpt-4o"),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		MailFromName: getEnv("MAIL_FROM_NAME", "Clube do Voo Viagens"),
		MailFromAddr: getEnv("MAIL_FROM_ADDR", "reservas@clubedovooviagens.com.br"),

		SealSecret: getEnv("CONFIG_SEAL_SECRET", "flightcast-embedded-seal-key"),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
