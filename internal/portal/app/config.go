package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Issuer    string // Issuer claim for session tokens (default: investor-portal)
	JWTSecret string // Required: HS256 signing secret for session tokens

	DatabaseFile string // Path to SQLite database file (default: ./portal.db)

	// Object store for uploaded PDFs (S3 or any compatible endpoint).
	S3Region       string
	S3Endpoint     string // Optional: set for minio / self-hosted stores
	S3AccessKey    string
	S3SecretKey    string
	S3Bucket       string // Default: portal-documents
	S3UsePathStyle bool   // Default: true (minio-friendly)

	// SMTP relay for login codes and document notifications.
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
	AppName      string // Shows up in email subjects and TOTP issuer

	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Expired-challenge cleanup interval (default: 1h)
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:    getEnvOrDefault("PORTAL_ISSUER", "investor-portal"),
		JWTSecret: os.Getenv("PORTAL_JWT_SECRET"),

		DatabaseFile: getEnvOrDefault("PORTAL_DATABASE_FILE", "portal.db"),

		S3Region:       getEnvOrDefault("PORTAL_S3_REGION", "us-east-1"),
		S3Endpoint:     os.Getenv("PORTAL_S3_ENDPOINT"),
		S3AccessKey:    os.Getenv("PORTAL_S3_ACCESS_KEY"),
		S3SecretKey:    os.Getenv("PORTAL_S3_SECRET_KEY"),
		S3Bucket:       getEnvOrDefault("PORTAL_S3_BUCKET", "portal-documents"),
		S3UsePathStyle: getEnvOrDefault("PORTAL_S3_PATH_STYLE", "true") == "true",

		SMTPHost:     os.Getenv("PORTAL_SMTP_HOST"),
		SMTPPort:     getEnvIntOrDefault("PORTAL_SMTP_PORT", 587),
		SMTPUser:     os.Getenv("PORTAL_SMTP_USER"),
		SMTPPassword: os.Getenv("PORTAL_SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("PORTAL_SMTP_FROM"),
		AppName:      getEnvOrDefault("PORTAL_APP_NAME", "Investor Portal"),

		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	return cfg
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
