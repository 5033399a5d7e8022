package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// ServerURL is the base URL of the shop server
	ServerURL string

	// Session Configuration
	Session SessionConfig

	// Logging Configuration
	Logging LoggingConfig
}

// SessionConfig holds session persistence configuration
type SessionConfig struct {
	// Backend selects where the session record lives: file or keyring
	Backend string
	// StateFile overrides the file store location (file backend only)
	StateFile string
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // json, console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	serverURL := os.Getenv("SHOPD_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8000"
	}

	backend := os.Getenv("SHOPD_SESSION_STORE")
	if backend == "" {
		backend = "file"
	}

	// Logging defaults suitable for an interactive CLI
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	logFormat := os.Getenv("LOG_FORMAT")
	if logFormat == "" {
		logFormat = "console"
	}

	return &Config{
		ServerURL: serverURL,
		Session: SessionConfig{
			Backend:   backend,
			StateFile: os.Getenv("SHOPD_STATE_FILE"),
		},
		Logging: LoggingConfig{
			Level:  logLevel,
			Format: logFormat,
		},
	}, nil
}
