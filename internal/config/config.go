package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	API struct {
		Port string
	}
	Auth struct {
		Password string
	}
	SMS struct {
		AccountSID         string
		AuthToken          string
		FromNumber         string
		DefaultCountryCode string
	}
	Logging struct {
		Dir   string
		Level string
	}
}

// Load reads environment variables, applies defaults, and returns a Config.
// Twilio credentials are not required here: their absence must surface as a
// delivery failure on send, not as a startup failure.
func Load() (Config, error) {
	// Load .env if present
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config

	// API settings
	cfg.API.Port = os.Getenv("API_PORT")

	// Shared secret gating the endpoint
	cfg.Auth.Password = os.Getenv("SMS_PASSWORD")

	// Twilio settings
	cfg.SMS.AccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.SMS.AuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.SMS.FromNumber = os.Getenv("TWILIO_FROM_NUMBER")
	cfg.SMS.DefaultCountryCode = os.Getenv("DEFAULT_COUNTRY_CODE")

	// Logging settings
	cfg.Logging.Dir = os.Getenv("LOG_DIR")
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")

	// Validate required settings
	missing := []string{}
	if cfg.Auth.Password == "" {
		missing = append(missing, "SMS_PASSWORD")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required configurations: %v", missing)
	}

	// Apply defaults
	if cfg.API.Port == "" {
		cfg.API.Port = ":8080"
	}
	if cfg.SMS.DefaultCountryCode == "" {
		cfg.SMS.DefaultCountryCode = "+353"
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = "logs"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	return cfg, nil
}
