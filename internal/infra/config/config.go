package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const defaultLastOutputFile = "last_output.txt"

// AppConfig holds all configuration for the application.
type AppConfig struct {
	TelegramToken  string
	TelegramChatID int64  // recipient of the tariff notifications
	LastOutputFile string // single-slot store for the last sent message
	Timezone       string // optional IANA zone; empty means system local
	LogLevel       string
	Environment    string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.LastOutputFile = os.Getenv("LAST_OUTPUT_FILE")
	if cfg.LastOutputFile == "" {
		cfg.LastOutputFile = defaultLastOutputFile
	}

	// The tariff schedule is defined in Spanish wall-clock time; under cron
	// or a container the system zone may be UTC, so it can be pinned here.
	cfg.Timezone = os.Getenv("TIMEZONE")

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	return cfg, nil
}
