package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application settings, loaded once at startup.
type Config struct {
	AppPort string

	// CartDBPath is the SQLite file backing the local cart cache.
	CartDBPath string

	// FreeShippingThreshold is the merchandise total in EUR at which
	// shipping becomes free at checkout.
	FreeShippingThreshold float64

	TelegramBotToken    string
	TelegramAdminChatID string
}

// Load reads configuration from .env (if present) and the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		AppPort:               getEnv("APP_PORT", "8080"),
		CartDBPath:            getEnv("CART_DB_PATH", "jungleyourself.db"),
		FreeShippingThreshold: getEnvFloat("FREE_SHIPPING_THRESHOLD", 150),
		TelegramBotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramAdminChatID:   getEnv("TELEGRAM_ADMIN_CHAT_ID", ""),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
