package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/yourusername/shahrazad-assistant/internal/domain/constants"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken     string
	AdminPassword     string
	AllowEmptySecrets bool

	PostgresDSN string
	SeedFile    string

	LowStockThreshold float64
	MaxContextSize    int
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:     os.Getenv("TELEGRAM_BOT_TOKEN"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AllowEmptySecrets: getEnvBool("ALLOW_EMPTY_SECRETS", false),
		PostgresDSN:       postgresDSNFromEnv(),
		SeedFile:          os.Getenv("SEED_FILE"),
		LowStockThreshold: getEnvFloat("LOW_STOCK_THRESHOLD", constants.DefaultLowStockThreshold),
		MaxContextSize:    constants.DefaultMaxContextSize,
	}

	if config.LowStockThreshold <= 0 {
		return nil, fmt.Errorf("LOW_STOCK_THRESHOLD musbat bo'lishi kerak")
	}

	// Validatsiya
	if !config.AllowEmptySecrets {
		if config.TelegramToken == "" {
			return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN environment variable bo'sh")
		}
		if config.AdminPassword == "" {
			return nil, fmt.Errorf("ADMIN_PASSWORD environment variable bo'sh")
		}
	}

	return config, nil
}

// postgresDSNFromEnv to'liq POSTGRES_DSN yoki alohida DB_* qismlardan
// DSN yig'adi. Ikkalasi ham bo'lmasa bo'sh satr (memory store).
func postgresDSNFromEnv() string {
	if dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN")); dsn != "" {
		return dsn
	}
	host := strings.TrimSpace(os.Getenv("DB_HOST"))
	if host == "" {
		return ""
	}
	port := strings.TrimSpace(os.Getenv("DB_PORT"))
	if port == "" {
		port = "5432"
	}
	sslmode := strings.TrimSpace(os.Getenv("DB_SSLMODE"))
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"), os.Getenv("DB_NAME"), sslmode)
}

func getEnvBool(key string, defaultValue bool) bool {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return defaultValue
	}
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}
	return parsed
}
