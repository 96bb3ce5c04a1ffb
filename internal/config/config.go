package config

import "os"

type Config struct {
	AppEnv         string
	Port           string
	DatabasePath   string
	AllowedOrigins string
}

func Load() Config {
	return Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		DatabasePath:   getEnv("LEDGER_DB_PATH", "ledger.db"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
