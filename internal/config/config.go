package config

import (
	"os"

	customersvc "mockcrm-service/internal/service/customer"
)

type AppConfig struct {
	// Server
	HTTPAddr string
	GinMode  string

	// Record store
	SeedPath string
	Defaults customersvc.DefaultStrategy
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),
		GinMode:  getEnv("GIN_MODE", "release"),

		SeedPath: getEnv("SEED_PATH", "data/customers.json"),
		Defaults: customersvc.ParseStrategy(getEnv("DEFAULT_STRATEGY", "falsy")),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
