package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RISKADVISOR_API_URL"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("RISKADVISOR_TIMEOUT"); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv("RISKADVISOR_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
}
