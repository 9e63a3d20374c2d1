// Package config loads simulation settings from the environment, with an
// optional .env file for local runs.
package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath   string
	Seed     uint64
	Players  int
	LogLevel string
}

// Load reads the environment, consulting a .env file first if one exists.
func Load() *Config {
	// Best effort: absence of a .env file is the normal case.
	_ = godotenv.Load()

	return &Config{
		DBPath:   getEnv("SIM_DB", "ratingsim.db"),
		Seed:     getEnvUint("SIM_SEED", 1),
		Players:  getEnvInt("SIM_PLAYERS", 20000),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvUint(key string, fallback uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
