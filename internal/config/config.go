package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	CatalogPath  string
	RootGenDir   string
	OutputHeader string
	OutputCC     string
	IDHeaderName string
	WorkerCount  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		CatalogPath:  getEnv("CATALOG_PATH", "strings.en.toml"),
		RootGenDir:   getEnv("ROOT_GEN_DIR", "gen"),
		OutputHeader: getEnv("OUTPUT_HEADER", "ui/localized_strings.h"),
		OutputCC:     getEnv("OUTPUT_CC", "ui/localized_strings.cc"),
		IDHeaderName: getEnv("ID_HEADER_NAME", "frontend_string_ids.h"),
		WorkerCount:  getEnvInt("WORKER_COUNT", 8),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
