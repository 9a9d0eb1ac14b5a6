package config

import (
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/recipebook/internal/flagx"
	"github.com/joho/godotenv"
)

const (
	EnvServerBaseURL     = "RECIPEBOOK_API_URL"
	EnvRequestTimeout    = "RECIPEBOOK_REQUEST_TIMEOUT"
	EnvStorePath         = "RECIPEBOOK_STORE_PATH"
	EnvRequestsPerSecond = "RECIPEBOOK_RPS"
	EnvLogLevel          = "RECIPEBOOK_LOG_LEVEL"
)

// parseEnv overlays Config with RECIPEBOOK_* variables.
//
// When -e/-env names a dotenv file it is loaded first; variables already set
// in the process environment win over the file (godotenv.Load semantics).
// Panics if the named file cannot be read or a value cannot be parsed.
func parseEnv(cfg *Config) {
	if envFile := flagx.EnvFileFlags(); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			panic(err)
		}
	}

	if v, ok := os.LookupEnv(EnvServerBaseURL); ok && v != "" {
		cfg.ServerBaseURL = v
	}
	if v, ok := os.LookupEnv(EnvRequestTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v, ok := os.LookupEnv(EnvStorePath); ok && v != "" {
		cfg.StorePath = v
	}
	if v, ok := os.LookupEnv(EnvRequestsPerSecond); ok && v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			panic(err)
		}
		cfg.RequestsPerSecond = rps
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}
