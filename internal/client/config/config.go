package config

import "time"

// Config holds runtime settings for the recipebook CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the REST API, including the /api prefix.
//   - RequestTimeout: per-request deadline enforced by the API client.
//   - StorePath: SQLite file holding the persisted credentials.
//   - RequestsPerSecond: client-side pacing of API calls; 0 disables it.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerBaseURL     string
	RequestTimeout    time.Duration
	StorePath         string
	RequestsPerSecond float64
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:5001/api"
	c.RequestTimeout = 10 * time.Second
	c.StorePath = "recipebook.db"
	c.RequestsPerSecond = 0
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (optionally seeded from a .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
