package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	t.Run("loads all fields", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url":     "http://www.example:9000/api",
			"request_timeout":     "3s",
			"store_path":          "other.db",
			"requests_per_second": 4,
			"log_level":           "error",
		})
		withArgs(t, "-config", path)

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://www.example:9000/api", cfg.ServerBaseURL)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "other.db", cfg.StorePath)
		assert.Equal(t, 4.0, cfg.RequestsPerSecond)
		assert.Equal(t, "error", cfg.LogLevel)
	})

	t.Run("absent keys keep previous values", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{"log_level": "debug"})
		withArgs(t, "-c", path)

		cfg := &Config{ServerBaseURL: "http://keep/api", RequestTimeout: 7 * time.Second}
		parseJson(cfg)

		assert.Equal(t, "http://keep/api", cfg.ServerBaseURL)
		assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("no flag means no changes", func(t *testing.T) {
		withArgs(t)

		cfg := &Config{ServerBaseURL: "defaults"}
		parseJson(cfg)

		assert.Equal(t, "defaults", cfg.ServerBaseURL)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		withArgs(t, "-config", bad)

		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}
