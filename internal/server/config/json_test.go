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
	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":      "0.0.0.0:8080",
		"base_path":               "/v1",
		"store":                   "mongo",
		"database_dsn":            "postgres://db",
		"mongo_uri":               "mongodb://mongo",
		"mongo_database":          "school",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "45m",
		"password_hasher":         "argon2",
		"bcrypt_cost":             12,
		"log_level":               "debug",
		"allowed_origin":          "https://courses.example",
		"auth_rate_limit":         "5-S",
		"metrics_enabled":         false,
		"shutdown_timeout":        "3s",
	})

	t.Run("loads from json", func(t *testing.T) {
		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJson(&cfg, []string{"-config", path}))

		assert.Equal(t, "0.0.0.0:8080", cfg.EndpointAddrHTTP)
		assert.Equal(t, "/v1", cfg.BasePath)
		assert.Equal(t, StoreMongo, cfg.StoreKind)
		assert.Equal(t, "postgres://db", cfg.DatabaseDSN)
		assert.Equal(t, "mongodb://mongo", cfg.MongoURI)
		assert.Equal(t, "school", cfg.MongoDatabase)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 45*time.Minute, cfg.TokenValidityDuration)
		assert.Equal(t, HasherArgon2, cfg.PasswordHasher)
		assert.Equal(t, 12, cfg.BcryptCost)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "https://courses.example", cfg.AllowedOrigin)
		assert.Equal(t, "5-S", cfg.AuthRateLimit)
		assert.False(t, cfg.MetricsEnabled)
		assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		var cfg Config
		cfg.LoadDefaults()
		want := cfg
		require.NoError(t, parseJson(&cfg, []string{"-a", ":1"}))
		assert.Equal(t, want, cfg)
	})

	t.Run("partial file keeps other fields", func(t *testing.T) {
		partial := writeTempJSON(t, map[string]any{"log_level": "error"})
		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJson(&cfg, []string{"-c", partial}))
		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "secretKey", cfg.SecretKey)
		assert.True(t, cfg.MetricsEnabled)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		var cfg Config
		assert.Error(t, parseJson(&cfg, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		var cfg Config
		assert.Error(t, parseJson(&cfg, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}
