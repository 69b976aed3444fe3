package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/coursehub/internal/flagx"
	"github.com/dmitrijs2005/coursehub/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Durations use
// timex.Duration so "1h" and integer nanoseconds both work.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	BasePath              string         `json:"base_path"`
	StoreKind             string         `json:"store"`
	DatabaseDSN           string         `json:"database_dsn"`
	MongoURI              string         `json:"mongo_uri"`
	MongoDatabase         string         `json:"mongo_database"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	PasswordHasher        string         `json:"password_hasher"`
	BcryptCost            int            `json:"bcrypt_cost"`
	LogLevel              string         `json:"log_level"`
	AllowedOrigin         string         `json:"allowed_origin"`
	AuthRateLimit         string         `json:"auth_rate_limit"`
	MetricsEnabled        *bool          `json:"metrics_enabled"`
	ShutdownTimeout       timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config (if any) and copies every
// field it sets onto config. Missing fields keep their current value.
func parseJson(config *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.BasePath, c.BasePath)
	setString(&config.StoreKind, c.StoreKind)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoURI, c.MongoURI)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.PasswordHasher, c.PasswordHasher)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AllowedOrigin, c.AllowedOrigin)
	setString(&config.AuthRateLimit, c.AuthRateLimit)

	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.MetricsEnabled != nil {
		config.MetricsEnabled = *c.MetricsEnabled
	}
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
