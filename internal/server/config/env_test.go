package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("MONGODB_URI", "mongodb://mongo:27017")
	t.Setenv("COURSEHUB_TOKEN_TTL", "2h")
	t.Setenv("COURSEHUB_METRICS", "false")
	t.Setenv("COURSEHUB_BCRYPT_COST", "12")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, "mongodb://mongo:27017", c.MongoURI)
	assert.Equal(t, 2*time.Hour, c.TokenValidityDuration)
	assert.False(t, c.MetricsEnabled)
	assert.Equal(t, 12, c.BcryptCost)
	assert.Equal(t, ":3001", c.EndpointAddrHTTP, "unset vars keep defaults")
}

func TestParseEnv_BackendPort(t *testing.T) {
	t.Setenv("BACKEND_PORT", "4000")

	var c Config
	c.LoadDefaults()
	require.NoError(t, parseEnv(&c))

	assert.Equal(t, ":4000", c.EndpointAddrHTTP)
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("COURSEHUB_TOKEN_TTL", "forever")

	var c Config
	assert.Error(t, parseEnv(&c))
}
