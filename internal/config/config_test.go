package config_test

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketvault/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.EnvDevelopment, cfg.App.Env)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "*", cfg.Server.CORSAllowedOrigin)
	assert.Equal(t, config.DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 5*time.Second, cfg.Storage.Timeout)
	assert.True(t, cfg.Storage.Seed)
	assert.Equal(t, "ticketVaultEvents", cfg.Redis.Key)
	assert.Equal(t, "ticketvault", cfg.Firestore.DatabaseID)
	assert.Equal(t, "events", cfg.MongoDB.Collection)
	assert.Equal(t, config.ProviderJWT, cfg.Auth.Provider)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("STORAGE_TIMEOUT", "250ms")
	t.Setenv("STORAGE_SEED", "false")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SERVER_CORS_ALLOWED_ORIGIN", "https://ticketvault.app")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 250*time.Millisecond, cfg.Storage.Timeout)
	assert.False(t, cfg.Storage.Seed)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, "https://ticketvault.app", cfg.Server.CORSAllowedOrigin)
}

func TestLoad_PortFallback(t *testing.T) {
	t.Setenv("PORT", "8080")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)

	t.Setenv("SERVER_PORT", "9090")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
}

func TestLoadWithFlags_OverridesEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "redis")

	fs := pflag.NewFlagSet("server", pflag.ContinueOnError)
	fs.String("host", "", "")
	fs.Int("port", 5000, "")
	fs.String("storage", "memory", "")
	require.NoError(t, fs.Parse([]string{"--port=7000", "--host=127.0.0.1"}))

	cfg, err := config.LoadWithFlags(fs)
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver, "unset flag must not shadow the environment")
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr())
}

func TestLoad_ProductionWithSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("AUTH_JWT_SECRET", "s3cr3t")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"UnknownDriver", map[string]string{"STORAGE_DRIVER": "postgres"}},
		{"UnknownProvider", map[string]string{"AUTH_PROVIDER": "saml"}},
		{"ZeroTimeout", map[string]string{"STORAGE_TIMEOUT": "0s"}},
		{"BadPort", map[string]string{"SERVER_PORT": "70000"}},
		{"DefaultSecretInProduction", map[string]string{"APP_ENV": "production"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
