package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Check server defaults
		assert.Equal(t, "0.0.0.0", cfg.Server.Host)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "debug", cfg.Server.Mode)
		assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)

		// Check database defaults
		assert.Equal(t, "memory", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "ideaarena", cfg.Database.User)
		assert.Equal(t, "ideaarena", cfg.Database.DBName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)

		// Check redis defaults
		assert.False(t, cfg.Redis.Enabled)
		assert.Equal(t, "localhost:6379", cfg.Redis.Addr())

		// Check log defaults
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "json", cfg.Log.Format)

		// Check engine defaults
		assert.Equal(t, "degraded", cfg.AI.Mode)
		assert.Equal(t, "gpt-4o", cfg.AI.Model)
		assert.Equal(t, 30*time.Second, cfg.AI.Timeout)
		assert.Equal(t, 60, cfg.AI.RequestsPerMinute)

		// Check leaderboard defaults
		assert.Equal(t, 30*time.Second, cfg.Leaderboard.CacheTTL)
		assert.Zero(t, cfg.Leaderboard.ReconcileInterval)

		assert.NoError(t, cfg.Validate())
	})

	t.Run("reads from environment variables", func(t *testing.T) {
		t.Setenv("IDEAARENA_SERVER_PORT", "9090")
		t.Setenv("IDEAARENA_DATABASE_DRIVER", "postgres")
		t.Setenv("IDEAARENA_DATABASE_HOST", "db.example.com")
		t.Setenv("IDEAARENA_LOG_LEVEL", "debug")
		t.Setenv("IDEAARENA_AI_MODE", "live")
		t.Setenv("IDEAARENA_AI_API_KEY", "sk-test")
		t.Setenv("IDEAARENA_LEADERBOARD_RECONCILE_INTERVAL", "5m")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.example.com", cfg.Database.Host)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "live", cfg.AI.Mode)
		assert.Equal(t, "sk-test", cfg.AI.APIKey)
		assert.Equal(t, 5*time.Minute, cfg.Leaderboard.ReconcileInterval)
		assert.NoError(t, cfg.Validate())
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{Host: "db", Port: 5433, User: "u", Password: "p", DBName: "arena", SSLMode: "require"}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=arena sslmode=require", cfg.DSN())
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"live mode without key", func(c *Config) { c.AI.Mode = "live" }, "ai.api_key"},
		{"unknown mode", func(c *Config) { c.AI.Mode = "offline" }, "unknown ai.mode"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "sqlite" }, "unknown database.driver"},
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"negative rate", func(c *Config) { c.AI.RequestsPerMinute = -1 }, "requests_per_minute"},
		{"empty cache", func(c *Config) { c.Leaderboard.CacheSize = 0 }, "cache_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("live mode with key", func(t *testing.T) {
		cfg := valid()
		cfg.AI.Mode = "live"
		cfg.AI.APIKey = "sk-test"

		assert.NoError(t, cfg.Validate())
	})
}
