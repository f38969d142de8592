package config_test

import (
	"testing"

	"github.com/SeaCloudHub/customers/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "customers.events", cfg.Redis.Channel)
		assert.False(t, cfg.Events.IsolateFailures)
	})

	t.Run("it should read nested variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_IN_MEMORY", "true")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("EVENTS_ISOLATE_FAILURES", "true")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.True(t, cfg.DB.InMemory)
		assert.Equal(t, "redis:6379", cfg.Redis.Addr)
		assert.True(t, cfg.Events.IsolateFailures)
	})

	t.Run("it should fail on malformed values", func(t *testing.T) {
		t.Setenv("PORT", "not-a-port")

		_, err := config.LoadConfig()

		assert.Error(t, err)
	})
}

func TestDSN(t *testing.T) {
	db := config.DB{Host: "h", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5433 user=u password=p dbname=n sslmode=disable", db.DSN())
}
