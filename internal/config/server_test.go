package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "postgres://localhost/internest_test")
	t.Setenv("APP_ENV", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDevelopment())
}

func TestNewServerConfig_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestNewServerConfig_InvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/internest_test")

	t.Setenv("PORT", "not-a-number")
	_, err := NewServerConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = NewServerConfig()
	assert.Error(t, err)
}

func TestNewServerConfig_DevelopmentMode(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/internest_test")
	t.Setenv("APP_ENV", "development")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.True(t, cfg.IsDevelopment())
}
