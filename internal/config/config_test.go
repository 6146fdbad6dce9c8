package config_test

import (
	"testing"

	"workcurb/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("RATING_SCALE_MAX", "")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 5, cfg.Security.LoginBurst)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("APP_ENV", "production")
	t.Setenv("RATING_SCALE_MAX", "100")
	t.Setenv("APP_REDACT_ERRORS", "true")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Server.RedactErrors)
	assert.Equal(t, float64(100), cfg.Rating.ScaleMax)
	assert.Equal(t, "db.internal", cfg.Database.Host)
}
