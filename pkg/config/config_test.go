package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setSecrets(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10, cfg.DB.MaxConns)
	assert.Equal(t, 15*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshTTL)
	assert.Equal(t, "store-rating-platform", cfg.JWT.Issuer)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxBytes)
	assert.Equal(t, "approved", cfg.Ratings.DefaultStatus)
	assert.Zero(t, cfg.RateLimit.RPS, "sin límite en desarrollo")
	assert.Len(t, cfg.HTTP.CORSOrigins, 4)
}

func TestLoad_EnvOverrides(t *testing.T) {
	setSecrets(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("BCRYPT_SALT_ROUNDS", "2")
	t.Setenv("JWT_EXPIRES_IN", "30m")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("RATINGS_DEFAULT_STATUS", "pending")
	t.Setenv("PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.App.IsProduction())
	assert.Equal(t, 4, cfg.Security.BcryptCost, "el coste se ajusta al mínimo de bcrypt")
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, "pending", cfg.Ratings.DefaultStatus)
	assert.Equal(t, 5.0, cfg.RateLimit.RPS)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_MissingSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidRatingStatus(t *testing.T) {
	setSecrets(t)
	t.Setenv("RATINGS_DEFAULT_STATUS", "maybe")

	_, err := Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapesPassword(t *testing.T) {
	c := DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "store_rating", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/store_rating?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://other"
	assert.Equal(t, "postgres://other", c.ConnectionString())
}

func TestParseDuration(t *testing.T) {
	d, err := parseDuration("2d")
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, d)

	_, err = parseDuration("xd")
	assert.Error(t, err)
}
