package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 15*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, 168*time.Hour, cfg.JWTRefreshExpiry)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("OPENAI_MODEL", "gpt-4o")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.JWTAccessExpiry)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
}

func TestParseDuration_InvalidFallsBack(t *testing.T) {
	assert.Equal(t, 15*time.Minute, parseDuration("not-a-duration"))
	assert.Equal(t, time.Hour, parseDuration("1h"))
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost: "db", DBPort: "5432", DBUser: "u",
		DBPassword: "p", DBName: "janya", DBSSLMode: "disable",
	}
	assert.Equal(t, "host=db user=u password=p dbname=janya port=5432 sslmode=disable TimeZone=UTC", cfg.DSN())
}
