package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "authenticated", cfg.Auth.Audience)
	assert.Equal(t, "local", cfg.Storage.Mode)
	assert.Equal(t, "0 0 2 * * *", cfg.Snapshot.Cron)
	assert.Equal(t, 5*time.Minute, cfg.Snapshot.TimeoutDuration())
	assert.Equal(t, 90, cfg.Snapshot.RetentionDays)
	assert.Equal(t, 30*time.Second, cfg.Auth.Leeway())
	assert.Contains(t, cfg.RateLimit.WhitelistPaths, "/health")
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DATABASE_SSLMODE", "require")
	t.Setenv("SNAPSHOT_ENABLED", "true")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("ADMIN_API_KEY", "env-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.True(t, cfg.Snapshot.Enabled)
	assert.Equal(t, "env-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, "env-key", cfg.ApiKey.Value)
}

func TestDatabaseConfig_ConnectionString(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "crm", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=crm sslmode=disable", d.ConnectionString())
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, time.UTC, (&AppConfig{}).Location())
	assert.Equal(t, time.UTC, (&AppConfig{Timezone: "Not/AZone"}).Location())
	assert.Equal(t, "UTC", (&AppConfig{Timezone: "UTC"}).Location().String())
}

type fakeSecrets map[string]string

func (f fakeSecrets) GetSecretOrEnv(_ context.Context, secretName, _ string) (string, error) {
	if v, ok := f[secretName]; ok {
		return v, nil
	}
	return "", errors.New("missing")
}

func TestApplySecrets(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{Host: "localhost", User: "env-user", Password: "env-pass"},
		Auth:     AuthConfig{JWTSecret: "env-jwt"},
	}
	src := fakeSecrets{
		"POSTGRES-MAIN-PASSWORD":    "vault-pass",
		"jwt-secret":                "vault-jwt",
		"admin-api-key":             "vault-key",
		"storage-connection-string": "UseDevelopmentStorage=true",
	}

	applySecrets(context.Background(), cfg, src, zap.NewNop())

	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "env-user", cfg.Database.User)
	assert.Equal(t, "vault-pass", cfg.Database.Password)
	assert.Equal(t, "vault-jwt", cfg.Auth.JWTSecret)
	assert.Equal(t, "vault-key", cfg.ApiKey.Value)
	assert.Equal(t, "UseDevelopmentStorage=true", cfg.Storage.CloudConnectionString)
}
