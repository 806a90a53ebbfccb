package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("PORT", "")
	t.Setenv("STORE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, StorePostgres, cfg.Store)
	assert.Equal(t, DefaultAdminPhone, cfg.Auth.AdminPhone)
	assert.False(t, cfg.Auth.Enforce)
	assert.True(t, cfg.CORS.AllowAll())
	assert.Equal(t, 10, cfg.Auth.LoginRateLimit)
	assert.Equal(t, time.Minute, cfg.Auth.LoginWindow)
}

func TestLoadFileThenEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "petcare.yaml")
	content := `
port: "9090"
store: memory
auth:
  enforce: true
  jwt_secret: file-secret
  token_ttl: 30m
  admin_phone: "222-222-2222"
kafka:
  brokers: ["kafka:9092"]
  booking_topic: bookings
cors:
  allowed_origins: ["http://localhost:5173"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9191")
	t.Setenv("LOGIN_RATE_LIMIT", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Port)
	assert.Equal(t, StoreMemory, cfg.Store)
	assert.True(t, cfg.Auth.Enforce)
	assert.Equal(t, "file-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "222-222-2222", cfg.Auth.AdminPhone)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "bookings", cfg.Kafka.BookingTopic)
	assert.Equal(t, 3, cfg.Auth.LoginRateLimit)
	assert.False(t, cfg.CORS.AllowAll())
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg := Default()
	cfg.Port = "70000"
	cfg.Store = "mongo"
	cfg.Otel.SampleRatio = 2

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
	assert.Contains(t, err.Error(), "STORE")
	assert.Contains(t, err.Error(), "OTEL_SAMPLING_RATIO")
}

func TestValidateRejectsDefaultSecretWhenEnforced(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	cfg.Auth.Enforce = true
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	cfg.Auth.JWTSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsEnforcementWithDefaultSecret(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("AUTH_ENFORCE", "true")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRejectsMalformedTypedEnv(t *testing.T) {
	cases := []struct {
		key, value string
	}{
		{"AUTH_ENFORCE", "yes"},
		{"LOGIN_RATE_LIMIT", "abc"},
		{"LOGIN_RATE_WINDOW", "soon"},
		{"OTEL_SAMPLING_RATIO", "half"},
	}
	for _, tc := range cases {
		t.Run(tc.key, func(t *testing.T) {
			t.Setenv("CONFIG_FILE", "")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
			assert.Contains(t, err.Error(), tc.value)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", d.DSN())
}
