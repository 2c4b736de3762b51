package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 60*time.Second, cfg.Artifact.FetchTimeout)
	assert.Equal(t, int64(64<<20), cfg.Artifact.MaxBytes)
	assert.Equal(t, SessionBackendMemory, cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Kubernetes.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ARTIFACT_MODEL_URL", "configmap://ml/phishing-model/model.json")
	t.Setenv("ARTIFACT_FETCH_TIMEOUT", "5s")
	t.Setenv("SESSION_BACKEND", "SQLite")
	t.Setenv("SESSION_TTL", "not-a-duration")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("KUBERNETES_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "configmap://ml/phishing-model/model.json", cfg.Artifact.ModelURL)
	assert.Equal(t, 5*time.Second, cfg.Artifact.FetchTimeout)
	assert.Equal(t, SessionBackendSQLite, cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Kubernetes.Enabled)
}

func TestLoad_UnknownSessionBackend(t *testing.T) {
	t.Setenv("SESSION_BACKEND", "redis")

	_, err := Load()
	assert.Error(t, err)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", Name: "phishing", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@db:5432/phishing?sslmode=disable", d.DSN())
}
