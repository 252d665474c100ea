package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Empty(t, cfg.Auth.APIKeys)
	assert.Equal(t, "X-API-Key", cfg.Auth.APIKeyHeader)
	assert.Equal(t, "off", cfg.Classifier.Mode)
	assert.Equal(t, 10*time.Second, cfg.Classifier.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("API_KEYS", "sk-one, sk-two ,")
	t.Setenv("CLASSIFIER_MODE", "remote")
	t.Setenv("CLASSIFIER_URL", "http://localhost:8500")
	t.Setenv("CACHE_TTL_SECONDS", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Addr())
	assert.Equal(t, []string{"sk-one", "sk-two"}, cfg.Auth.APIKeys)
	assert.Equal(t, "remote", cfg.Classifier.Mode)
	assert.Equal(t, "http://localhost:8500", cfg.Classifier.URL)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
}

func TestLoadInvalidClassifierMode(t *testing.T) {
	t.Setenv("CLASSIFIER_MODE", "onnx")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLASSIFIER_MODE")
}

func TestLoadRemoteModeRequiresURL(t *testing.T) {
	t.Setenv("CLASSIFIER_MODE", "remote")
	t.Setenv("CLASSIFIER_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLASSIFIER_URL")
}
