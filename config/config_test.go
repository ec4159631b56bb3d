package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(values map[string]any) *viper.Viper {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	for key, val := range values {
		v.Set(key, val)
	}
	return v
}

func TestFromViperDefaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{"JWT_SECRET": "s3cret"}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.Server.Addr())
	assert.Equal(t, "./data/directory.db", cfg.Database.Path)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 30*time.Second, cfg.Cache.CategoryTTL)
}

func TestFromViperErrors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
		errMsg string
	}{
		{"missing secret", map[string]any{}, "JWT_SECRET"},
		{"non numeric port", map[string]any{"JWT_SECRET": "x", "SERVER_PORT": "http"}, "invalid SERVER_PORT"},
		{"port out of range", map[string]any{"JWT_SECRET": "x", "SERVER_PORT": 70000}, "out of range"},
		{"bad expiry", map[string]any{"JWT_SECRET": "x", "JWT_ACCESS_EXPIRY_MINUTES": "soon"}, "JWT_ACCESS_EXPIRY_MINUTES"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(tt.values))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadReadsEnvAndConfigFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "directory.yaml")
	require.NoError(t, os.WriteFile(file, []byte("LOG_LEVEL: debug\nSERVER_PORT: 8181\n"), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load(file)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}
