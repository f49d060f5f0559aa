package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthub/hub/internal/config"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hub.yaml"), []byte(content), 0o600))

	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfigFile(t, `
database:
  name: hub
  host: localhost
auth:
  signingSecret: secret
`)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadHeaderTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 30*time.Second, cfg.Resolver.CacheTTL)
	assert.Equal(t, 1024, cfg.Resolver.CacheSize)
}

func TestLoadConfigOverrides(t *testing.T) {
	dir := writeConfigFile(t, `
database:
  name: hub
  host: db.internal
  port: "5433"
http:
  address: ":9090"
auth:
  signingSecret: secret
  issuer: agenthub
resolver:
  cacheTTL: 2m
  baseDomain: agenthub.dev
`)

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5433", cfg.Database.Port)
	assert.Equal(t, ":9090", cfg.HTTP.Address)
	assert.Equal(t, "agenthub", cfg.Auth.Issuer)
	assert.Equal(t, 2*time.Minute, cfg.Resolver.CacheTTL)
	assert.Equal(t, "agenthub.dev", cfg.Resolver.BaseDomain)
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name: "missing database name",
			content: `
database:
  host: localhost
auth:
  signingSecret: secret
`,
			wantErr: config.ErrEmptyDatabaseName,
		},
		{
			name: "missing database host",
			content: `
database:
  name: hub
auth:
  signingSecret: secret
`,
			wantErr: config.ErrEmptyDatabaseHost,
		},
		{
			name: "missing signing secret",
			content: `
database:
  name: hub
  host: localhost
`,
			wantErr: config.ErrEmptyJWTSecret,
		},
		{
			name: "non-positive resolver TTL",
			content: `
database:
  name: hub
  host: localhost
auth:
  signingSecret: secret
resolver:
  cacheTTL: 0s
`,
			wantErr: config.ErrInvalidResolverTTL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeConfigFile(t, tt.content)

			_, err := config.LoadConfig(dir)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
