package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: "1.2.3"
mode: release
server:
  addr: ":9090"
database:
  host: db.example.com
  port: 3306
  user: tracker
  password: hunter22
  dbname: tracker
local:
  path: /var/lib/tracker/local.db
auth:
  jwt_secret: abc
  token_ttl_hours: 48
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", cfg.Version)
	assert.Equal(t, "release", cfg.Mode)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "db.example.com", cfg.Database.Host)
	assert.Equal(t, 48, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `version: "1.0.0"`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Mode)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "data/tracker.db", cfg.Local.Path)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := writeConfig(t, "{not yaml: [")
	_, err = Load(path)
	assert.Error(t, err)
}
