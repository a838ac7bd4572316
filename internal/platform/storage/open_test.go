package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/config"
)

func TestRemoteConfigured(t *testing.T) {
	full := config.DatabaseConfig{
		Host: "db.example.com", Port: 3306, Username: "u", Password: "p", DBName: "tracker",
	}
	assert.True(t, remoteConfigured(full))

	empty := full
	empty.Host = ""
	assert.False(t, remoteConfigured(empty))

	noDB := full
	noDB.DBName = ""
	assert.False(t, remoteConfigured(noDB))

	placeholder := full
	placeholder.Password = "YOUR_DB_PASSWORD"
	assert.False(t, remoteConfigured(placeholder), "sample config placeholders never count as configured")
}

func TestOpenFallsBackWhenUnconfigured(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database = config.DatabaseConfig{Host: "YOUR_DB_HOST", DBName: "YOUR_DB_NAME"}
	cfg.Local.Path = filepath.Join(t.TempDir(), "tracker.db")

	backend, err := Open(cfg, zap.NewNop())
	require.NoError(t, err)
	defer backend.Close()
	assert.True(t, backend.IsLocalFallback())
}
