package storage

import (
	"strings"

	"go.uber.org/zap"

	"github.com/covaciuandrei/gym-attendance-tracker/internal/platform/config"
)

// Open picks the backend for the lifetime of the process. Remote wins when
// it is configured and reachable; anything else degrades to the local
// fallback rather than failing startup.
func Open(cfg *config.Config, log *zap.Logger) (Backend, error) {
	if !remoteConfigured(cfg.Database) {
		log.Warn("remote store not configured, using local fallback",
			zap.String("path", cfg.Local.Path))
		return OpenLocal(cfg.Local.Path)
	}

	remote, err := OpenRemote(cfg.Database)
	if err != nil {
		log.Warn("remote store init failed, falling back to local store",
			zap.Error(err), zap.String("path", cfg.Local.Path))
		return OpenLocal(cfg.Local.Path)
	}
	log.Info("remote store initialized",
		zap.String("host", cfg.Database.Host), zap.String("dbname", cfg.Database.DBName))
	return remote, nil
}

// remoteConfigured rejects missing hosts and the YOUR_* placeholders that
// ship in the sample config.
func remoteConfigured(c config.DatabaseConfig) bool {
	if c.Host == "" || c.DBName == "" {
		return false
	}
	for _, v := range []string{c.Host, c.Username, c.Password, c.DBName} {
		if strings.HasPrefix(v, "YOUR_") {
			return false
		}
	}
	return true
}
