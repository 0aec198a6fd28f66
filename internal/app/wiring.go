package app

import (
	"github.com/empowerher/empowerher/internal/database"
	"github.com/empowerher/empowerher/internal/storage"
	"github.com/empowerher/empowerher/pkg/logger"
	"gorm.io/gorm"

	"go.uber.org/zap"
)

// DatabaseConfigFor translates the loaded configuration into connection
// options for the selected driver.
func DatabaseConfigFor(cfg DatabaseConfig) database.Config {
	out := database.Config{
		Driver: cfg.Driver,
		Path:   cfg.Path,
		DSN:    cfg.DSN,
	}

	switch cfg.Driver {
	case "postgres", "postgresql":
		out.Host = cfg.Postgres.Host
		out.Port = cfg.Postgres.Port
		out.Name = cfg.Postgres.Database
		out.User = cfg.Postgres.Username
		out.Password = cfg.Postgres.Password
	case "mysql":
		out.Host = cfg.MySQL.Host
		out.Port = cfg.MySQL.Port
		out.Name = cfg.MySQL.Database
		out.User = cfg.MySQL.Username
		out.Password = cfg.MySQL.Password
	}

	return out
}

// BuildSink selects the persistence sink: Redis when enabled and reachable,
// otherwise the primary database.
func BuildSink(cfg StorageConfig, db *gorm.DB) storage.Sink {
	if cfg.Redis.Enabled {
		sink, err := storage.NewRedisSink(storage.RedisConfig{
			Address:  cfg.Redis.Address,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			TLS:      cfg.Redis.TLS,
			Timeout:  cfg.Redis.Timeout,
		})
		if err == nil {
			return sink
		}
		logger.WithModule("app").Warn("redis sink unavailable, falling back to database",
			zap.Error(err))
	}

	return storage.NewDatabaseSink(db)
}
