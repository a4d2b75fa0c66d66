package store

import (
	"github.com/rs/zerolog"
	"github.com/saeidalz13/battleship-engine/db"
	"github.com/saeidalz13/battleship-engine/internal/config"
	cerr "github.com/saeidalz13/battleship-engine/internal/error"
)

// NewBackend creates a storage backend based on configuration.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case config.StorageTypePostgres:
		sqlDB, err := db.ConnectToDb(cfg.Postgres.URL, cfg.Postgres.MigrationDir, log)
		if err != nil {
			return nil, err
		}
		return NewPostgres(sqlDB, log), nil
	case config.StorageTypeSqlite:
		return NewSqlite(cfg.Sqlite.Path, log)
	case config.StorageTypeMemory, "":
		return NewMemory(), nil
	default:
		return nil, cerr.ErrUnknownStorageType(cfg.Type)
	}
}
