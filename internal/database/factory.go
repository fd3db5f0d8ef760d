package database

import (
	"fmt"
	"os"
	"path/filepath"

	"gigawall/internal/config"
	"gigawall/internal/gigawall"
)

// NewDatabaseFromConfig creates a HistoryDB based on the database config type.
func NewDatabaseFromConfig(cfg config.DatabaseConfig) (gigawall.HistoryDB, error) {
	switch cfg.Type {
	case "sqlite":
		if cfg.DataDir == "" {
			return nil, fmt.Errorf("data_dir required for sqlite database")
		}
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
		return NewSQLiteDatabase(filepath.Join(cfg.DataDir, "history.db"))
	case "memory":
		return NewSQLiteDatabase(":memory:")
	default:
		return nil, fmt.Errorf("unknown database type: %s", cfg.Type)
	}
}
