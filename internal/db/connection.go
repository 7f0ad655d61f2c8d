// Package db provides database connection and management utilities.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rolandaayo/Astral-cu/internal/config"

	// Import postgres driver for registration with database/sql
	_ "github.com/lib/pq"
)

// DB wraps the database connection pool
type DB struct {
	*sql.DB
	logger *slog.Logger

	mu       sync.Mutex
	migrated bool
}

// Open prepares a connection pool without requiring the database to be
// reachable. A failed ping is logged and the pool is returned anyway;
// requests fail individually until connectivity is restored. The process
// must keep serving in a degraded state rather than crash at startup.
func Open(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	sqlDB, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	database := &DB{DB: sqlDB, logger: logger}

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Error("database unreachable at startup, continuing degraded",
			"host", cfg.Host,
			"port", cfg.Port,
			"database", cfg.DBName,
			"error", err,
		)
		return database, nil
	}

	logger.Info("successfully connected to database",
		"host", cfg.Host,
		"database", cfg.DBName,
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
		"conn_max_lifetime", cfg.ConnMaxLifetime,
	)

	return database, nil
}

// Connect establishes a connection to the database and fails if it cannot
// be reached. Used by tooling that needs a live database up front.
func Connect(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	database, err := Open(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if err := database.PingContext(ctx); err != nil {
		_ = database.DB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return database, nil
}

// Close closes the database connection and logs the closure.
func (db *DB) Close() error {
	db.logger.Info("closing database connection")
	return db.DB.Close()
}
