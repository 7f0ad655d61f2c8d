package db

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies all pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	db.logger.Info("database migrations applied")
	return nil
}

// EnsureMigrated applies migrations once the database answers a ping. It is
// safe to call repeatedly; after the first success it returns immediately,
// so a process that booted against an unreachable database still gets its
// schema when connectivity returns.
func (db *DB) EnsureMigrated(ctx context.Context) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.migrated {
		return nil
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		return err
	}

	db.migrated = true
	return nil
}
