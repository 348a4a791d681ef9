// Package repositories bootstraps the SDK's local sqlite storage and groups
// the repository handles built on top of it.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/featurepulse/featurepulse-go/internal/repositories/metadata"
	"github.com/featurepulse/featurepulse-go/internal/repositories/migrations"
)

type Repositories struct {
	Metadata metadata.Repository

	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite database at dsn, applies migrations, and
// returns the repository handles. Callers own the returned value and must
// Close it.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		db:       db,
	}, nil
}

func (r *Repositories) Close() error {
	return r.db.Close()
}
