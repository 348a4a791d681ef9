package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/featurepulse/featurepulse-go/internal/dbx"
)

// SQLiteRepository stores every value as TEXT in a single metadata table and
// converts scalars at the edges.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) GetString(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM metadata WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get metadata[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) SetString(ctx context.Context, key, value string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) GetInt64(ctx context.Context, key string) (int64, bool, error) {
	raw, ok, err := r.GetString(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("metadata[%s] is not an integer: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) SetInt64(ctx context.Context, key string, value int64) error {
	return r.SetString(ctx, key, strconv.FormatInt(value, 10))
}

func (r *SQLiteRepository) GetFloat64(ctx context.Context, key string) (float64, bool, error) {
	raw, ok, err := r.GetString(ctx, key)
	if err != nil || !ok {
		return 0, ok, err
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("metadata[%s] is not a number: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) SetFloat64(ctx context.Context, key string, value float64) error {
	return r.SetString(ctx, key, strconv.FormatFloat(value, 'g', -1, 64))
}

func (r *SQLiteRepository) GetBool(ctx context.Context, key string) (bool, bool, error) {
	raw, ok, err := r.GetString(ctx, key)
	if err != nil || !ok {
		return false, ok, err
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, false, fmt.Errorf("metadata[%s] is not a boolean: %w", key, err)
	}
	return value, true, nil
}

func (r *SQLiteRepository) SetBool(ctx context.Context, key string, value bool) error {
	return r.SetString(ctx, key, strconv.FormatBool(value))
}

func (r *SQLiteRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete metadata[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM metadata`)
	if err != nil {
		return fmt.Errorf("failed to clear metadata: %w", err)
	}
	return nil
}
