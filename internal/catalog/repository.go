// AngelaMos | 2026
// repository.go

package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/core"
)

// Config describes one orderable collection so that listing, lookup and
// deletion are written once and instantiated per entity. OrderClause carries
// the full sort expression, e.g. `"order" ASC NULLS LAST, label ASC`.
type Config struct {
	Table       string
	Columns     string
	OrderClause string
	Archivable  bool
}

func List[T any](
	ctx context.Context,
	db core.DBTX,
	cfg Config,
	filter Filter,
) ([]T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", cfg.Columns, cfg.Table)

	if cfg.Archivable {
		switch filter {
		case FilterActive:
			query += " WHERE archived = FALSE"
		case FilterArchived:
			query += " WHERE archived = TRUE"
		case FilterAll:
		}
	}

	query += " ORDER BY " + cfg.OrderClause

	rows := make([]T, 0)
	if err := db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list %s: %w", cfg.Table, err)
	}

	return rows, nil
}

func Get[T any](
	ctx context.Context,
	db core.DBTX,
	cfg Config,
	id int64,
) (*T, error) {
	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE id = $1",
		cfg.Columns, cfg.Table,
	)

	var row T
	err := db.GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get %s: %w", cfg.Table, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", cfg.Table, err)
	}

	return &row, nil
}

// Delete removes one row; junction rows referencing it go away through
// ON DELETE CASCADE.
func Delete(
	ctx context.Context,
	db core.DBTX,
	table string,
	id int64,
) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", table)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}

	if rows == 0 {
		return fmt.Errorf("delete from %s: %w", table, core.ErrNotFound)
	}

	return nil
}

func Exists(
	ctx context.Context,
	db core.DBTX,
	table string,
	id int64,
) (bool, error) {
	query := fmt.Sprintf(
		"SELECT EXISTS(SELECT 1 FROM %s WHERE id = $1)",
		table,
	)

	var exists bool
	if err := db.GetContext(ctx, &exists, query, id); err != nil {
		return false, fmt.Errorf("check %s exists: %w", table, err)
	}

	return exists, nil
}
