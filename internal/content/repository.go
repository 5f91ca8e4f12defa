// AngelaMos | 2026
// repository.go

package content

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/core"
)

// Each table holds exactly one row, seeded by the migrations. Updates touch
// id = 1 directly rather than upserting.
type Repository interface {
	GetAbout(ctx context.Context) (*About, error)
	UpdateAbout(ctx context.Context, content string) error
	GetCV(ctx context.Context) (*CV, error)
	UpdateCV(ctx context.Context, linkCV string) error
	GetCounter(ctx context.Context, table string) (*Counter, error)
	SetCounter(ctx context.Context, table string, number int) error
	RecountProjects(ctx context.Context, db core.DBTX) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) GetAbout(ctx context.Context) (*About, error) {
	var about About
	err := r.db.GetContext(ctx, &about,
		`SELECT id, content FROM about WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get about: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get about: %w", err)
	}
	return &about, nil
}

func (r *repository) UpdateAbout(ctx context.Context, content string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE about SET content = $1 WHERE id = 1`, content)
	if err != nil {
		return fmt.Errorf("update about: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update about: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update about: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetCV(ctx context.Context) (*CV, error) {
	var cv CV
	err := r.db.GetContext(ctx, &cv,
		`SELECT id, link_cv FROM cv WHERE id = 1`)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get cv: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get cv: %w", err)
	}
	return &cv, nil
}

func (r *repository) UpdateCV(ctx context.Context, linkCV string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE cv SET link_cv = $1 WHERE id = 1`, linkCV)
	if err != nil {
		return fmt.Errorf("update cv: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update cv: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("update cv: %w", core.ErrNotFound)
	}

	return nil
}

func (r *repository) GetCounter(
	ctx context.Context,
	table string,
) (*Counter, error) {
	var counter Counter
	query := fmt.Sprintf(`SELECT id, number FROM %s WHERE id = 1`, table)

	err := r.db.GetContext(ctx, &counter, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get counter %s: %w", table, core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get counter %s: %w", table, err)
	}
	return &counter, nil
}

func (r *repository) SetCounter(
	ctx context.Context,
	table string,
	number int,
) error {
	query := fmt.Sprintf(`UPDATE %s SET number = $1 WHERE id = 1`, table)

	result, err := r.db.ExecContext(ctx, query, number)
	if err != nil {
		return fmt.Errorf("set counter %s: %w", table, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("set counter %s: %w", table, err)
	}
	if rows == 0 {
		return fmt.Errorf("set counter %s: %w", table, core.ErrNotFound)
	}

	return nil
}

// RecountProjects runs against the caller's executor so it can participate in
// the same transaction as the project write that triggered it.
func (r *repository) RecountProjects(ctx context.Context, db core.DBTX) error {
	_, err := db.ExecContext(ctx,
		`UPDATE counter_projects SET number = (SELECT COUNT(*) FROM projects) WHERE id = 1`)
	if err != nil {
		return fmt.Errorf("recount projects: %w", err)
	}
	return nil
}
