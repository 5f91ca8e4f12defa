// AngelaMos | 2026
// repository.go

package experience

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
)

var config = catalog.Config{
	Table:       "experience",
	Columns:     "id, period, position, company, description, display_order",
	OrderClause: "display_order ASC NULLS LAST, id DESC",
	Archivable:  false,
}

type Repository interface {
	List(ctx context.Context) ([]Experience, error)
	GetByID(ctx context.Context, id int64) (*Experience, error)
	Insert(ctx context.Context, entry *Experience) error
	Update(ctx context.Context, entry *Experience) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]Experience, error) {
	return catalog.List[Experience](ctx, r.db, config, catalog.FilterAll)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Experience, error) {
	return catalog.Get[Experience](ctx, r.db, config, id)
}

func (r *repository) Insert(ctx context.Context, entry *Experience) error {
	query := `
		INSERT INTO experience (period, position, company, description, display_order)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := r.db.GetContext(ctx, &entry.ID, query,
		entry.Period,
		entry.Position,
		entry.Company,
		entry.Description,
		entry.DisplayOrder,
	)
	if err != nil {
		return fmt.Errorf("insert experience: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, entry *Experience) error {
	query := `
		UPDATE experience
		SET period = $2, position = $3, company = $4, description = $5
		WHERE id = $1
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		entry.ID,
		entry.Period,
		entry.Position,
		entry.Company,
		entry.Description,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update experience: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update experience: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return catalog.Delete(ctx, r.db, config.Table, id)
}
