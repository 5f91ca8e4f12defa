// AngelaMos | 2026
// repository.go

package projects

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
)

var config = catalog.Config{
	Table:       "projects",
	Columns:     `id, title, description, image, link, "order", archived`,
	OrderClause: `"order" ASC NULLS LAST, id DESC`,
	Archivable:  true,
}

type Repository interface {
	List(ctx context.Context, filter catalog.Filter) ([]Project, error)
	GetByID(ctx context.Context, id int64) (*Project, error)
	Insert(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) List(
	ctx context.Context,
	filter catalog.Filter,
) ([]Project, error) {
	return catalog.List[Project](ctx, r.db, config, filter)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Project, error) {
	return catalog.Get[Project](ctx, r.db, config, id)
}

func (r *repository) Insert(ctx context.Context, project *Project) error {
	query := `
		INSERT INTO projects (title, description, image, link, "order", archived)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING id`

	err := r.db.GetContext(ctx, &project.ID, query,
		project.Title,
		project.Description,
		project.Image,
		project.Link,
		project.Order,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects
		SET title = $2, description = $3, image = $4, link = $5, archived = $6
		WHERE id = $1
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		project.ID,
		project.Title,
		project.Description,
		project.Image,
		project.Link,
		project.Archived,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update project: %w", core.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}

	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return catalog.Delete(ctx, r.db, config.Table, id)
}
