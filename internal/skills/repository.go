// AngelaMos | 2026
// repository.go

package skills

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
)

var config = catalog.Config{
	Table:       "skills",
	Columns:     `id, label, "imgSrc", description, "order", archived`,
	OrderClause: `"order" ASC NULLS LAST, label ASC`,
	Archivable:  true,
}

type Repository interface {
	List(ctx context.Context, filter catalog.Filter) ([]Skill, error)
	GetByID(ctx context.Context, id int64) (*Skill, error)
	Insert(ctx context.Context, skill *Skill) error
	Update(ctx context.Context, skill *Skill) error
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
) ([]Skill, error) {
	return catalog.List[Skill](ctx, r.db, config, filter)
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Skill, error) {
	return catalog.Get[Skill](ctx, r.db, config, id)
}

func (r *repository) Insert(ctx context.Context, skill *Skill) error {
	query := `
		INSERT INTO skills (label, "imgSrc", description, "order", archived)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id`

	err := r.db.GetContext(ctx, &skill.ID, query,
		skill.Label,
		skill.ImgSrc,
		skill.Description,
		skill.Order,
	)
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("insert skill: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("insert skill: %w", err)
	}

	return nil
}

func (r *repository) Update(ctx context.Context, skill *Skill) error {
	query := `
		UPDATE skills
		SET label = $2, "imgSrc" = $3, description = $4, archived = $5
		WHERE id = $1
		RETURNING id`

	var id int64
	err := r.db.GetContext(ctx, &id, query,
		skill.ID,
		skill.Label,
		skill.ImgSrc,
		skill.Description,
		skill.Archived,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("update skill: %w", core.ErrNotFound)
	}
	if err != nil {
		if core.IsDuplicateKey(err) {
			return fmt.Errorf("update skill: %w", core.ErrDuplicateKey)
		}
		return fmt.Errorf("update skill: %w", err)
	}

	return nil
}

// Delete removes the skill; junction rows in experience_skills and
// project_skills cascade away with it.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return catalog.Delete(ctx, r.db, config.Table, id)
}
