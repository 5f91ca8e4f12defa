// AngelaMos | 2026
// service.go

package skills

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
)

type Service struct {
	db       *sqlx.DB
	repo     Repository
	ordering catalog.Ordering
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:       db,
		repo:     NewRepository(db),
		ordering: catalog.NewOrdering("skills", `"order"`, 0),
	}
}

func (s *Service) List(
	ctx context.Context,
	filter catalog.Filter,
) ([]Skill, error) {
	return s.repo.List(ctx, filter)
}

// ListPublic excludes archived rows unconditionally.
func (s *Service) ListPublic(ctx context.Context) ([]Skill, error) {
	return s.repo.List(ctx, catalog.FilterActive)
}

func (s *Service) Get(ctx context.Context, id int64) (*Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateSkillRequest,
) (*Skill, error) {
	skill := &Skill{
		Label:       req.Label,
		ImgSrc:      req.ImgSrc,
		Description: req.Description,
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		next, err := s.ordering.Next(ctx, tx)
		if err != nil {
			return err
		}
		skill.Order = &next

		return NewRepository(tx).Insert(ctx, skill)
	})
	if err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateSkillRequest,
) (*Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	skill.Label = req.Label
	skill.ImgSrc = req.ImgSrc
	skill.Description = req.Description
	skill.Archived = req.Archived

	if err := s.repo.Update(ctx, skill); err != nil {
		return nil, err
	}

	return skill, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return s.ordering.ApplyReorder(ctx, tx, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder skills: %w", err)
	}

	return nil
}
