// AngelaMos | 2026
// service.go

package experience

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/links"
)

type Service struct {
	db       *sqlx.DB
	repo     Repository
	ordering catalog.Ordering
	links    links.Manager
}

func NewService(db *sqlx.DB) *Service {
	return &Service{
		db:       db,
		repo:     NewRepository(db),
		// Display order starts at 1 here, unlike skills and projects.
		ordering: catalog.NewOrdering("experience", "display_order", 1),
		links:    links.NewManager("experience_skills", "experience_id"),
	}
}

func (s *Service) List(ctx context.Context) ([]Experience, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(
	ctx context.Context,
	id int64,
) (*Experience, []int64, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	skillIDs, err := s.links.SkillIDs(ctx, s.db, id)
	if err != nil {
		return nil, nil, err
	}

	return entry, skillIDs, nil
}

func (s *Service) LinkedSkills(
	ctx context.Context,
	id int64,
) ([]links.LinkedSkill, error) {
	return s.links.LinkedSkills(ctx, s.db, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateExperienceRequest,
) (*Experience, error) {
	entry := &Experience{
		Period:      req.Period,
		Position:    req.Position,
		Company:     req.Company,
		Description: req.Description,
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		next, err := s.ordering.Next(ctx, tx)
		if err != nil {
			return err
		}
		entry.DisplayOrder = &next

		if err := NewRepository(tx).Insert(ctx, entry); err != nil {
			return err
		}

		if len(req.SkillIDs) > 0 {
			return s.links.Replace(ctx, tx, entry.ID, req.SkillIDs)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateExperienceRequest,
) (*Experience, error) {
	entry, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Period = req.Period
	entry.Position = req.Position
	entry.Company = req.Company
	entry.Description = req.Description

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewRepository(tx).Update(ctx, entry); err != nil {
			return err
		}

		if req.SkillIDs != nil {
			return s.links.Replace(ctx, tx, id, *req.SkillIDs)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
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
		return fmt.Errorf("reorder experience: %w", err)
	}

	return nil
}
