// AngelaMos | 2026
// service.go

package projects

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/folio-api/internal/catalog"
	"github.com/carterperez-dev/folio-api/internal/core"
	"github.com/carterperez-dev/folio-api/internal/links"
)

// Counter recomputes the projects counter from the live row count. The
// counter is otherwise manually editable and never derived automatically, so
// the recount after create/delete is a deliberate side effect here.
type Counter interface {
	RecountProjects(ctx context.Context, db core.DBTX) error
}

type Service struct {
	db       *sqlx.DB
	repo     Repository
	ordering catalog.Ordering
	links    links.Manager
	counter  Counter
}

func NewService(db *sqlx.DB, counter Counter) *Service {
	return &Service{
		db:       db,
		repo:     NewRepository(db),
		ordering: catalog.NewOrdering("projects", `"order"`, 0),
		links:    links.NewManager("project_skills", "project_id"),
		counter:  counter,
	}
}

func (s *Service) List(
	ctx context.Context,
	filter catalog.Filter,
) ([]Project, error) {
	return s.repo.List(ctx, filter)
}

func (s *Service) ListPublic(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx, catalog.FilterActive)
}

// Get returns the project with its linked skill ids as a derived field.
func (s *Service) Get(
	ctx context.Context,
	id int64,
) (*Project, []int64, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	skillIDs, err := s.links.SkillIDs(ctx, s.db, id)
	if err != nil {
		return nil, nil, err
	}

	return project, skillIDs, nil
}

func (s *Service) LinkedSkills(
	ctx context.Context,
	id int64,
) ([]links.LinkedSkill, error) {
	return s.links.LinkedSkills(ctx, s.db, id)
}

func (s *Service) Create(
	ctx context.Context,
	req CreateProjectRequest,
) (*Project, error) {
	project := &Project{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Link:        req.Link,
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		next, err := s.ordering.Next(ctx, tx)
		if err != nil {
			return err
		}
		project.Order = &next

		if err := NewRepository(tx).Insert(ctx, project); err != nil {
			return err
		}

		if len(req.SkillIDs) > 0 {
			if err := s.links.Replace(ctx, tx, project.ID, req.SkillIDs); err != nil {
				return err
			}
		}

		return s.counter.RecountProjects(ctx, tx)
	})
	if err != nil {
		return nil, err
	}

	return project, nil
}

func (s *Service) Update(
	ctx context.Context,
	id int64,
	req UpdateProjectRequest,
) (*Project, error) {
	project, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Title = req.Title
	project.Description = req.Description
	project.Image = req.Image
	project.Link = req.Link
	project.Archived = req.Archived

	err = core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewRepository(tx).Update(ctx, project); err != nil {
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

	return project, nil
}

// Delete removes the project (junction rows cascade) and recomputes the
// projects counter as COUNT(*) over the remaining rows, in one transaction.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		if err := NewRepository(tx).Delete(ctx, id); err != nil {
			return err
		}

		return s.counter.RecountProjects(ctx, tx)
	})
}

func (s *Service) Reorder(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	err := core.InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		return s.ordering.ApplyReorder(ctx, tx, ids)
	})
	if err != nil {
		return fmt.Errorf("reorder projects: %w", err)
	}

	return nil
}
