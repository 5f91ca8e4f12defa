// AngelaMos | 2026
// service.go

package content

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/carterperez-dev/folio-api/internal/core"
)

const (
	projectsCounterTable   = "counter_projects"
	experienceCounterTable = "counter_experience"
)

type Service struct {
	repo Repository
}

func NewService(db *sqlx.DB) *Service {
	return &Service{repo: NewRepository(db)}
}

func (s *Service) GetAbout(ctx context.Context) (*About, error) {
	return s.repo.GetAbout(ctx)
}

func (s *Service) UpdateAbout(ctx context.Context, content string) error {
	return s.repo.UpdateAbout(ctx, content)
}

func (s *Service) GetCV(ctx context.Context) (*CV, error) {
	return s.repo.GetCV(ctx)
}

func (s *Service) UpdateCV(ctx context.Context, linkCV string) error {
	return s.repo.UpdateCV(ctx, linkCV)
}

func (s *Service) GetCounters(ctx context.Context) (*CountersResponse, error) {
	projects, err := s.repo.GetCounter(ctx, projectsCounterTable)
	if err != nil {
		return nil, err
	}

	experience, err := s.repo.GetCounter(ctx, experienceCounterTable)
	if err != nil {
		return nil, err
	}

	return &CountersResponse{
		Projects:   projects.Number,
		Experience: experience.Number,
	}, nil
}

func (s *Service) SetProjectsCounter(ctx context.Context, number int) error {
	return s.repo.SetCounter(ctx, projectsCounterTable, number)
}

func (s *Service) SetExperienceCounter(ctx context.Context, number int) error {
	return s.repo.SetCounter(ctx, experienceCounterTable, number)
}

// RecountProjects satisfies projects.Counter.
func (s *Service) RecountProjects(ctx context.Context, db core.DBTX) error {
	return s.repo.RecountProjects(ctx, db)
}
