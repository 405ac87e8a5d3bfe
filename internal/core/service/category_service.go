package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
	"github.com/partnerhub/admin-api/internal/core/validation"
)

type CategoryService struct {
	repo   ports.CategoryRepository
	audit  ports.AuditRepository
	tx     ports.TxRunner
	logger zerolog.Logger
}

func NewCategoryService(repo ports.CategoryRepository, audit ports.AuditRepository, tx ports.TxRunner, logger zerolog.Logger) *CategoryService {
	return &CategoryService{repo: repo, audit: audit, tx: tx, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, actor domain.Actor, input ports.CreateCategoryInput) (*domain.Category, error) {
	created, err := runMutation(ctx, s.tx, mutation[domain.Category]{
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.Category, error) {
			return s.repo.Create(ctx, &domain.Category{Name: input.Name, Active: true})
		},
		audit: s.auditEntry(actor, domain.ActionCreate),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Int64("actor_id", actor.ID).Msg("category created")
	return created, nil
}

func (s *CategoryService) SearchAll(ctx context.Context) ([]domain.Category, error) {
	return s.repo.List(ctx)
}

func (s *CategoryService) SearchByID(ctx context.Context, id int64) (*domain.Category, error) {
	if id <= 0 {
		return nil, domain.ErrCategoryNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CategoryService) SearchByName(ctx context.Context, name string) (*domain.Category, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *CategoryService) Update(ctx context.Context, actor domain.Actor, input ports.UpdateCategoryInput) (*domain.Category, error) {
	return runMutation(ctx, s.tx, mutation[domain.Category]{
		lookup:   func(ctx context.Context) (*domain.Category, error) { return s.repo.FindByID(ctx, input.ID) },
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.Category, error) {
			updated := &domain.Category{ID: input.ID, Name: input.Name, Active: input.Active}
			if err := s.repo.Update(ctx, updated); err != nil {
				return nil, err
			}
			return updated, nil
		},
		audit: s.auditEntry(actor, domain.ActionUpdate),
	})
}

func (s *CategoryService) ChangeStatus(ctx context.Context, actor domain.Actor, id int64) (*domain.Category, error) {
	return runMutation(ctx, s.tx, mutation[domain.Category]{
		lookup: func(ctx context.Context) (*domain.Category, error) { return s.repo.FindByID(ctx, id) },
		persist: func(ctx context.Context) (*domain.Category, error) {
			if err := s.repo.ToggleActive(ctx, id); err != nil {
				return nil, err
			}
			return s.repo.FindByID(ctx, id)
		},
		audit: s.auditEntry(actor, domain.ActionChangeStatus),
	})
}

func (s *CategoryService) auditEntry(actor domain.Actor, action domain.AuditAction) func(context.Context, *domain.Category, *domain.Category) error {
	return func(ctx context.Context, old, updated *domain.Category) error {
		subject := updated
		if subject == nil {
			subject = old
		}
		return s.audit.CreateCategoryLog(ctx, &domain.CategoryLog{
			SubjectID: subject.ID,
			Action:    action,
			OldValue:  encodeValue(old),
			NewValue:  encodeValue(updated),
			Date:      time.Now().UTC(),
			UserID:    actor.ID,
		})
	}
}
