package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
	"github.com/partnerhub/admin-api/internal/core/validation"
)

type CompanyService struct {
	repo   ports.CompanyRepository
	audit  ports.AuditRepository
	tx     ports.TxRunner
	logger zerolog.Logger
}

func NewCompanyService(repo ports.CompanyRepository, audit ports.AuditRepository, tx ports.TxRunner, logger zerolog.Logger) *CompanyService {
	return &CompanyService{repo: repo, audit: audit, tx: tx, logger: logger}
}

func (s *CompanyService) Create(ctx context.Context, actor domain.Actor, input ports.CreateCompanyInput) (*domain.Company, error) {
	created, err := runMutation(ctx, s.tx, mutation[domain.Company]{
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.Company, error) {
			return s.repo.Create(ctx, &domain.Company{Name: input.Name, Active: true})
		},
		audit: s.auditEntry(actor, domain.ActionCreate),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("name", created.Name).Int64("actor_id", actor.ID).Msg("company created")
	return created, nil
}

func (s *CompanyService) SearchAll(ctx context.Context) ([]domain.Company, error) {
	return s.repo.List(ctx)
}

func (s *CompanyService) SearchByID(ctx context.Context, id int64) (*domain.Company, error) {
	if id <= 0 {
		return nil, domain.ErrCompanyNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *CompanyService) SearchByName(ctx context.Context, name string) (*domain.Company, error) {
	return s.repo.FindByName(ctx, name)
}

func (s *CompanyService) Update(ctx context.Context, actor domain.Actor, input ports.UpdateCompanyInput) (*domain.Company, error) {
	return runMutation(ctx, s.tx, mutation[domain.Company]{
		lookup:   func(ctx context.Context) (*domain.Company, error) { return s.repo.FindByID(ctx, input.ID) },
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.Company, error) {
			updated := &domain.Company{
				ID:        input.ID,
				Name:      input.Name,
				Associate: input.Associate,
				Active:    input.Active,
			}
			if err := s.repo.Update(ctx, updated); err != nil {
				return nil, err
			}
			return updated, nil
		},
		audit: s.auditEntry(actor, domain.ActionUpdate),
	})
}

// ChangeStatus flips the active flag with a single store statement, so
// concurrent toggles cannot converge on a lost update.
func (s *CompanyService) ChangeStatus(ctx context.Context, actor domain.Actor, id int64) (*domain.Company, error) {
	return runMutation(ctx, s.tx, mutation[domain.Company]{
		lookup: func(ctx context.Context) (*domain.Company, error) { return s.repo.FindByID(ctx, id) },
		persist: func(ctx context.Context) (*domain.Company, error) {
			if err := s.repo.ToggleActive(ctx, id); err != nil {
				return nil, err
			}
			return s.repo.FindByID(ctx, id)
		},
		audit: s.auditEntry(actor, domain.ActionChangeStatus),
	})
}

// MarkAssociate sets the associate flag through the company's own update
// path, producing a company "update" audit entry. No-op when the flag is
// already set. Callers run it inside their own transaction.
func (s *CompanyService) MarkAssociate(ctx context.Context, actor domain.Actor, id int64) error {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if company.Associate {
		return nil
	}

	updated := *company
	updated.Associate = true
	if err := s.repo.Update(ctx, &updated); err != nil {
		return err
	}
	return s.auditEntry(actor, domain.ActionUpdate)(ctx, company, &updated)
}

func (s *CompanyService) auditEntry(actor domain.Actor, action domain.AuditAction) func(context.Context, *domain.Company, *domain.Company) error {
	return func(ctx context.Context, old, updated *domain.Company) error {
		subject := updated
		if subject == nil {
			subject = old
		}
		return s.audit.CreateCompanyLog(ctx, &domain.CompanyLog{
			SubjectID: subject.ID,
			Action:    action,
			OldValue:  encodeValue(old),
			NewValue:  encodeValue(updated),
			Date:      time.Now().UTC(),
			UserID:    actor.ID,
		})
	}
}
