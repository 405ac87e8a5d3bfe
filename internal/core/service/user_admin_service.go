package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
	"github.com/partnerhub/admin-api/internal/core/validation"
)

// UserAdminService manages administrative accounts. Every mutation runs
// through the shared pipeline: precondition, validation, persist and
// audit entry in one transaction.
type UserAdminService struct {
	repo   ports.UserAdminRepository
	audit  ports.AuditRepository
	tx     ports.TxRunner
	logger zerolog.Logger
}

func NewUserAdminService(repo ports.UserAdminRepository, audit ports.AuditRepository, tx ports.TxRunner, logger zerolog.Logger) *UserAdminService {
	return &UserAdminService{repo: repo, audit: audit, tx: tx, logger: logger}
}

func (s *UserAdminService) Create(ctx context.Context, actor domain.Actor, input ports.CreateUserAdminInput) (*domain.UserAdmin, error) {
	created, err := runMutation(ctx, s.tx, mutation[domain.UserAdmin]{
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.UserAdmin, error) {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			return s.repo.Create(ctx, &domain.UserAdmin{
				Name:         input.Name,
				Username:     input.Username,
				PasswordHash: string(hash),
				Email:        input.Email,
				Role:         input.Role,
				Active:       true,
			})
		},
		audit: s.auditEntry(actor, domain.ActionCreate),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Int64("actor_id", actor.ID).Msg("admin user created")
	return created, nil
}

func (s *UserAdminService) SearchAll(ctx context.Context) ([]domain.UserAdmin, error) {
	return s.repo.List(ctx)
}

func (s *UserAdminService) SearchByID(ctx context.Context, id int64) (*domain.UserAdmin, error) {
	if id <= 0 {
		return nil, domain.ErrUserAdminNotFound
	}
	return s.repo.FindByID(ctx, id)
}

func (s *UserAdminService) SearchByUsername(ctx context.Context, username string) (*domain.UserAdmin, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserAdminService) Update(ctx context.Context, actor domain.Actor, input ports.UpdateUserAdminInput) (*domain.UserAdmin, error) {
	return runMutation(ctx, s.tx, mutation[domain.UserAdmin]{
		lookup:   func(ctx context.Context) (*domain.UserAdmin, error) { return s.repo.FindByID(ctx, input.ID) },
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.UserAdmin, error) {
			updated := &domain.UserAdmin{
				ID:       input.ID,
				Name:     input.Name,
				Username: input.Username,
				Email:    input.Email,
				Role:     input.Role,
				Active:   input.Active,
			}
			if err := s.repo.Update(ctx, updated); err != nil {
				return nil, err
			}
			return s.repo.FindByID(ctx, input.ID)
		},
		audit: s.auditEntry(actor, domain.ActionUpdate),
	})
}

// AlterPassword replaces the stored hash. The audit entry keeps the
// before/after profile snapshots, never the password material itself.
func (s *UserAdminService) AlterPassword(ctx context.Context, actor domain.Actor, input ports.AlterPasswordInput) error {
	_, err := runMutation(ctx, s.tx, mutation[domain.UserAdmin]{
		lookup:   func(ctx context.Context) (*domain.UserAdmin, error) { return s.repo.FindByID(ctx, input.ID) },
		validate: func() error { return validation.Struct(input) },
		persist: func(ctx context.Context) (*domain.UserAdmin, error) {
			hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			if err := s.repo.UpdatePassword(ctx, input.ID, string(hash)); err != nil {
				return nil, err
			}
			return s.repo.FindByID(ctx, input.ID)
		},
		audit: s.auditEntry(actor, domain.ActionAlterPassword),
	})
	return err
}

// Delete deactivates the account. The row is kept so audit entries stay
// resolvable to a principal.
func (s *UserAdminService) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	_, err := runMutation(ctx, s.tx, mutation[domain.UserAdmin]{
		lookup: func(ctx context.Context) (*domain.UserAdmin, error) { return s.repo.FindByID(ctx, id) },
		persist: func(ctx context.Context) (*domain.UserAdmin, error) {
			if err := s.repo.Deactivate(ctx, id); err != nil {
				return nil, err
			}
			return s.repo.FindByID(ctx, id)
		},
		audit: s.auditEntry(actor, domain.ActionDelete),
	})
	return err
}

func (s *UserAdminService) auditEntry(actor domain.Actor, action domain.AuditAction) func(context.Context, *domain.UserAdmin, *domain.UserAdmin) error {
	return func(ctx context.Context, old, updated *domain.UserAdmin) error {
		subject := updated
		if subject == nil {
			subject = old
		}
		return s.audit.CreateUserAdminLog(ctx, &domain.UserAdminLog{
			SubjectID: subject.ID,
			Action:    action,
			OldValue:  encodeValue(old),
			NewValue:  encodeValue(updated),
			Date:      time.Now().UTC(),
			UserID:    actor.ID,
		})
	}
}
