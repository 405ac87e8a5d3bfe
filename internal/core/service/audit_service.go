package service

import (
	"context"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

// AuditReadService exposes the audit trail read-only. Entries are only
// ever written by the mutation pipeline; nothing updates or deletes them.
type AuditReadService struct {
	repo ports.AuditRepository
}

func NewAuditReadService(repo ports.AuditRepository) *AuditReadService {
	return &AuditReadService{repo: repo}
}

func (s *AuditReadService) UserAdminLogs(ctx context.Context, subjectID *int64) ([]domain.UserAdminLog, error) {
	return s.repo.UserAdminLogs(ctx, subjectID)
}

func (s *AuditReadService) CompanyLogs(ctx context.Context, subjectID *int64) ([]domain.CompanyLog, error) {
	return s.repo.CompanyLogs(ctx, subjectID)
}

func (s *AuditReadService) CategoryLogs(ctx context.Context, subjectID *int64) ([]domain.CategoryLog, error) {
	return s.repo.CategoryLogs(ctx, subjectID)
}

func (s *AuditReadService) AssociationLogs(ctx context.Context, filter ports.AssociationFilter) ([]domain.AssociationLog, error) {
	return s.repo.AssociationLogs(ctx, filter)
}
