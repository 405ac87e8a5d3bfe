package postgres

import (
	"context"
	"fmt"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

// AuditRepository appends and reads the four audit tables. Writers run
// on the caller's context, joining the mutation's transaction.
type AuditRepository struct {
	db *DB
}

func NewAuditRepository(db *DB) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) CreateUserAdminLog(ctx context.Context, entry *domain.UserAdminLog) error {
	rec := userAdminLogRecord{
		UserAdminID: entry.SubjectID,
		Action:      entry.Action,
		OldValue:    entry.OldValue,
		NewValue:    entry.NewValue,
		Date:        entry.Date,
		UserID:      entry.UserID,
	}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert user admin log: %w", err)
	}
	return nil
}

func (r *AuditRepository) CreateCompanyLog(ctx context.Context, entry *domain.CompanyLog) error {
	rec := companyLogRecord{
		CompanyID: entry.SubjectID,
		Action:    entry.Action,
		OldValue:  entry.OldValue,
		NewValue:  entry.NewValue,
		Date:      entry.Date,
		UserID:    entry.UserID,
	}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert company log: %w", err)
	}
	return nil
}

func (r *AuditRepository) CreateCategoryLog(ctx context.Context, entry *domain.CategoryLog) error {
	rec := categoryLogRecord{
		CategoryID: entry.SubjectID,
		Action:     entry.Action,
		OldValue:   entry.OldValue,
		NewValue:   entry.NewValue,
		Date:       entry.Date,
		UserID:     entry.UserID,
	}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert category log: %w", err)
	}
	return nil
}

func (r *AuditRepository) CreateAssociationLog(ctx context.Context, entry *domain.AssociationLog) error {
	rec := associationLogRecord{
		CompanyID:  entry.CompanyID,
		CategoryID: entry.CategoryID,
		Action:     entry.Action,
		Date:       entry.Date,
		UserID:     entry.UserID,
	}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert association log: %w", err)
	}
	return nil
}

func (r *AuditRepository) UserAdminLogs(ctx context.Context, subjectID *int64) ([]domain.UserAdminLog, error) {
	query := r.db.conn(ctx).Model(&userAdminLogRecord{}).Order("id DESC")
	if subjectID != nil {
		query = query.Where("user_admin_id = ?", *subjectID)
	}

	var recs []userAdminLogRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list user admin logs: %w", err)
	}

	entries := make([]domain.UserAdminLog, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, domain.UserAdminLog{
			ID:        rec.ID,
			SubjectID: rec.UserAdminID,
			Action:    rec.Action,
			OldValue:  rec.OldValue,
			NewValue:  rec.NewValue,
			Date:      rec.Date,
			UserID:    rec.UserID,
		})
	}
	return entries, nil
}

func (r *AuditRepository) CompanyLogs(ctx context.Context, subjectID *int64) ([]domain.CompanyLog, error) {
	query := r.db.conn(ctx).Model(&companyLogRecord{}).Order("id DESC")
	if subjectID != nil {
		query = query.Where("company_id = ?", *subjectID)
	}

	var recs []companyLogRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list company logs: %w", err)
	}

	entries := make([]domain.CompanyLog, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, domain.CompanyLog{
			ID:        rec.ID,
			SubjectID: rec.CompanyID,
			Action:    rec.Action,
			OldValue:  rec.OldValue,
			NewValue:  rec.NewValue,
			Date:      rec.Date,
			UserID:    rec.UserID,
		})
	}
	return entries, nil
}

func (r *AuditRepository) CategoryLogs(ctx context.Context, subjectID *int64) ([]domain.CategoryLog, error) {
	query := r.db.conn(ctx).Model(&categoryLogRecord{}).Order("id DESC")
	if subjectID != nil {
		query = query.Where("category_id = ?", *subjectID)
	}

	var recs []categoryLogRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list category logs: %w", err)
	}

	entries := make([]domain.CategoryLog, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, domain.CategoryLog{
			ID:        rec.ID,
			SubjectID: rec.CategoryID,
			Action:    rec.Action,
			OldValue:  rec.OldValue,
			NewValue:  rec.NewValue,
			Date:      rec.Date,
			UserID:    rec.UserID,
		})
	}
	return entries, nil
}

func (r *AuditRepository) AssociationLogs(ctx context.Context, filter ports.AssociationFilter) ([]domain.AssociationLog, error) {
	query := r.db.conn(ctx).Model(&associationLogRecord{}).Order("id DESC")
	if filter.CompanyID != nil {
		query = query.Where("company_id = ?", *filter.CompanyID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}

	var recs []associationLogRecord
	if err := query.Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list association logs: %w", err)
	}

	entries := make([]domain.AssociationLog, 0, len(recs))
	for _, rec := range recs {
		entries = append(entries, domain.AssociationLog{
			ID:         rec.ID,
			CompanyID:  rec.CompanyID,
			CategoryID: rec.CategoryID,
			Action:     rec.Action,
			Date:       rec.Date,
			UserID:     rec.UserID,
		})
	}
	return entries, nil
}

var _ ports.AuditRepository = (*AuditRepository)(nil)
var _ ports.UserAdminRepository = (*UserAdminRepository)(nil)
var _ ports.CompanyRepository = (*CompanyRepository)(nil)
var _ ports.CategoryRepository = (*CategoryRepository)(nil)
var _ ports.AssociationRepository = (*AssociationRepository)(nil)
var _ ports.TxRunner = (*DB)(nil)
