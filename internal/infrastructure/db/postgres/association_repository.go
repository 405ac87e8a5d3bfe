package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type AssociationRepository struct {
	db *DB
}

func NewAssociationRepository(db *DB) *AssociationRepository {
	return &AssociationRepository{db: db}
}

func (r *AssociationRepository) Create(ctx context.Context, a *domain.Association) (*domain.Association, error) {
	rec := associationRecord{CompanyID: a.CompanyID, CategoryID: a.CategoryID}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrAssociationExists
		}
		return nil, fmt.Errorf("insert association: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AssociationRepository) Find(ctx context.Context, companyID, categoryID int64) (*domain.Association, error) {
	var rec associationRecord
	err := r.db.conn(ctx).
		Where("company_id = ? AND category_id = ?", companyID, categoryID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAssociationNotFound
		}
		return nil, fmt.Errorf("find association: %w", err)
	}
	return rec.toDomain(), nil
}

// ListDetailed joins the link table against company and category so the
// service can build the grouped category→companies view in one query.
func (r *AssociationRepository) ListDetailed(ctx context.Context, filter ports.AssociationFilter) ([]domain.AssociationRow, error) {
	type joinedRow struct {
		CategoryID       int64
		CategoryName     string
		CategoryActive   bool
		CompanyID        int64
		CompanyName      string
		CompanyAssociate bool
		CompanyActive    bool
	}

	query := r.db.conn(ctx).
		Table("company_category").
		Select(`category.id AS category_id,
			category.name AS category_name,
			category.active AS category_active,
			company.id AS company_id,
			company.name AS company_name,
			company.associate AS company_associate,
			company.active AS company_active`).
		Joins("JOIN company ON company.id = company_category.company_id").
		Joins("JOIN category ON category.id = company_category.category_id").
		Order("category.id, company.id")

	if filter.CompanyID != nil {
		query = query.Where("company.id = ?", *filter.CompanyID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category.id = ?", *filter.CategoryID)
	}

	var rows []joinedRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list associations: %w", err)
	}

	out := make([]domain.AssociationRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.AssociationRow{
			CategoryID:       row.CategoryID,
			CategoryName:     row.CategoryName,
			CategoryActive:   row.CategoryActive,
			CompanyID:        row.CompanyID,
			CompanyName:      row.CompanyName,
			CompanyAssociate: row.CompanyAssociate,
			CompanyActive:    row.CompanyActive,
		})
	}
	return out, nil
}

func (r *AssociationRepository) Delete(ctx context.Context, companyID, categoryID int64) error {
	result := r.db.conn(ctx).
		Where("company_id = ? AND category_id = ?", companyID, categoryID).
		Delete(&associationRecord{})
	if result.Error != nil {
		return fmt.Errorf("delete association: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAssociationNotFound
	}
	return nil
}
