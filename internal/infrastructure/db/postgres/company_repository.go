package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

type CompanyRepository struct {
	db *DB
}

func NewCompanyRepository(db *DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c *domain.Company) (*domain.Company, error) {
	rec := companyRecord{Name: c.Name, Associate: c.Associate, Active: c.Active}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrCompanyExists
		}
		return nil, fmt.Errorf("insert company: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	var rec companyRecord
	if err := r.db.conn(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *CompanyRepository) FindByName(ctx context.Context, name string) (*domain.Company, error) {
	var rec companyRecord
	if err := r.db.conn(ctx).Where("name = ?", name).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCompanyNotFound
		}
		return nil, fmt.Errorf("find company: %w", err)
	}
	return rec.toDomain(), nil
}

// List returns active companies only; deactivated ones stay reachable
// through FindByID for audit resolution.
func (r *CompanyRepository) List(ctx context.Context) ([]domain.Company, error) {
	var recs []companyRecord
	if err := r.db.conn(ctx).Where("active").Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	companies := make([]domain.Company, 0, len(recs))
	for i := range recs {
		companies = append(companies, *recs[i].toDomain())
	}
	return companies, nil
}

func (r *CompanyRepository) Update(ctx context.Context, c *domain.Company) error {
	result := r.db.conn(ctx).Model(&companyRecord{}).Where("id = ?", c.ID).Updates(map[string]any{
		"name":      c.Name,
		"associate": c.Associate,
		"active":    c.Active,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrCompanyExists
		}
		return fmt.Errorf("update company: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}

// ToggleActive negates the flag in a single statement so concurrent
// toggles serialise at the store.
func (r *CompanyRepository) ToggleActive(ctx context.Context, id int64) error {
	result := r.db.conn(ctx).Model(&companyRecord{}).Where("id = ?", id).
		UpdateColumn("active", gorm.Expr("NOT active"))
	if result.Error != nil {
		return fmt.Errorf("toggle company status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrCompanyNotFound
	}
	return nil
}
