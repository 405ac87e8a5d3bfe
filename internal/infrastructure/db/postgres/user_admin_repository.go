package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

type UserAdminRepository struct {
	db *DB
}

func NewUserAdminRepository(db *DB) *UserAdminRepository {
	return &UserAdminRepository{db: db}
}

func (r *UserAdminRepository) Create(ctx context.Context, u *domain.UserAdmin) (*domain.UserAdmin, error) {
	rec := userAdminRecord{
		Name:         u.Name,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Email:        u.Email,
		Role:         u.Role,
		Active:       u.Active,
	}
	if err := r.db.conn(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserAdminExists
		}
		return nil, fmt.Errorf("insert user admin: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserAdminRepository) FindByID(ctx context.Context, id int64) (*domain.UserAdmin, error) {
	var rec userAdminRecord
	if err := r.db.conn(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserAdminNotFound
		}
		return nil, fmt.Errorf("find user admin: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserAdminRepository) FindByUsername(ctx context.Context, username string) (*domain.UserAdmin, error) {
	var rec userAdminRecord
	if err := r.db.conn(ctx).Where("username = ?", username).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserAdminNotFound
		}
		return nil, fmt.Errorf("find user admin: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *UserAdminRepository) List(ctx context.Context) ([]domain.UserAdmin, error) {
	var recs []userAdminRecord
	if err := r.db.conn(ctx).Order("id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list user admins: %w", err)
	}
	users := make([]domain.UserAdmin, 0, len(recs))
	for i := range recs {
		users = append(users, *recs[i].toDomain())
	}
	return users, nil
}

func (r *UserAdminRepository) Update(ctx context.Context, u *domain.UserAdmin) error {
	result := r.db.conn(ctx).Model(&userAdminRecord{}).Where("id = ?", u.ID).Updates(map[string]any{
		"name":     u.Name,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
		"active":   u.Active,
	})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUserAdminExists
		}
		return fmt.Errorf("update user admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserAdminNotFound
	}
	return nil
}

func (r *UserAdminRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := r.db.conn(ctx).Model(&userAdminRecord{}).Where("id = ?", id).
		UpdateColumn("password_hash", passwordHash)
	if result.Error != nil {
		return fmt.Errorf("update password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserAdminNotFound
	}
	return nil
}

func (r *UserAdminRepository) Deactivate(ctx context.Context, id int64) error {
	result := r.db.conn(ctx).Model(&userAdminRecord{}).Where("id = ?", id).
		UpdateColumn("active", false)
	if result.Error != nil {
		return fmt.Errorf("deactivate user admin: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrUserAdminNotFound
	}
	return nil
}

func (r *UserAdminRepository) TouchLastLogin(ctx context.Context, id int64, at time.Time) error {
	return r.db.conn(ctx).Model(&userAdminRecord{}).Where("id = ?", id).
		UpdateColumn("last_login", at).Error
}
