package postgres

import (
	"time"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

// Record types mirror the table layout; converters keep gorm tags out of
// the domain package.

type userAdminRecord struct {
	ID           int64  `gorm:"primaryKey"`
	Name         string `gorm:"not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Email        string `gorm:"not null"`
	Role         string `gorm:"not null"`
	Active       bool   `gorm:"not null;default:true"`
	LastLogin    *time.Time
}

func (userAdminRecord) TableName() string { return "user_admin" }

func (r *userAdminRecord) toDomain() *domain.UserAdmin {
	return &domain.UserAdmin{
		ID:           r.ID,
		Name:         r.Name,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Email:        r.Email,
		Role:         r.Role,
		Active:       r.Active,
		LastLogin:    r.LastLogin,
	}
}

type companyRecord struct {
	ID        int64  `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;not null"`
	Associate bool   `gorm:"not null;default:false"`
	Active    bool   `gorm:"not null;default:true"`
}

func (companyRecord) TableName() string { return "company" }

func (r *companyRecord) toDomain() *domain.Company {
	return &domain.Company{ID: r.ID, Name: r.Name, Associate: r.Associate, Active: r.Active}
}

type categoryRecord struct {
	ID     int64  `gorm:"primaryKey"`
	Name   string `gorm:"uniqueIndex;not null"`
	Active bool   `gorm:"not null;default:true"`
}

func (categoryRecord) TableName() string { return "category" }

func (r *categoryRecord) toDomain() *domain.Category {
	return &domain.Category{ID: r.ID, Name: r.Name, Active: r.Active}
}

type associationRecord struct {
	ID         int64 `gorm:"primaryKey"`
	CompanyID  int64 `gorm:"not null;uniqueIndex:idx_company_category"`
	CategoryID int64 `gorm:"not null;uniqueIndex:idx_company_category"`
}

func (associationRecord) TableName() string { return "company_category" }

func (r *associationRecord) toDomain() *domain.Association {
	return &domain.Association{ID: r.ID, CompanyID: r.CompanyID, CategoryID: r.CategoryID}
}

type userAdminLogRecord struct {
	ID          int64              `gorm:"primaryKey"`
	UserAdminID int64              `gorm:"not null;index"`
	Action      domain.AuditAction `gorm:"not null"`
	OldValue    string             `gorm:"type:jsonb"`
	NewValue    string             `gorm:"type:jsonb"`
	Date        time.Time          `gorm:"not null"`
	UserID      int64              `gorm:"not null"`
}

func (userAdminLogRecord) TableName() string { return "user_admin_log" }

type companyLogRecord struct {
	ID        int64              `gorm:"primaryKey"`
	CompanyID int64              `gorm:"not null;index"`
	Action    domain.AuditAction `gorm:"not null"`
	OldValue  string             `gorm:"type:jsonb"`
	NewValue  string             `gorm:"type:jsonb"`
	Date      time.Time          `gorm:"not null"`
	UserID    int64              `gorm:"not null"`
}

func (companyLogRecord) TableName() string { return "company_log" }

type categoryLogRecord struct {
	ID         int64              `gorm:"primaryKey"`
	CategoryID int64              `gorm:"not null;index"`
	Action     domain.AuditAction `gorm:"not null"`
	OldValue   string             `gorm:"type:jsonb"`
	NewValue   string             `gorm:"type:jsonb"`
	Date       time.Time          `gorm:"not null"`
	UserID     int64              `gorm:"not null"`
}

func (categoryLogRecord) TableName() string { return "category_log" }

type associationLogRecord struct {
	ID         int64              `gorm:"primaryKey"`
	CompanyID  int64              `gorm:"not null;index"`
	CategoryID int64              `gorm:"not null;index"`
	Action     domain.AuditAction `gorm:"not null"`
	Date       time.Time          `gorm:"not null"`
	UserID     int64              `gorm:"not null"`
}

func (associationLogRecord) TableName() string { return "company_category_log" }
