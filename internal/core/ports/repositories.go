package ports

import (
	"context"
	"time"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

// TxRunner executes fn inside a single store transaction. The transaction
// travels in the context, so every repository call made with the inner
// context joins it. A non-nil error from fn rolls everything back.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserAdminRepository persists administrative users. Create returns
// domain.ErrUserAdminExists when the username is already taken (unique
// constraint, surfaced as a typed conflict rather than a pre-check).
type UserAdminRepository interface {
	Create(ctx context.Context, u *domain.UserAdmin) (*domain.UserAdmin, error)
	FindByID(ctx context.Context, id int64) (*domain.UserAdmin, error)
	FindByUsername(ctx context.Context, username string) (*domain.UserAdmin, error)
	List(ctx context.Context) ([]domain.UserAdmin, error)
	Update(ctx context.Context, u *domain.UserAdmin) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Deactivate(ctx context.Context, id int64) error
	TouchLastLogin(ctx context.Context, id int64, at time.Time) error
}

type CompanyRepository interface {
	Create(ctx context.Context, c *domain.Company) (*domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	FindByName(ctx context.Context, name string) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	// ToggleActive flips the active flag in a single statement so that
	// concurrent toggles cannot lose an update.
	ToggleActive(ctx context.Context, id int64) error
}

type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id int64) (*domain.Category, error)
	FindByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Update(ctx context.Context, c *domain.Category) error
	ToggleActive(ctx context.Context, id int64) error
}

// AssociationFilter narrows the joined association view. Nil fields
// mean no filter.
type AssociationFilter struct {
	CompanyID  *int64
	CategoryID *int64
}

type AssociationRepository interface {
	Create(ctx context.Context, a *domain.Association) (*domain.Association, error)
	Find(ctx context.Context, companyID, categoryID int64) (*domain.Association, error)
	ListDetailed(ctx context.Context, filter AssociationFilter) ([]domain.AssociationRow, error)
	Delete(ctx context.Context, companyID, categoryID int64) error
}

// AuditRepository appends and reads audit entries. Writers are expected
// to be called inside the same transaction as the mutation they record.
type AuditRepository interface {
	CreateUserAdminLog(ctx context.Context, entry *domain.UserAdminLog) error
	CreateCompanyLog(ctx context.Context, entry *domain.CompanyLog) error
	CreateCategoryLog(ctx context.Context, entry *domain.CategoryLog) error
	CreateAssociationLog(ctx context.Context, entry *domain.AssociationLog) error

	// List methods return entries newest first. A nil subjectID returns
	// every entry of that kind.
	UserAdminLogs(ctx context.Context, subjectID *int64) ([]domain.UserAdminLog, error)
	CompanyLogs(ctx context.Context, subjectID *int64) ([]domain.CompanyLog, error)
	CategoryLogs(ctx context.Context, subjectID *int64) ([]domain.CategoryLog, error)
	AssociationLogs(ctx context.Context, filter AssociationFilter) ([]domain.AssociationLog, error)
}
