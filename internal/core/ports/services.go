package ports

import (
	"context"

	"github.com/partnerhub/admin-api/internal/core/domain"
)

// LoginService authenticates an administrator and issues a session token.
type LoginService interface {
	Login(ctx context.Context, username, password string) (string, *domain.UserAdmin, error)
}

// CreateUserAdminInput carries the payload for registering an admin.
// Validation tags mirror the admission rules enforced by the schema
// validator: full name with at least two words and letters only,
// username restricted to word characters plus dot and dash, and a
// password with the full strength rule set.
type CreateUserAdminInput struct {
	Name     string `validate:"required,person_name"`
	Username string `validate:"required,login_name"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required"`
	Password string `validate:"required,strong_password"`
}

type UpdateUserAdminInput struct {
	ID       int64  `validate:"required,gt=0"`
	Name     string `validate:"required,person_name"`
	Username string `validate:"required,login_name"`
	Email    string `validate:"required,email"`
	Role     string `validate:"required"`
	Active   bool
}

type AlterPasswordInput struct {
	ID       int64  `validate:"required,gt=0"`
	Password string `validate:"required,strong_password"`
}

type UserAdminService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateUserAdminInput) (*domain.UserAdmin, error)
	SearchAll(ctx context.Context) ([]domain.UserAdmin, error)
	SearchByID(ctx context.Context, id int64) (*domain.UserAdmin, error)
	SearchByUsername(ctx context.Context, username string) (*domain.UserAdmin, error)
	Update(ctx context.Context, actor domain.Actor, input UpdateUserAdminInput) (*domain.UserAdmin, error)
	AlterPassword(ctx context.Context, actor domain.Actor, input AlterPasswordInput) error
	Delete(ctx context.Context, actor domain.Actor, id int64) error
}

type CreateCompanyInput struct {
	Name string `validate:"required,entity_name"`
}

type UpdateCompanyInput struct {
	ID        int64  `validate:"required,gt=0"`
	Name      string `validate:"required,entity_name"`
	Associate bool
	Active    bool
}

type CompanyService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateCompanyInput) (*domain.Company, error)
	SearchAll(ctx context.Context) ([]domain.Company, error)
	SearchByID(ctx context.Context, id int64) (*domain.Company, error)
	SearchByName(ctx context.Context, name string) (*domain.Company, error)
	Update(ctx context.Context, actor domain.Actor, input UpdateCompanyInput) (*domain.Company, error)
	ChangeStatus(ctx context.Context, actor domain.Actor, id int64) (*domain.Company, error)
}

// CompanyAssociateMarker is the narrow slice of the company service the
// association service needs: flipping the associate flag through the
// company's own update path so a company audit entry is emitted too.
type CompanyAssociateMarker interface {
	MarkAssociate(ctx context.Context, actor domain.Actor, id int64) error
}

type CreateCategoryInput struct {
	Name string `validate:"required,entity_name"`
}

type UpdateCategoryInput struct {
	ID     int64  `validate:"required,gt=0"`
	Name   string `validate:"required,entity_name"`
	Active bool
}

type CategoryService interface {
	Create(ctx context.Context, actor domain.Actor, input CreateCategoryInput) (*domain.Category, error)
	SearchAll(ctx context.Context) ([]domain.Category, error)
	SearchByID(ctx context.Context, id int64) (*domain.Category, error)
	SearchByName(ctx context.Context, name string) (*domain.Category, error)
	Update(ctx context.Context, actor domain.Actor, input UpdateCategoryInput) (*domain.Category, error)
	ChangeStatus(ctx context.Context, actor domain.Actor, id int64) (*domain.Category, error)
}

type AssociationInput struct {
	CompanyID  int64 `validate:"required,gt=0"`
	CategoryID int64 `validate:"required,gt=0"`
}

type AssociationService interface {
	Create(ctx context.Context, actor domain.Actor, input AssociationInput) (*domain.Association, error)
	SearchAll(ctx context.Context) ([]domain.CategoryAssociations, error)
	SearchByCategory(ctx context.Context, categoryID int64) (*domain.CategoryAssociations, error)
	SearchByCompany(ctx context.Context, companyID int64) ([]domain.CategoryAssociations, error)
	Delete(ctx context.Context, actor domain.Actor, input AssociationInput) error
}

// AuditService is the read side of the audit trail.
type AuditService interface {
	UserAdminLogs(ctx context.Context, subjectID *int64) ([]domain.UserAdminLog, error)
	CompanyLogs(ctx context.Context, subjectID *int64) ([]domain.CompanyLog, error)
	CategoryLogs(ctx context.Context, subjectID *int64) ([]domain.CategoryLog, error)
	AssociationLogs(ctx context.Context, filter AssociationFilter) ([]domain.AssociationLog, error)
}
