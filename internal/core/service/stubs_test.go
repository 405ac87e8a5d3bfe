package service

import (
	"context"
	"time"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

// stubTx satisfies ports.TxRunner without a real store. Rollback is not
// modelled; tests assert on error propagation instead.
type stubTx struct{}

func (stubTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func cloneUserAdmin(u *domain.UserAdmin) *domain.UserAdmin {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

type stubUserAdminRepo struct {
	users  map[int64]*domain.UserAdmin
	nextID int64
}

func newStubUserAdminRepo() *stubUserAdminRepo {
	return &stubUserAdminRepo{users: make(map[int64]*domain.UserAdmin), nextID: 1}
}

func (r *stubUserAdminRepo) Create(_ context.Context, u *domain.UserAdmin) (*domain.UserAdmin, error) {
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, domain.ErrUserAdminExists
		}
	}
	created := cloneUserAdmin(u)
	created.ID = r.nextID
	r.nextID++
	r.users[created.ID] = cloneUserAdmin(created)
	return created, nil
}

func (r *stubUserAdminRepo) FindByID(_ context.Context, id int64) (*domain.UserAdmin, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserAdminNotFound
	}
	return cloneUserAdmin(u), nil
}

func (r *stubUserAdminRepo) FindByUsername(_ context.Context, username string) (*domain.UserAdmin, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUserAdmin(u), nil
		}
	}
	return nil, domain.ErrUserAdminNotFound
}

func (r *stubUserAdminRepo) List(_ context.Context) ([]domain.UserAdmin, error) {
	out := make([]domain.UserAdmin, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *cloneUserAdmin(u))
	}
	return out, nil
}

func (r *stubUserAdminRepo) Update(_ context.Context, u *domain.UserAdmin) error {
	existing, ok := r.users[u.ID]
	if !ok {
		return domain.ErrUserAdminNotFound
	}
	existing.Name = u.Name
	existing.Username = u.Username
	existing.Email = u.Email
	existing.Role = u.Role
	existing.Active = u.Active
	return nil
}

func (r *stubUserAdminRepo) UpdatePassword(_ context.Context, id int64, hash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserAdminNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (r *stubUserAdminRepo) Deactivate(_ context.Context, id int64) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserAdminNotFound
	}
	u.Active = false
	return nil
}

func (r *stubUserAdminRepo) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserAdminNotFound
	}
	u.LastLogin = &at
	return nil
}

type stubCompanyRepo struct {
	companies map[int64]*domain.Company
	nextID    int64
}

func newStubCompanyRepo() *stubCompanyRepo {
	return &stubCompanyRepo{companies: make(map[int64]*domain.Company), nextID: 1}
}

func (r *stubCompanyRepo) Create(_ context.Context, c *domain.Company) (*domain.Company, error) {
	for _, existing := range r.companies {
		if existing.Name == c.Name {
			return nil, domain.ErrCompanyExists
		}
	}
	created := *c
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.companies[created.ID] = &stored
	return &created, nil
}

func (r *stubCompanyRepo) FindByID(_ context.Context, id int64) (*domain.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return nil, domain.ErrCompanyNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCompanyRepo) FindByName(_ context.Context, name string) (*domain.Company, error) {
	for _, c := range r.companies {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCompanyNotFound
}

func (r *stubCompanyRepo) List(_ context.Context) ([]domain.Company, error) {
	out := make([]domain.Company, 0, len(r.companies))
	for _, c := range r.companies {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCompanyRepo) Update(_ context.Context, c *domain.Company) error {
	existing, ok := r.companies[c.ID]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	existing.Name = c.Name
	existing.Associate = c.Associate
	existing.Active = c.Active
	return nil
}

func (r *stubCompanyRepo) ToggleActive(_ context.Context, id int64) error {
	c, ok := r.companies[id]
	if !ok {
		return domain.ErrCompanyNotFound
	}
	c.Active = !c.Active
	return nil
}

type stubCategoryRepo struct {
	categories map[int64]*domain.Category
	nextID     int64
}

func newStubCategoryRepo() *stubCategoryRepo {
	return &stubCategoryRepo{categories: make(map[int64]*domain.Category), nextID: 1}
}

func (r *stubCategoryRepo) Create(_ context.Context, c *domain.Category) (*domain.Category, error) {
	for _, existing := range r.categories {
		if existing.Name == c.Name {
			return nil, domain.ErrCategoryExists
		}
	}
	created := *c
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.categories[created.ID] = &stored
	return &created, nil
}

func (r *stubCategoryRepo) FindByID(_ context.Context, id int64) (*domain.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCategoryRepo) FindByName(_ context.Context, name string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			clone := *c
			return &clone, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (r *stubCategoryRepo) List(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(r.categories))
	for _, c := range r.categories {
		if c.Active {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Update(_ context.Context, c *domain.Category) error {
	existing, ok := r.categories[c.ID]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	existing.Name = c.Name
	existing.Active = c.Active
	return nil
}

func (r *stubCategoryRepo) ToggleActive(_ context.Context, id int64) error {
	c, ok := r.categories[id]
	if !ok {
		return domain.ErrCategoryNotFound
	}
	c.Active = !c.Active
	return nil
}

type stubAssociationRepo struct {
	links  map[int64]*domain.Association
	nextID int64
	rows   []domain.AssociationRow
}

func newStubAssociationRepo() *stubAssociationRepo {
	return &stubAssociationRepo{links: make(map[int64]*domain.Association), nextID: 1}
}

func (r *stubAssociationRepo) Create(_ context.Context, a *domain.Association) (*domain.Association, error) {
	for _, existing := range r.links {
		if existing.CompanyID == a.CompanyID && existing.CategoryID == a.CategoryID {
			return nil, domain.ErrAssociationExists
		}
	}
	created := *a
	created.ID = r.nextID
	r.nextID++
	stored := created
	r.links[created.ID] = &stored
	return &created, nil
}

func (r *stubAssociationRepo) Find(_ context.Context, companyID, categoryID int64) (*domain.Association, error) {
	for _, existing := range r.links {
		if existing.CompanyID == companyID && existing.CategoryID == categoryID {
			clone := *existing
			return &clone, nil
		}
	}
	return nil, domain.ErrAssociationNotFound
}

func (r *stubAssociationRepo) ListDetailed(_ context.Context, filter ports.AssociationFilter) ([]domain.AssociationRow, error) {
	out := make([]domain.AssociationRow, 0, len(r.rows))
	for _, row := range r.rows {
		if filter.CompanyID != nil && row.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.CategoryID != nil && row.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *stubAssociationRepo) Delete(_ context.Context, companyID, categoryID int64) error {
	for id, existing := range r.links {
		if existing.CompanyID == companyID && existing.CategoryID == categoryID {
			delete(r.links, id)
			return nil
		}
	}
	return domain.ErrAssociationNotFound
}

// stubAuditRepo records every entry in memory. Setting failNext makes
// the next write fail, for exercising the pipeline's abort behaviour.
type stubAuditRepo struct {
	userAdminLogs   []domain.UserAdminLog
	companyLogs     []domain.CompanyLog
	categoryLogs    []domain.CategoryLog
	associationLogs []domain.AssociationLog
	failNext        error
}

func newStubAuditRepo() *stubAuditRepo {
	return &stubAuditRepo{}
}

func (r *stubAuditRepo) takeFailure() error {
	err := r.failNext
	r.failNext = nil
	return err
}

func (r *stubAuditRepo) CreateUserAdminLog(_ context.Context, entry *domain.UserAdminLog) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	r.userAdminLogs = append(r.userAdminLogs, *entry)
	return nil
}

func (r *stubAuditRepo) CreateCompanyLog(_ context.Context, entry *domain.CompanyLog) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	r.companyLogs = append(r.companyLogs, *entry)
	return nil
}

func (r *stubAuditRepo) CreateCategoryLog(_ context.Context, entry *domain.CategoryLog) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	r.categoryLogs = append(r.categoryLogs, *entry)
	return nil
}

func (r *stubAuditRepo) CreateAssociationLog(_ context.Context, entry *domain.AssociationLog) error {
	if err := r.takeFailure(); err != nil {
		return err
	}
	r.associationLogs = append(r.associationLogs, *entry)
	return nil
}

func (r *stubAuditRepo) UserAdminLogs(_ context.Context, subjectID *int64) ([]domain.UserAdminLog, error) {
	out := make([]domain.UserAdminLog, 0, len(r.userAdminLogs))
	for _, e := range r.userAdminLogs {
		if subjectID == nil || e.SubjectID == *subjectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubAuditRepo) CompanyLogs(_ context.Context, subjectID *int64) ([]domain.CompanyLog, error) {
	out := make([]domain.CompanyLog, 0, len(r.companyLogs))
	for _, e := range r.companyLogs {
		if subjectID == nil || e.SubjectID == *subjectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubAuditRepo) CategoryLogs(_ context.Context, subjectID *int64) ([]domain.CategoryLog, error) {
	out := make([]domain.CategoryLog, 0, len(r.categoryLogs))
	for _, e := range r.categoryLogs {
		if subjectID == nil || e.SubjectID == *subjectID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubAuditRepo) AssociationLogs(_ context.Context, filter ports.AssociationFilter) ([]domain.AssociationLog, error) {
	out := make([]domain.AssociationLog, 0, len(r.associationLogs))
	for _, e := range r.associationLogs {
		if filter.CompanyID != nil && e.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.CategoryID != nil && e.CategoryID != *filter.CategoryID {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
