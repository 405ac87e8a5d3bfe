package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
)

type associationFixture struct {
	svc      *AssociationService
	links    *stubAssociationRepo
	company  *domain.Company
	category *domain.Category
	repo     *stubCompanyRepo
	audit    *stubAuditRepo
}

func newAssociationFixture(t *testing.T) *associationFixture {
	t.Helper()

	companies := newStubCompanyRepo()
	categories := newStubCategoryRepo()
	links := newStubAssociationRepo()
	audit := newStubAuditRepo()

	companySvc := NewCompanyService(companies, audit, stubTx{}, zerolog.Nop())
	categorySvc := NewCategoryService(categories, audit, stubTx{}, zerolog.Nop())

	company, err := companySvc.Create(context.Background(), testActor, ports.CreateCompanyInput{Name: "Acme Logistics"})
	if err != nil {
		t.Fatalf("seed company: %v", err)
	}
	category, err := categorySvc.Create(context.Background(), testActor, ports.CreateCategoryInput{Name: "Freight"})
	if err != nil {
		t.Fatalf("seed category: %v", err)
	}
	audit.companyLogs = nil
	audit.categoryLogs = nil

	svc := NewAssociationService(links, companies, categories, companySvc, audit, stubTx{}, zerolog.Nop())
	return &associationFixture{
		svc:      svc,
		links:    links,
		company:  company,
		category: category,
		repo:     companies,
		audit:    audit,
	}
}

func TestAssociationService_Create_FirstLinkMarksAssociate(t *testing.T) {
	f := newAssociationFixture(t)

	link, err := f.svc.Create(context.Background(), testActor, ports.AssociationInput{
		CompanyID:  f.company.ID,
		CategoryID: f.category.ID,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if link.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	if !f.repo.companies[f.company.ID].Associate {
		t.Fatalf("expected company associate flag to be set")
	}
	if len(f.audit.associationLogs) != 1 {
		t.Fatalf("expected one association entry, got %d", len(f.audit.associationLogs))
	}
	if f.audit.associationLogs[0].Action != domain.ActionCreate {
		t.Fatalf("expected create action, got %s", f.audit.associationLogs[0].Action)
	}
	if len(f.audit.companyLogs) != 1 {
		t.Fatalf("expected one company entry for the flag flip, got %d", len(f.audit.companyLogs))
	}
	if f.audit.companyLogs[0].Action != domain.ActionUpdate {
		t.Fatalf("expected update action on company, got %s", f.audit.companyLogs[0].Action)
	}
}

func TestAssociationService_Create_SecondLinkSkipsCompanyEntry(t *testing.T) {
	f := newAssociationFixture(t)

	categories := f.svc.categories.(*stubCategoryRepo)
	second, err := categories.Create(context.Background(), &domain.Category{Name: "Storage", Active: true})
	if err != nil {
		t.Fatalf("seed second category: %v", err)
	}

	if _, err := f.svc.Create(context.Background(), testActor, ports.AssociationInput{
		CompanyID:  f.company.ID,
		CategoryID: f.category.ID,
	}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), testActor, ports.AssociationInput{
		CompanyID:  f.company.ID,
		CategoryID: second.ID,
	}); err != nil {
		t.Fatalf("second create: %v", err)
	}

	if len(f.audit.associationLogs) != 2 {
		t.Fatalf("expected two association entries, got %d", len(f.audit.associationLogs))
	}
	if len(f.audit.companyLogs) != 1 {
		t.Fatalf("associate flag flips once, expected one company entry, got %d", len(f.audit.companyLogs))
	}
}

func TestAssociationService_Create_DuplicatePair(t *testing.T) {
	f := newAssociationFixture(t)

	input := ports.AssociationInput{CompanyID: f.company.ID, CategoryID: f.category.ID}
	if _, err := f.svc.Create(context.Background(), testActor, input); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := f.svc.Create(context.Background(), testActor, input); !errors.Is(err, domain.ErrAssociationExists) {
		t.Fatalf("expected ErrAssociationExists, got %v", err)
	}
	if len(f.audit.associationLogs) != 1 {
		t.Fatalf("duplicate must not log, have %d entries", len(f.audit.associationLogs))
	}
}

func TestAssociationService_Create_MissingEndpoints(t *testing.T) {
	f := newAssociationFixture(t)

	_, err := f.svc.Create(context.Background(), testActor, ports.AssociationInput{
		CompanyID:  4242,
		CategoryID: f.category.ID,
	})
	if !errors.Is(err, domain.ErrCompanyNotFound) {
		t.Fatalf("expected ErrCompanyNotFound, got %v", err)
	}

	_, err = f.svc.Create(context.Background(), testActor, ports.AssociationInput{
		CompanyID:  f.company.ID,
		CategoryID: 4242,
	})
	if !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
	if len(f.audit.associationLogs) != 0 {
		t.Fatalf("failed creates must not log, have %d entries", len(f.audit.associationLogs))
	}
}

func TestAssociationService_Delete(t *testing.T) {
	f := newAssociationFixture(t)

	input := ports.AssociationInput{CompanyID: f.company.ID, CategoryID: f.category.ID}
	if _, err := f.svc.Create(context.Background(), testActor, input); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := f.svc.Delete(context.Background(), testActor, input); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(f.links.links) != 0 {
		t.Fatalf("expected link to be removed")
	}

	last := f.audit.associationLogs[len(f.audit.associationLogs)-1]
	if last.Action != domain.ActionDelete {
		t.Fatalf("expected delete action, got %s", last.Action)
	}

	if err := f.svc.Delete(context.Background(), testActor, input); !errors.Is(err, domain.ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound, got %v", err)
	}
}

func TestAssociationService_SearchByCompanyGroupsByCategory(t *testing.T) {
	f := newAssociationFixture(t)
	f.links.rows = []domain.AssociationRow{
		{CategoryID: 1, CategoryName: "Freight", CategoryActive: true, CompanyID: 1, CompanyName: "Acme Logistics", CompanyAssociate: true, CompanyActive: true},
		{CategoryID: 1, CategoryName: "Freight", CategoryActive: true, CompanyID: 2, CompanyName: "Beta Freight", CompanyAssociate: true, CompanyActive: true},
		{CategoryID: 2, CategoryName: "Storage", CategoryActive: true, CompanyID: 1, CompanyName: "Acme Logistics", CompanyAssociate: true, CompanyActive: true},
	}

	grouped, err := f.svc.SearchAll(context.Background())
	if err != nil {
		t.Fatalf("search all: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("expected two categories, got %d", len(grouped))
	}
	if grouped[0].Category.Name != "Freight" || len(grouped[0].Companies) != 2 {
		t.Fatalf("unexpected first group: %+v", grouped[0])
	}
	if grouped[1].Category.Name != "Storage" || len(grouped[1].Companies) != 1 {
		t.Fatalf("unexpected second group: %+v", grouped[1])
	}

	byCompany, err := f.svc.SearchByCompany(context.Background(), 2)
	if err != nil {
		t.Fatalf("search by company: %v", err)
	}
	if len(byCompany) != 1 || len(byCompany[0].Companies) != 1 || byCompany[0].Companies[0].Name != "Beta Freight" {
		t.Fatalf("unexpected company filter result: %+v", byCompany)
	}
}

func TestAssociationService_SearchByCategory_Empty(t *testing.T) {
	f := newAssociationFixture(t)

	if _, err := f.svc.SearchByCategory(context.Background(), 77); !errors.Is(err, domain.ErrAssociationNotFound) {
		t.Fatalf("expected ErrAssociationNotFound, got %v", err)
	}
}
