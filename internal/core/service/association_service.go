package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/partnerhub/admin-api/internal/core/domain"
	"github.com/partnerhub/admin-api/internal/core/ports"
	"github.com/partnerhub/admin-api/internal/core/validation"
)

// AssociationService links companies to categories. Creating the first
// association of a company additionally flips the company's associate
// flag through the company service, so a company audit entry is written
// alongside the association entry, all in one transaction.
type AssociationService struct {
	repo       ports.AssociationRepository
	companies  ports.CompanyRepository
	categories ports.CategoryRepository
	marker     ports.CompanyAssociateMarker
	audit      ports.AuditRepository
	tx         ports.TxRunner
	logger     zerolog.Logger
}

func NewAssociationService(
	repo ports.AssociationRepository,
	companies ports.CompanyRepository,
	categories ports.CategoryRepository,
	marker ports.CompanyAssociateMarker,
	audit ports.AuditRepository,
	tx ports.TxRunner,
	logger zerolog.Logger,
) *AssociationService {
	return &AssociationService{
		repo:       repo,
		companies:  companies,
		categories: categories,
		marker:     marker,
		audit:      audit,
		tx:         tx,
		logger:     logger,
	}
}

func (s *AssociationService) Create(ctx context.Context, actor domain.Actor, input ports.AssociationInput) (*domain.Association, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	company, err := s.companies.FindByID(ctx, input.CompanyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categories.FindByID(ctx, input.CategoryID); err != nil {
		return nil, err
	}

	var created *domain.Association
	err = s.tx.InTx(ctx, func(ctx context.Context) error {
		link, err := s.repo.Create(ctx, &domain.Association{
			CompanyID:  input.CompanyID,
			CategoryID: input.CategoryID,
		})
		if err != nil {
			return err
		}
		created = link

		if err := s.audit.CreateAssociationLog(ctx, &domain.AssociationLog{
			CompanyID:  link.CompanyID,
			CategoryID: link.CategoryID,
			Action:     domain.ActionCreate,
			Date:       time.Now().UTC(),
			UserID:     actor.ID,
		}); err != nil {
			return err
		}

		if !company.Associate {
			return s.marker.MarkAssociate(ctx, actor, company.ID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("company_id", created.CompanyID).
		Int64("category_id", created.CategoryID).
		Int64("actor_id", actor.ID).
		Msg("association created")
	return created, nil
}

func (s *AssociationService) SearchAll(ctx context.Context) ([]domain.CategoryAssociations, error) {
	rows, err := s.repo.ListDetailed(ctx, ports.AssociationFilter{})
	if err != nil {
		return nil, err
	}
	return groupByCategory(rows), nil
}

func (s *AssociationService) SearchByCategory(ctx context.Context, categoryID int64) (*domain.CategoryAssociations, error) {
	rows, err := s.repo.ListDetailed(ctx, ports.AssociationFilter{CategoryID: &categoryID})
	if err != nil {
		return nil, err
	}
	grouped := groupByCategory(rows)
	if len(grouped) == 0 {
		return nil, domain.ErrAssociationNotFound
	}
	return &grouped[0], nil
}

func (s *AssociationService) SearchByCompany(ctx context.Context, companyID int64) ([]domain.CategoryAssociations, error) {
	rows, err := s.repo.ListDetailed(ctx, ports.AssociationFilter{CompanyID: &companyID})
	if err != nil {
		return nil, err
	}
	return groupByCategory(rows), nil
}

func (s *AssociationService) Delete(ctx context.Context, actor domain.Actor, input ports.AssociationInput) error {
	if err := validation.Struct(input); err != nil {
		return err
	}
	if _, err := s.repo.Find(ctx, input.CompanyID, input.CategoryID); err != nil {
		return err
	}

	return s.tx.InTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, input.CompanyID, input.CategoryID); err != nil {
			return err
		}
		return s.audit.CreateAssociationLog(ctx, &domain.AssociationLog{
			CompanyID:  input.CompanyID,
			CategoryID: input.CategoryID,
			Action:     domain.ActionDelete,
			Date:       time.Now().UTC(),
			UserID:     actor.ID,
		})
	})
}

// groupByCategory folds joined rows into one entry per category with its
// linked companies, preserving the row order within each group.
func groupByCategory(rows []domain.AssociationRow) []domain.CategoryAssociations {
	index := make(map[int64]int)
	grouped := make([]domain.CategoryAssociations, 0)

	for _, row := range rows {
		i, ok := index[row.CategoryID]
		if !ok {
			i = len(grouped)
			index[row.CategoryID] = i
			grouped = append(grouped, domain.CategoryAssociations{
				Category: domain.Category{
					ID:     row.CategoryID,
					Name:   row.CategoryName,
					Active: row.CategoryActive,
				},
			})
		}
		grouped[i].Companies = append(grouped[i].Companies, domain.Company{
			ID:        row.CompanyID,
			Name:      row.CompanyName,
			Associate: row.CompanyAssociate,
			Active:    row.CompanyActive,
		})
	}
	return grouped
}
