package postgres

import (
	"context"

	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// Create appends one visit event.
func (repo *visitRepository) Create(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	// Update the entity with generated values
	visit.ID = visitM.ID

	return nil
}

// FindByCustomer retrieves the visit history of a customer, newest first.
func (repo *visitRepository) FindByCustomer(ctx context.Context, businessID, customerID uuid.UUID, limit, offset int) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND customer_id = ?", businessID, customerID).
		Order("visited_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by customer")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// CountByBusiness returns the total number of recorded visits for a business.
func (repo *visitRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("business_id = ?", businessID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits by business")
	}

	return count, nil
}

// toVisitDomain converts a GORM model to a domain entity.
func toVisitDomain(visitM *model.VisitModel) *entity.Visit {
	return &entity.Visit{
		ID:           visitM.ID,
		BusinessID:   visitM.BusinessID,
		CustomerID:   visitM.CustomerID,
		PointsEarned: visitM.PointsEarned,
		VisitedAt:    visitM.VisitedAt,
	}
}

// fromVisitDomain converts a domain entity to a GORM model.
func fromVisitDomain(visit *entity.Visit) *model.VisitModel {
	return &model.VisitModel{
		ID:           visit.ID,
		BusinessID:   visit.BusinessID,
		CustomerID:   visit.CustomerID,
		PointsEarned: visit.PointsEarned,
		VisitedAt:    visit.VisitedAt,
	}
}
