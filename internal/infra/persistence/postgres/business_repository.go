// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// FindByID retrieves a single business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM), nil
}

// FindByEmail retrieves a single business by its login email.
func (repo *businessRepository) FindByEmail(ctx context.Context, email string) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by email")
	}

	return toBusinessDomain(&businessM), nil
}

// Create persists a new business entity to the storage.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM := fromBusinessDomain(business)

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateBusinessEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required business information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Update the entity with generated values
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// UpdateSettings persists the mutable loyalty settings of a business.
func (repo *businessRepository) UpdateSettings(ctx context.Context, business *entity.Business) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BusinessModel{}).
		Where("id = ?", business.ID).
		Updates(map[string]any{
			"name":               business.Name,
			"visit_goal":         business.VisitGoal,
			"reward_title":       business.RewardTitle,
			"reward_description": business.RewardDescription,
			"plan":               business.Plan,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update business settings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBusinessNotFound
	}

	return nil
}

// toBusinessDomain converts a GORM model to a domain entity.
func toBusinessDomain(businessM *model.BusinessModel) *entity.Business {
	return &entity.Business{
		ID:                businessM.ID,
		Email:             businessM.Email,
		Name:              businessM.Name,
		PasswordHash:      businessM.PasswordHash,
		VisitGoal:         businessM.VisitGoal,
		RewardTitle:       businessM.RewardTitle,
		RewardDescription: businessM.RewardDescription,
		Plan:              businessM.Plan,
		CreatedAt:         businessM.CreatedAt,
		UpdatedAt:         businessM.UpdatedAt,
	}
}

// fromBusinessDomain converts a domain entity to a GORM model.
func fromBusinessDomain(business *entity.Business) *model.BusinessModel {
	return &model.BusinessModel{
		ID:                business.ID,
		Email:             business.Email,
		Name:              business.Name,
		PasswordHash:      business.PasswordHash,
		VisitGoal:         business.VisitGoal,
		RewardTitle:       business.RewardTitle,
		RewardDescription: business.RewardDescription,
		Plan:              business.Plan,
		CreatedAt:         business.CreatedAt,
		UpdatedAt:         business.UpdatedAt,
	}
}
