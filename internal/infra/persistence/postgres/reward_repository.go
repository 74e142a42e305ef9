package postgres

import (
	"context"
	"time"

	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint and index names referenced when mapping violations to domain errors.
const (
	claimCodeIndexName     = "uniq_rewards_business_claim_code"
	pendingRewardIndexName = "uniq_rewards_pending_per_customer"
)

// rewardRepository implements the repository.RewardRepository interface.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{
		db: db,
	}
}

// Create persists a new pending reward. The database constraints, not a prior
// read, decide whether the claim code collides or the customer already holds
// a pending reward.
func (repo *rewardRepository) Create(ctx context.Context, reward *entity.Reward) error {
	rewardM := fromRewardDomain(reward)

	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, pendingRewardIndexName) {
				return repository.ErrPendingRewardExists
			}
			// The claim-code index is the only other unique constraint on
			// this table, so an unnamed duplicate means a code collision.
			return repository.ErrClaimCodeTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create reward")
	}

	// Update the entity with generated values
	reward.ID = rewardM.ID
	reward.CreatedAt = rewardM.CreatedAt

	return nil
}

// FindPending retrieves the pending reward of a customer, if any.
func (repo *rewardRepository) FindPending(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND customer_id = ? AND status = ?",
			businessID, customerID, string(entity.RewardStatusPending)).
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find pending reward")
	}

	return toRewardDomain(&rewardM), nil
}

// FindByClaimCode retrieves a reward by claim code regardless of status.
func (repo *rewardRepository) FindByClaimCode(ctx context.Context, businessID uuid.UUID, claimCode string) (*entity.Reward, error) {
	var rewardM model.RewardModel

	if err := repo.db.WithContext(ctx).
		Where("business_id = ? AND claim_code = ?", businessID, claimCode).
		First(&rewardM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by claim code")
	}

	return toRewardDomain(&rewardM), nil
}

// Complete transitions a pending reward to completed with a single conditional
// UPDATE. The status predicate makes redemption single-use under concurrency:
// of two simultaneous claims, exactly one matches a pending row.
func (repo *rewardRepository) Complete(ctx context.Context, businessID uuid.UUID, claimCode string, claimedAt time.Time) (*entity.Reward, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("business_id = ? AND claim_code = ? AND status = ?",
			businessID, claimCode, string(entity.RewardStatusPending)).
		Updates(map[string]any{
			"status":     string(entity.RewardStatusCompleted),
			"claimed_at": claimedAt,
		})

	if result.Error != nil {
		return nil, errors.Wrap(result.Error, "failed to complete reward")
	}

	if result.RowsAffected == 0 {
		// Zero rows means either the code does not exist or the reward has
		// already been claimed. Re-read to tell the two apart.
		if _, err := repo.FindByClaimCode(ctx, businessID, claimCode); err != nil {
			return nil, err
		}

		return nil, repository.ErrRewardNotPending
	}

	return repo.FindByClaimCode(ctx, businessID, claimCode)
}

// FindByBusiness lists rewards of a business, optionally filtered by status, newest first.
func (repo *rewardRepository) FindByBusiness(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus, limit, offset int) ([]*entity.Reward, error) {
	query := repo.db.WithContext(ctx).
		Where("business_id = ?", businessID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var rewardModels []*model.RewardModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rewardModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find rewards by business")
	}

	rewards := make([]*entity.Reward, 0, len(rewardModels))
	for _, rewardM := range rewardModels {
		rewards = append(rewards, toRewardDomain(rewardM))
	}

	return rewards, nil
}

// CountByBusiness returns reward counts for a business, optionally filtered by status.
func (repo *rewardRepository) CountByBusiness(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus) (int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.RewardModel{}).
		Where("business_id = ?", businessID)
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count rewards by business")
	}

	return count, nil
}

// toRewardDomain converts a GORM model to a domain entity.
func toRewardDomain(rewardM *model.RewardModel) *entity.Reward {
	return &entity.Reward{
		ID:         rewardM.ID,
		BusinessID: rewardM.BusinessID,
		CustomerID: rewardM.CustomerID,
		ClaimCode:  rewardM.ClaimCode,
		Status:     entity.RewardStatus(rewardM.Status),
		Title:      rewardM.Title,
		PointsUsed: rewardM.PointsUsed,
		CreatedAt:  rewardM.CreatedAt,
		ClaimedAt:  rewardM.ClaimedAt,
	}
}

// fromRewardDomain converts a domain entity to a GORM model.
func fromRewardDomain(reward *entity.Reward) *model.RewardModel {
	return &model.RewardModel{
		ID:         reward.ID,
		BusinessID: reward.BusinessID,
		CustomerID: reward.CustomerID,
		ClaimCode:  reward.ClaimCode,
		Status:     string(reward.Status),
		Title:      reward.Title,
		PointsUsed: reward.PointsUsed,
		CreatedAt:  reward.CreatedAt,
		ClaimedAt:  reward.ClaimedAt,
	}
}
