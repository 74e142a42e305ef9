package repository

import (
	"context"
	"errors"
	"time"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for reward persistence.
var (
	// ErrRewardNotFound is returned when no reward matches the lookup.
	ErrRewardNotFound = errors.New("reward not found")

	// ErrClaimCodeTaken is returned when the (business_id, claim_code) unique
	// constraint rejects an insert. Callers regenerate the code and retry.
	ErrClaimCodeTaken = errors.New("claim code already in use for this business")

	// ErrPendingRewardExists is returned when the partial unique index on
	// pending rewards rejects a second pending reward for the same customer.
	ErrPendingRewardExists = errors.New("customer already has a pending reward")

	// ErrRewardNotPending is returned when a claim matched a reward that has
	// already left the pending state.
	ErrRewardNotPending = errors.New("reward is not pending")
)

// RewardRepository defines the operations for reward persistence. Uniqueness of
// claim codes and the single-pending-reward rule are enforced by database
// constraints mapped to the errors above, never by read-then-write sequences.
type RewardRepository interface {
	// Create persists a new pending reward. Returns ErrClaimCodeTaken on a
	// claim-code collision and ErrPendingRewardExists when the customer already
	// holds a pending reward.
	Create(ctx context.Context, reward *entity.Reward) error

	// FindPending retrieves the pending reward of a customer, if any.
	FindPending(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Reward, error)

	// FindByClaimCode retrieves a reward by claim code regardless of status.
	FindByClaimCode(ctx context.Context, businessID uuid.UUID, claimCode string) (*entity.Reward, error)

	// Complete atomically transitions a pending reward to completed and stamps
	// claimed_at, returning the updated reward. Returns ErrRewardNotFound when
	// no reward carries the code and ErrRewardNotPending when the matching
	// reward was already claimed.
	Complete(ctx context.Context, businessID uuid.UUID, claimCode string, claimedAt time.Time) (*entity.Reward, error)

	// FindByBusiness lists rewards of a business, optionally filtered by status,
	// newest first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus, limit, offset int) ([]*entity.Reward, error)

	// CountByBusiness returns reward counts for a business grouped by status.
	CountByBusiness(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus) (int64, error)
}
