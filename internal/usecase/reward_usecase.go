package usecase

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// IssueRewardOutput returns the customer's pending reward. AlreadyPending is
// set when the customer already held a pending reward and no new one was minted.
type IssueRewardOutput struct {
	Reward         *entity.Reward
	AlreadyPending bool
}

// ClaimRewardOutput returns the redeemed reward and the customer whose visit
// counter was reset by the redemption.
type ClaimRewardOutput struct {
	Reward   *entity.Reward
	Customer *entity.Customer
}

// ClaimPreview carries the display data for the public claim page: the reward
// plus the names needed to render it without further lookups.
type ClaimPreview struct {
	Reward            *entity.Reward
	CustomerName      string
	BusinessName      string
	RewardTitle       string
	RewardDescription string
}

// RewardUsecase defines the interface for the reward lifecycle: issuing a
// claim-coded reward once the visit goal is met, and redeeming it exactly once.
type RewardUsecase interface {
	// IssueReward mints a pending reward for an eligible customer. Idempotent:
	// a customer with a pending reward gets that reward back unchanged.
	IssueReward(ctx context.Context, businessID, customerID uuid.UUID) (*IssueRewardOutput, error)

	// ClaimReward redeems a pending reward by claim code and resets the
	// customer's visit counter in the same transaction.
	ClaimReward(ctx context.Context, businessID uuid.UUID, claimCode string) (*ClaimRewardOutput, error)

	// GetClaimPreview looks up the reward behind a claim code for the public
	// claim page, without changing any state.
	GetClaimPreview(ctx context.Context, businessID uuid.UUID, claimCode string) (*ClaimPreview, error)

	// ListRewards retrieves the rewards of a business, optionally filtered by
	// status, with pagination.
	ListRewards(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus, limit, offset int) ([]*entity.Reward, error)
}
