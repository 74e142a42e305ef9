// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RewardStatus is the lifecycle state of a reward. The only legal transition
// is pending -> completed; a reward never moves backward.
type RewardStatus string

const (
	// RewardStatusPending marks a minted reward awaiting redemption.
	RewardStatusPending RewardStatus = "pending"

	// RewardStatusCompleted marks a redeemed reward. Terminal.
	RewardStatusCompleted RewardStatus = "completed"
)

// ClaimCodeLength is the number of ASCII digits in a claim code.
const ClaimCodeLength = 6

// Reward is a minted, single-use reward identified by a short numeric claim
// code. The code is unique within the issuing business, not globally.
type Reward struct {
	ID         uuid.UUID    `json:"id"`
	BusinessID uuid.UUID    `json:"business_id"`
	CustomerID uuid.UUID    `json:"customer_id"`
	ClaimCode  string       `json:"claim_code"` // Exactly six ASCII digits.
	Status     RewardStatus `json:"status"`
	Title      string       `json:"title"`       // Snapshot of the business reward title at mint time.
	PointsUsed int          `json:"points_used"` // Visits consumed by this reward (the goal at mint time).
	CreatedAt  time.Time    `json:"created_at"`
	ClaimedAt  *time.Time   `json:"claimed_at,omitempty"`
}

// IsPending reports whether the reward can still be redeemed.
func (r *Reward) IsPending() bool {
	return r.Status == RewardStatusPending
}
