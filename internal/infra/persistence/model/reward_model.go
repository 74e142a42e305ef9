package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardModel mirrors the 'rewards' table. Claim codes are unique within a
// business via the composite unique index; the migration additionally creates
// a partial unique index
//
//	CREATE UNIQUE INDEX uniq_rewards_pending_per_customer
//	ON rewards (business_id, customer_id) WHERE status = 'pending'
//
// which GORM tags cannot express. Both constraints surface as duplicate-key
// errors and are mapped to domain errors in the repository.
type RewardModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BusinessID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:uniq_rewards_business_claim_code"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	ClaimCode  string    `gorm:"type:char(6);not null;uniqueIndex:uniq_rewards_business_claim_code"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Title      string    `gorm:"type:varchar(255);not null"`
	PointsUsed int       `gorm:"not null"`
	CreatedAt  time.Time
	ClaimedAt  *time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}
