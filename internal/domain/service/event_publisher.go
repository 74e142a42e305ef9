package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// RewardEvent is published whenever a reward changes state. It carries
// everything the notification worker needs so the worker never has to read
// the database.
type RewardEvent struct {
	Type          string    `json:"type"`
	BusinessID    uuid.UUID `json:"businessId"`
	BusinessName  string    `json:"businessName"`
	CustomerID    uuid.UUID `json:"customerId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	RewardID      uuid.UUID `json:"rewardId"`
	RewardTitle   string    `json:"rewardTitle"`
	ClaimCode     string    `json:"claimCode"`
	OccurredAt    time.Time `json:"occurredAt"`
	RequestID     string    `json:"requestId,omitempty"`
}

// EventPublisher defines the interface for publishing reward events to a
// message broker for asynchronous processing.
type EventPublisher interface {
	// PublishRewardEvent sends a reward event. Delivery is at-least-once;
	// consumers must tolerate duplicates.
	PublishRewardEvent(ctx context.Context, event RewardEvent) error

	// Close releases broker resources.
	Close() error
}
