package usecase

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// RecordVisitOutput describes the customer's state after a check-in.
// ReachedGoal tells the caller the customer is now eligible for a reward;
// issuing the reward is a separate operation.
type RecordVisitOutput struct {
	Customer     *entity.Customer
	ReachedGoal  bool
	RewardNumber int
}

// VisitUsecase defines the interface for check-in operations.
type VisitUsecase interface {
	// RecordVisit increments the customer's visit counter, appends a visit
	// event, and evaluates the visit goal against the updated count.
	RecordVisit(ctx context.Context, businessID, customerID uuid.UUID) (*RecordVisitOutput, error)
}
