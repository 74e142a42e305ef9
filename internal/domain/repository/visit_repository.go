package repository

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// VisitRepository defines the operations for the append-only visit log.
// There is deliberately no update or delete: visit rows are immutable history.
type VisitRepository interface {
	// Create appends one visit event.
	Create(ctx context.Context, visit *entity.Visit) error

	// FindByCustomer retrieves the visit history of a customer, newest first.
	FindByCustomer(ctx context.Context, businessID, customerID uuid.UUID, limit, offset int) ([]*entity.Visit, error)

	// CountByBusiness returns the total number of recorded visits for a business.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
