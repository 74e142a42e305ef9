package repository

import (
	"context"
	"errors"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found
// within the requesting business's scope.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrDuplicateCustomer is returned when a customer with the same contact already
// exists for the business.
var ErrDuplicateCustomer = errors.New("customer already exists for this business")

// CustomerRepository defines the standard operations for customer persistence.
// Every lookup is scoped by business ID so one tenant can never read another's rows.
type CustomerRepository interface {
	// FindByID retrieves a customer by ID, scoped to the given business.
	FindByID(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error)

	// FindByBusiness retrieves all customers of a business, most recent visit first.
	FindByBusiness(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, error)

	// Create persists a new customer entity to the storage.
	Create(ctx context.Context, customer *entity.Customer) error

	// IncrementVisits atomically adds one visit and stamps last_visit, returning
	// the updated customer. The increment happens in the database, not in Go,
	// so concurrent check-ins cannot lose updates.
	IncrementVisits(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error)

	// ResetVisits sets the visit counter back to zero after a redemption.
	ResetVisits(ctx context.Context, businessID, customerID uuid.UUID) error

	// CountByBusiness returns the number of customers registered to a business.
	CountByBusiness(ctx context.Context, businessID uuid.UUID) (int64, error)
}
