package usecase

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCustomerInput defines the data required to enroll a customer.
// Email and phone are optional; without either, reward notifications are skipped.
type CreateCustomerInput struct {
	Name  string
	Email string
	Phone string
}

// CustomerUsecase defines the interface for customer management use cases.
type CustomerUsecase interface {
	// CreateCustomer enrolls a new customer and records their first visit in
	// the same transaction.
	CreateCustomer(ctx context.Context, businessID uuid.UUID, input CreateCustomerInput) (*entity.Customer, error)

	// GetCustomer retrieves a single customer scoped to the business.
	GetCustomer(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error)

	// ListCustomers retrieves the customers of a business with pagination.
	ListCustomers(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, error)

	// GetCustomerVisits retrieves a customer's visit history with pagination.
	GetCustomerVisits(ctx context.Context, businessID, customerID uuid.UUID, limit, offset int) ([]*entity.Visit, error)
}
