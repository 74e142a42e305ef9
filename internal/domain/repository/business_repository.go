// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is a domain-specific error returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// ErrDuplicateBusinessEmail is returned when the business email unique constraint is hit.
var ErrDuplicateBusinessEmail = errors.New("business email already registered")

// BusinessRepository defines the standard operations for business persistence.
// The application layer will depend on this interface, not the concrete implementation.
type BusinessRepository interface {
	// FindByID retrieves a single business by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// FindByEmail retrieves a single business by its login email.
	FindByEmail(ctx context.Context, email string) (*entity.Business, error)

	// Create persists a new business entity to the storage.
	Create(ctx context.Context, business *entity.Business) error

	// UpdateSettings persists the mutable loyalty settings of a business.
	UpdateSettings(ctx context.Context, business *entity.Business) error
}
