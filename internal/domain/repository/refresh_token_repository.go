package repository

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for refresh token persistence.
var (
	// ErrRefreshTokenNotFound is returned when a refresh token is not found.
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenExpired is returned when a refresh token has expired.
	ErrRefreshTokenExpired = errors.New("refresh token has expired")
)

// RefreshTokenRepository defines the interface for business session management.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a business session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its securely stored hash.
	// Expired tokens are reported as ErrRefreshTokenExpired.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash deletes a refresh token by its hash, ending the session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByBusinessID removes all refresh tokens of a business
	// ("log out everywhere").
	DeleteByBusinessID(ctx context.Context, businessID uuid.UUID) error

	// DeleteExpired removes all expired refresh tokens. Called periodically.
	DeleteExpired(ctx context.Context) error

	// CountActiveByBusinessID returns the number of live sessions of a business,
	// used to enforce the configured session limit.
	CountActiveByBusinessID(ctx context.Context, businessID uuid.UUID) (int, error)
}
