// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"loyallink/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterBusinessInput defines the data required to register a new business account.
type RegisterBusinessInput struct {
	Name              string
	Email             string
	Password          string
	VisitGoal         int
	RewardTitle       string
	RewardDescription string
}

// LoginInput defines the data required for a business to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateSettingsInput carries the mutable loyalty settings. Nil fields are
// left unchanged.
type UpdateSettingsInput struct {
	Name              *string
	VisitGoal         *int
	RewardTitle       *string
	RewardDescription *string
	Plan              *string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created business's basic information.
type RegisterOutput struct {
	Business *entity.Business
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Business     *entity.Business
}

// TokenPairOutput returns a fresh token pair after a refresh.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
}

// BusinessStats aggregates the dashboard counters of a business.
type BusinessStats struct {
	TotalCustomers   int64 `json:"total_customers"`
	TotalVisits      int64 `json:"total_visits"`
	PendingRewards   int64 `json:"pending_rewards"`
	CompletedRewards int64 `json:"completed_rewards"`
}

// BusinessUsecase defines the interface for business account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type BusinessUsecase interface {
	// Register creates a new business account with a validated visit goal.
	Register(ctx context.Context, input RegisterBusinessInput) (*RegisterOutput, error)

	// Login authenticates a business and opens a session.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// RefreshTokens rotates a refresh token into a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*TokenPairOutput, error)

	// Logout ends the session identified by the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the authenticated business's profile.
	GetProfile(ctx context.Context, businessID uuid.UUID) (*entity.Business, error)

	// UpdateSettings applies partial updates to the loyalty settings.
	UpdateSettings(ctx context.Context, businessID uuid.UUID, input UpdateSettingsInput) (*entity.Business, error)

	// GenerateCheckInQR renders the PNG QR code customers scan to check in.
	GenerateCheckInQR(ctx context.Context, businessID uuid.UUID) ([]byte, error)

	// GetStats returns the dashboard counters of a business.
	GetStats(ctx context.Context, businessID uuid.UUID) (*BusinessStats, error)
}
