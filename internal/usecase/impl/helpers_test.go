package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"loyallink/config"
	"loyallink/internal/domain/entity"
	"loyallink/internal/domain/repository"
	mockrepo "loyallink/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        4,
			MaxActiveSessions: 0,
		},
		Loyalty: &config.LoyaltyConfig{
			DefaultVisitGoal:  5,
			ClaimCodeAttempts: 10,
		},
	}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

// passthroughTx wires the transaction manager mock to invoke the given factory,
// so the closure under test runs against the per-test repository mocks.
func passthroughTx(txManager *mockrepo.MockTransactionManager, factory *mockrepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func testBusiness(t *testing.T) *entity.Business {
	t.Helper()

	return &entity.Business{
		ID:                uuid.New(),
		Email:             "owner@espresso.test",
		Name:              "Espresso Corner",
		PasswordHash:      "$2a$04$fakehash",
		VisitGoal:         5,
		RewardTitle:       "Free coffee",
		RewardDescription: "Any drink on the house",
		Plan:              "free",
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}
}

func testCustomer(t *testing.T, businessID uuid.UUID, visits int) *entity.Customer {
	t.Helper()

	return &entity.Customer{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Alex",
		Email:      "alex@customer.test",
		Phone:      "+15550001111",
		Visits:     visits,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
}

func testPendingReward(t *testing.T, businessID, customerID uuid.UUID) *entity.Reward {
	t.Helper()

	return &entity.Reward{
		ID:         uuid.New(),
		BusinessID: businessID,
		CustomerID: customerID,
		ClaimCode:  "123456",
		Status:     entity.RewardStatusPending,
		Title:      "Free coffee",
		PointsUsed: 5,
		CreatedAt:  time.Now(),
	}
}
