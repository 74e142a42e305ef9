package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "loyallink/internal/delivery/context"
	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// visitService implements the VisitUsecase interface.
type visitService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// VisitServiceParams holds dependencies for visitService, injected by Fx.
type VisitServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewVisitService is the constructor for visitService.
func NewVisitService(params VisitServiceParams) usecase.VisitUsecase {
	return &visitService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *visitService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordVisit increments the customer's visit counter, appends a visit event,
// and evaluates the visit goal against the updated count. The counter update
// happens in the database, so two clerks checking in the same customer at once
// still produce two distinct visits.
func (srv *visitService) RecordVisit(ctx context.Context, businessID, customerID uuid.UUID) (*usecase.RecordVisitOutput, error) {
	srv.log(ctx).Info("Recording visit", slog.Any("businessID", businessID), slog.Any("customerID", customerID))

	var output *usecase.RecordVisitOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		customerRepo := repoFactory.NewCustomerRepository()
		visitRepo := repoFactory.NewVisitRepository()

		business, err := businessRepo.FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found for visit")
			}

			return errors.Wrap(err, "failed to load business for visit")
		}

		visit := &entity.Visit{
			BusinessID:   businessID,
			CustomerID:   customerID,
			PointsEarned: 1,
			VisitedAt:    time.Now(),
		}
		if err := visitRepo.Create(ctx, visit); err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound.WrapMessage("customer not found for visit")
			}

			return errors.Wrap(err, "failed to record visit")
		}

		customer, err := customerRepo.IncrementVisits(ctx, businessID, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound.WrapMessage("customer not found for visit")
			}

			return errors.Wrap(err, "failed to increment visit counter")
		}

		output = &usecase.RecordVisitOutput{
			Customer:     customer,
			ReachedGoal:  entity.ReachedGoal(customer.Visits, business.VisitGoal),
			RewardNumber: entity.RewardNumber(customer.Visits, business.VisitGoal),
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute visit transaction", slog.Any("businessID", businessID), slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute visit transaction")
	}

	srv.log(ctx).Debug("Visit recorded",
		slog.Any("customerID", customerID),
		slog.Int("visits", output.Customer.Visits),
		slog.Bool("reachedGoal", output.ReachedGoal))

	return output, nil
}
