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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	visitRepo    repository.VisitRepository
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	VisitRepo    repository.VisitRepository
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		visitRepo:    params.VisitRepo,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCustomer enrolls a new customer and records their first visit in the
// same transaction. A customer never exists with zero visits: walking up to
// the counter is what creates the record.
func (srv *customerService) CreateCustomer(ctx context.Context, businessID uuid.UUID, input usecase.CreateCustomerInput) (*entity.Customer, error) {
	srv.log(ctx).Info("Enrolling new customer", slog.Any("businessID", businessID), slog.String("name", input.Name))

	var enrolled *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()
		visitRepo := repoFactory.NewVisitRepository()

		newCustomer := &entity.Customer{
			BusinessID: businessID,
			Name:       input.Name,
			Email:      input.Email,
			Phone:      input.Phone,
		}

		if err := customerRepo.Create(ctx, newCustomer); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicateCustomer):
				return domainerrors.ErrCustomerAlreadyExists.WrapMessage("customer already enrolled for this business")
			case errors.Is(err, repository.ErrBusinessNotFound):
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found while enrolling customer")
			default:
				return errors.Wrap(err, "failed to create customer")
			}
		}

		firstVisit := &entity.Visit{
			BusinessID:   businessID,
			CustomerID:   newCustomer.ID,
			PointsEarned: 1,
			VisitedAt:    time.Now(),
		}
		if err := visitRepo.Create(ctx, firstVisit); err != nil {
			return errors.Wrap(err, "failed to record first visit")
		}

		updated, err := customerRepo.IncrementVisits(ctx, businessID, newCustomer.ID)
		if err != nil {
			return errors.Wrap(err, "failed to count first visit")
		}

		enrolled = updated

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute customer enrollment transaction", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute customer enrollment transaction")
	}

	srv.log(ctx).Debug("Customer enrolled", slog.Any("customerID", enrolled.ID))

	return enrolled, nil
}

// GetCustomer retrieves a single customer scoped to the business.
func (srv *customerService) GetCustomer(ctx context.Context, businessID, customerID uuid.UUID) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, businessID, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer not found")
		}

		return nil, errors.Wrap(err, "failed to load customer")
	}

	return customer, nil
}

// ListCustomers retrieves the customers of a business with pagination.
func (srv *customerService) ListCustomers(ctx context.Context, businessID uuid.UUID, limit, offset int) ([]*entity.Customer, error) {
	customers, err := srv.customerRepo.FindByBusiness(ctx, businessID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	return customers, nil
}

// GetCustomerVisits retrieves a customer's visit history with pagination.
func (srv *customerService) GetCustomerVisits(ctx context.Context, businessID, customerID uuid.UUID, limit, offset int) ([]*entity.Visit, error) {
	if _, err := srv.customerRepo.FindByID(ctx, businessID, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound.WrapMessage("customer not found for visit history")
		}

		return nil, errors.Wrap(err, "failed to load customer for visit history")
	}

	visits, err := srv.visitRepo.FindByCustomer(ctx, businessID, customerID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer visits")
	}

	return visits, nil
}
