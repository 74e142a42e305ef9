package impl

import (
	"context"
	"testing"
	"time"

	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	mockrepo "loyallink/internal/mocks/repository"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type customerServiceFixture struct {
	txManager    *mockrepo.MockTransactionManager
	factory      *mockrepo.MockRepositoryFactory
	customerRepo *mockrepo.MockCustomerRepository
	visitRepo    *mockrepo.MockVisitRepository
	service      usecase.CustomerUsecase
}

func newCustomerServiceFixture(t *testing.T) *customerServiceFixture {
	t.Helper()

	f := &customerServiceFixture{
		txManager:    mockrepo.NewMockTransactionManager(t),
		factory:      mockrepo.NewMockRepositoryFactory(t),
		customerRepo: mockrepo.NewMockCustomerRepository(t),
		visitRepo:    mockrepo.NewMockVisitRepository(t),
	}

	f.service = NewCustomerService(CustomerServiceParams{
		TxManager:    f.txManager,
		CustomerRepo: f.customerRepo,
		VisitRepo:    f.visitRepo,
		Logger:       newTestLogger(),
	})

	return f
}

func TestCustomerService_CreateCustomer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	businessID := uuid.New()

	t.Run("enrolls the customer with their first visit", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo)
		f.factory.EXPECT().NewVisitRepository().Return(f.visitRepo)

		customerID := uuid.New()
		f.customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).
			Run(func(_ context.Context, customer *entity.Customer) {
				assert.Equal(t, businessID, customer.BusinessID)
				customer.ID = customerID
			}).
			Return(nil)
		f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).
			Run(func(_ context.Context, visit *entity.Visit) {
				assert.Equal(t, customerID, visit.CustomerID)
				assert.Equal(t, 1, visit.PointsEarned)
			}).
			Return(nil)

		now := time.Now()
		f.customerRepo.EXPECT().IncrementVisits(ctx, businessID, customerID).
			Return(&entity.Customer{
				ID:         customerID,
				BusinessID: businessID,
				Name:       "Alex",
				Visits:     1,
				LastVisit:  &now,
			}, nil)

		enrolled, err := f.service.CreateCustomer(ctx, businessID, usecase.CreateCustomerInput{
			Name:  "Alex",
			Email: "alex@customer.test",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, enrolled.Visits)
		require.NotNil(t, enrolled.LastVisit)
	})

	t.Run("maps duplicate contact to conflict", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo)
		f.factory.EXPECT().NewVisitRepository().Return(f.visitRepo)

		f.customerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Customer")).
			Return(repository.ErrDuplicateCustomer)

		_, err := f.service.CreateCustomer(ctx, businessID, usecase.CreateCustomerInput{Name: "Alex"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	businessID := uuid.New()

	t.Run("returns the customer", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		customer := testCustomer(t, businessID, 3)

		f.customerRepo.EXPECT().FindByID(ctx, businessID, customer.ID).Return(customer, nil)

		got, err := f.service.GetCustomer(ctx, businessID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, customer.ID, got.ID)
	})

	t.Run("maps missing customer to not found", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		customerID := uuid.New()

		f.customerRepo.EXPECT().FindByID(ctx, businessID, customerID).
			Return(nil, repository.ErrCustomerNotFound)

		_, err := f.service.GetCustomer(ctx, businessID, customerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}

func TestCustomerService_GetCustomerVisits(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	businessID := uuid.New()

	t.Run("returns the visit history", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		customer := testCustomer(t, businessID, 3)
		visits := []*entity.Visit{
			{ID: uuid.New(), BusinessID: businessID, CustomerID: customer.ID, PointsEarned: 1},
			{ID: uuid.New(), BusinessID: businessID, CustomerID: customer.ID, PointsEarned: 1},
		}

		f.customerRepo.EXPECT().FindByID(ctx, businessID, customer.ID).Return(customer, nil)
		f.visitRepo.EXPECT().FindByCustomer(ctx, businessID, customer.ID, 20, 0).Return(visits, nil)

		got, err := f.service.GetCustomerVisits(ctx, businessID, customer.ID, 20, 0)

		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("rejects history for an unknown customer", func(t *testing.T) {
		t.Parallel()

		f := newCustomerServiceFixture(t)
		customerID := uuid.New()

		f.customerRepo.EXPECT().FindByID(ctx, businessID, customerID).
			Return(nil, repository.ErrCustomerNotFound)

		_, err := f.service.GetCustomerVisits(ctx, businessID, customerID, 20, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}
