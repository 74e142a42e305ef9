package impl

import (
	"context"
	"testing"

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

type visitServiceFixture struct {
	txManager    *mockrepo.MockTransactionManager
	factory      *mockrepo.MockRepositoryFactory
	businessRepo *mockrepo.MockBusinessRepository
	customerRepo *mockrepo.MockCustomerRepository
	visitRepo    *mockrepo.MockVisitRepository
	service      usecase.VisitUsecase
}

func newVisitServiceFixture(t *testing.T) *visitServiceFixture {
	t.Helper()

	f := &visitServiceFixture{
		txManager:    mockrepo.NewMockTransactionManager(t),
		factory:      mockrepo.NewMockRepositoryFactory(t),
		businessRepo: mockrepo.NewMockBusinessRepository(t),
		customerRepo: mockrepo.NewMockCustomerRepository(t),
		visitRepo:    mockrepo.NewMockVisitRepository(t),
	}

	f.service = NewVisitService(VisitServiceParams{
		TxManager: f.txManager,
		Logger:    newTestLogger(),
	})

	passthroughTx(f.txManager, f.factory)
	f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo)
	f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo)
	f.factory.EXPECT().NewVisitRepository().Return(f.visitRepo)

	return f
}

func TestVisitService_RecordVisit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("records a visit below the goal", func(t *testing.T) {
		t.Parallel()

		f := newVisitServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 3)

		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
		f.customerRepo.EXPECT().IncrementVisits(ctx, business.ID, customer.ID).
			Return(&entity.Customer{ID: customer.ID, BusinessID: business.ID, Visits: 4}, nil)

		output, err := f.service.RecordVisit(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, 4, output.Customer.Visits)
		assert.False(t, output.ReachedGoal)
		assert.Equal(t, 0, output.RewardNumber)
	})

	t.Run("flags the visit that lands on the goal", func(t *testing.T) {
		t.Parallel()

		f := newVisitServiceFixture(t)
		business := testBusiness(t) // visit goal 5
		customer := testCustomer(t, business.ID, 4)

		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
		f.customerRepo.EXPECT().IncrementVisits(ctx, business.ID, customer.ID).
			Return(&entity.Customer{ID: customer.ID, BusinessID: business.ID, Visits: 5}, nil)

		output, err := f.service.RecordVisit(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.True(t, output.ReachedGoal)
		assert.Equal(t, 1, output.RewardNumber)
	})

	t.Run("flags later reward cycles", func(t *testing.T) {
		t.Parallel()

		f := newVisitServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 9)

		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).Return(nil)
		f.customerRepo.EXPECT().IncrementVisits(ctx, business.ID, customer.ID).
			Return(&entity.Customer{ID: customer.ID, BusinessID: business.ID, Visits: 10}, nil)

		output, err := f.service.RecordVisit(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.True(t, output.ReachedGoal)
		assert.Equal(t, 2, output.RewardNumber)
	})

	t.Run("maps an unknown customer to not found", func(t *testing.T) {
		t.Parallel()

		f := newVisitServiceFixture(t)
		business := testBusiness(t)
		customerID := uuid.New()

		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.visitRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Visit")).
			Return(repository.ErrCustomerNotFound)

		_, err := f.service.RecordVisit(ctx, business.ID, customerID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	})
}
