package impl

import (
	"context"
	"testing"
	"time"

	"loyallink/internal/domain/constants"
	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/domain/service"
	mockrepo "loyallink/internal/mocks/repository"
	mocksvc "loyallink/internal/mocks/service"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type rewardServiceFixture struct {
	txManager     *mockrepo.MockTransactionManager
	factory       *mockrepo.MockRepositoryFactory
	businessRepo  *mockrepo.MockBusinessRepository
	customerRepo  *mockrepo.MockCustomerRepository
	rewardRepo    *mockrepo.MockRewardRepository
	codeGenerator *mocksvc.MockClaimCodeGenerator
	publisher     *mocksvc.MockEventPublisher
	service       usecase.RewardUsecase
}

func newRewardServiceFixture(t *testing.T) *rewardServiceFixture {
	t.Helper()

	f := &rewardServiceFixture{
		txManager:     mockrepo.NewMockTransactionManager(t),
		factory:       mockrepo.NewMockRepositoryFactory(t),
		businessRepo:  mockrepo.NewMockBusinessRepository(t),
		customerRepo:  mockrepo.NewMockCustomerRepository(t),
		rewardRepo:    mockrepo.NewMockRewardRepository(t),
		codeGenerator: mocksvc.NewMockClaimCodeGenerator(t),
		publisher:     mocksvc.NewMockEventPublisher(t),
	}

	cfg := newTestConfig()
	cfg.Loyalty.ClaimCodeAttempts = 3

	f.service = NewRewardService(RewardServiceParams{
		TxManager:     f.txManager,
		RewardRepo:    f.rewardRepo,
		CustomerRepo:  f.customerRepo,
		BusinessRepo:  f.businessRepo,
		CodeGenerator: f.codeGenerator,
		Publisher:     f.publisher,
		Config:        cfg,
		Logger:        newTestLogger(),
	})

	return f
}

func (f *rewardServiceFixture) expectIssueTx(ctx context.Context) {
	passthroughTx(f.txManager, f.factory)
	f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo)
	f.factory.EXPECT().NewCustomerRepository().Return(f.customerRepo)
	f.factory.EXPECT().NewRewardRepository().Return(f.rewardRepo)
}

func TestRewardService_IssueReward(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("mints a reward and publishes the issued event", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 5)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound)
		f.codeGenerator.EXPECT().Generate().Return("654321", nil)
		f.rewardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reward")).
			Run(func(_ context.Context, reward *entity.Reward) {
				assert.Equal(t, "654321", reward.ClaimCode)
				assert.Equal(t, entity.RewardStatusPending, reward.Status)
				assert.Equal(t, business.RewardTitle, reward.Title)
				assert.Equal(t, business.VisitGoal, reward.PointsUsed)
				reward.ID = uuid.New()
			}).
			Return(nil)
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.MatchedBy(func(event service.RewardEvent) bool {
			return event.Type == constants.EventRewardIssued &&
				event.ClaimCode == "654321" &&
				event.CustomerEmail == customer.Email
		})).Return(nil)

		output, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.False(t, output.AlreadyPending)
		assert.Equal(t, "654321", output.Reward.ClaimCode)
	})

	t.Run("returns the existing pending reward without publishing", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 5)
		pending := testPendingReward(t, business.ID, customer.ID)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).Return(pending, nil)

		output, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.True(t, output.AlreadyPending)
		assert.Equal(t, pending.ID, output.Reward.ID)
	})

	t.Run("mints past the goal boundary", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		// Visits only reset on claim, so 7 visits against a goal of 5 is
		// still eligible even though it is not an exact multiple.
		customer := testCustomer(t, business.ID, 7)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound)
		f.codeGenerator.EXPECT().Generate().Return("777777", nil)
		f.rewardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reward")).
			Run(func(_ context.Context, reward *entity.Reward) {
				reward.ID = uuid.New()
			}).
			Return(nil)
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.Anything).Return(nil)

		output, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.False(t, output.AlreadyPending)
		assert.Equal(t, "777777", output.Reward.ClaimCode)
	})

	t.Run("rejects a customer below the goal", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 3)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound)

		_, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrGoalNotReached)
	})

	t.Run("retries claim code collisions", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 5)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound)
		f.codeGenerator.EXPECT().Generate().Return("111111", nil).Once()
		f.codeGenerator.EXPECT().Generate().Return("222222", nil).Once()
		f.rewardRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Reward) bool {
			return r.ClaimCode == "111111"
		})).Return(repository.ErrClaimCodeTaken)
		f.rewardRepo.EXPECT().Create(ctx, mock.MatchedBy(func(r *entity.Reward) bool {
			return r.ClaimCode == "222222"
		})).Return(nil)
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.AnythingOfType("service.RewardEvent")).Return(nil)

		output, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, "222222", output.Reward.ClaimCode)
	})

	t.Run("gives up after exhausting claim code attempts", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 5)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound)
		f.codeGenerator.EXPECT().Generate().Return("999999", nil).Times(3)
		f.rewardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reward")).
			Return(repository.ErrClaimCodeTaken).Times(3)

		_, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrClaimCodeExhausted)
	})

	t.Run("returns the winner's reward when a concurrent issue races ahead", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 5)
		winner := testPendingReward(t, business.ID, customer.ID)

		f.expectIssueTx(ctx)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(nil, repository.ErrRewardNotFound).Once()
		f.codeGenerator.EXPECT().Generate().Return("777777", nil)
		f.rewardRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Reward")).
			Return(repository.ErrPendingRewardExists)
		f.rewardRepo.EXPECT().FindPending(ctx, business.ID, customer.ID).
			Return(winner, nil).Once()
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.AnythingOfType("service.RewardEvent")).Return(nil)

		output, err := f.service.IssueReward(ctx, business.ID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, winner.ID, output.Reward.ID)
	})
}

func TestRewardService_ClaimReward(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("completes the reward, resets visits, and publishes", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 0)
		claimedAt := time.Now()
		claimed := &entity.Reward{
			ID:         uuid.New(),
			BusinessID: business.ID,
			CustomerID: customer.ID,
			ClaimCode:  "123456",
			Status:     entity.RewardStatusCompleted,
			Title:      "Free coffee",
			ClaimedAt:  &claimedAt,
		}

		f.expectIssueTx(ctx)
		f.rewardRepo.EXPECT().Complete(ctx, business.ID, "123456", mock.AnythingOfType("time.Time")).
			Return(claimed, nil)
		f.customerRepo.EXPECT().ResetVisits(ctx, business.ID, customer.ID).Return(nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.MatchedBy(func(event service.RewardEvent) bool {
			return event.Type == constants.EventRewardClaimed && event.RewardID == claimed.ID
		})).Return(nil)

		output, err := f.service.ClaimReward(ctx, business.ID, "123456")

		require.NoError(t, err)
		assert.Equal(t, entity.RewardStatusCompleted, output.Reward.Status)
		assert.Equal(t, customer.ID, output.Customer.ID)
	})

	t.Run("maps an unknown code to not found", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		businessID := uuid.New()

		f.expectIssueTx(ctx)
		f.rewardRepo.EXPECT().Complete(ctx, businessID, "000000", mock.AnythingOfType("time.Time")).
			Return(nil, repository.ErrRewardNotFound)

		_, err := f.service.ClaimReward(ctx, businessID, "000000")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRewardNotFound)
	})

	t.Run("rejects a second claim of the same code", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		businessID := uuid.New()

		f.expectIssueTx(ctx)
		f.rewardRepo.EXPECT().Complete(ctx, businessID, "123456", mock.AnythingOfType("time.Time")).
			Return(nil, repository.ErrRewardNotPending)

		_, err := f.service.ClaimReward(ctx, businessID, "123456")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRewardAlreadyClaimed)
	})

	t.Run("succeeds even when the event broker is down", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 0)
		claimed := testPendingReward(t, business.ID, customer.ID)
		claimed.Status = entity.RewardStatusCompleted

		f.expectIssueTx(ctx)
		f.rewardRepo.EXPECT().Complete(ctx, business.ID, claimed.ClaimCode, mock.AnythingOfType("time.Time")).
			Return(claimed, nil)
		f.customerRepo.EXPECT().ResetVisits(ctx, business.ID, customer.ID).Return(nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.publisher.EXPECT().PublishRewardEvent(ctx, mock.AnythingOfType("service.RewardEvent")).
			Return(errors.New("broker unavailable"))

		output, err := f.service.ClaimReward(ctx, business.ID, claimed.ClaimCode)

		require.NoError(t, err)
		assert.Equal(t, claimed.ID, output.Reward.ID)
	})
}

func TestRewardService_GetClaimPreview(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns the display data for the claim page", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		business := testBusiness(t)
		customer := testCustomer(t, business.ID, 0)
		reward := testPendingReward(t, business.ID, customer.ID)

		f.rewardRepo.EXPECT().FindByClaimCode(ctx, business.ID, reward.ClaimCode).Return(reward, nil)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.customerRepo.EXPECT().FindByID(ctx, business.ID, customer.ID).Return(customer, nil)

		preview, err := f.service.GetClaimPreview(ctx, business.ID, reward.ClaimCode)

		require.NoError(t, err)
		assert.Equal(t, customer.Name, preview.CustomerName)
		assert.Equal(t, business.Name, preview.BusinessName)
		assert.Equal(t, reward.Title, preview.RewardTitle)
		assert.Equal(t, business.RewardDescription, preview.RewardDescription)
	})

	t.Run("maps an unknown code to not found", func(t *testing.T) {
		t.Parallel()

		f := newRewardServiceFixture(t)
		businessID := uuid.New()

		f.rewardRepo.EXPECT().FindByClaimCode(ctx, businessID, "000000").
			Return(nil, repository.ErrRewardNotFound)

		_, err := f.service.GetClaimPreview(ctx, businessID, "000000")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRewardNotFound)
	})
}

func TestRewardService_ListRewards(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newRewardServiceFixture(t)
	businessID := uuid.New()
	pending := entity.RewardStatusPending
	rewards := []*entity.Reward{
		{ID: uuid.New(), BusinessID: businessID, Status: entity.RewardStatusPending},
	}

	f.rewardRepo.EXPECT().FindByBusiness(ctx, businessID, &pending, 20, 0).Return(rewards, nil)

	got, err := f.service.ListRewards(ctx, businessID, &pending, 20, 0)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
