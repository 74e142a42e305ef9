package impl

import (
	"context"
	"log/slog"
	"time"

	"loyallink/config"
	deliverycontext "loyallink/internal/delivery/context"
	"loyallink/internal/domain/constants"
	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/domain/service"
	"loyallink/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// rewardService implements the RewardUsecase interface.
type rewardService struct {
	txManager         repository.TransactionManager
	rewardRepo        repository.RewardRepository
	customerRepo      repository.CustomerRepository
	businessRepo      repository.BusinessRepository
	codeGenerator     service.ClaimCodeGenerator
	publisher         service.EventPublisher
	claimCodeAttempts int
	logger            *slog.Logger
}

// RewardServiceParams holds dependencies for rewardService, injected by Fx.
type RewardServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	RewardRepo    repository.RewardRepository
	CustomerRepo  repository.CustomerRepository
	BusinessRepo  repository.BusinessRepository
	CodeGenerator service.ClaimCodeGenerator
	Publisher     service.EventPublisher
	Config        *config.Config
	Logger        *slog.Logger
}

// NewRewardService is the constructor for rewardService.
func NewRewardService(params RewardServiceParams) usecase.RewardUsecase {
	claimCodeAttempts := 0
	if params.Config != nil && params.Config.Loyalty != nil {
		claimCodeAttempts = params.Config.Loyalty.ClaimCodeAttempts
	}
	if claimCodeAttempts <= 0 {
		claimCodeAttempts = 1
	}

	return &rewardService{
		txManager:         params.TxManager,
		rewardRepo:        params.RewardRepo,
		customerRepo:      params.CustomerRepo,
		businessRepo:      params.BusinessRepo,
		codeGenerator:     params.CodeGenerator,
		publisher:         params.Publisher,
		claimCodeAttempts: claimCodeAttempts,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *rewardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IssueReward mints a pending reward for an eligible customer. Idempotent:
// a customer with a pending reward gets that reward back unchanged, so a
// double-tapped "issue" button never mints twice.
func (srv *rewardService) IssueReward(ctx context.Context, businessID, customerID uuid.UUID) (*usecase.IssueRewardOutput, error) {
	srv.log(ctx).Info("Issuing reward", slog.Any("businessID", businessID), slog.Any("customerID", customerID))

	var output *usecase.IssueRewardOutput
	var business *entity.Business
	var customer *entity.Customer

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		customerRepo := repoFactory.NewCustomerRepository()
		rewardRepo := repoFactory.NewRewardRepository()

		var err error
		business, err = businessRepo.FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found while issuing reward")
			}

			return errors.Wrap(err, "failed to load business for reward issue")
		}

		customer, err = customerRepo.FindByID(ctx, businessID, customerID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				return domainerrors.ErrCustomerNotFound.WrapMessage("customer not found while issuing reward")
			}

			return errors.Wrap(err, "failed to load customer for reward issue")
		}

		pending, err := rewardRepo.FindPending(ctx, businessID, customerID)
		if err == nil {
			output = &usecase.IssueRewardOutput{Reward: pending, AlreadyPending: true}

			return nil
		}
		if !errors.Is(err, repository.ErrRewardNotFound) {
			return errors.Wrap(err, "failed to check for pending reward")
		}

		// Visits only reset on claim, so any count at or past the goal is
		// eligible even when issuance missed the exact boundary.
		if customer.Visits < business.VisitGoal {
			return domainerrors.ErrGoalNotReached.WrapMessage("customer has not reached the visit goal")
		}

		reward, err := srv.mintReward(ctx, rewardRepo, business, customer)
		if err != nil {
			return err
		}

		output = &usecase.IssueRewardOutput{Reward: reward}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute reward issue transaction", slog.Any("businessID", businessID), slog.Any("customerID", customerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute reward issue transaction")
	}

	if output.AlreadyPending {
		srv.log(ctx).Debug("Customer already holds a pending reward", slog.Any("rewardID", output.Reward.ID))

		return output, nil
	}

	srv.publishEvent(ctx, constants.EventRewardIssued, business, customer, output.Reward)

	return output, nil
}

// mintReward allocates a claim code and persists the reward, retrying on code
// collisions. The unique index decides collisions, not a prior read.
func (srv *rewardService) mintReward(ctx context.Context, rewardRepo repository.RewardRepository, business *entity.Business, customer *entity.Customer) (*entity.Reward, error) {
	for attempt := 0; attempt < srv.claimCodeAttempts; attempt++ {
		code, err := srv.codeGenerator.Generate()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate claim code")
		}

		reward := &entity.Reward{
			BusinessID: business.ID,
			CustomerID: customer.ID,
			ClaimCode:  code,
			Status:     entity.RewardStatusPending,
			Title:      business.RewardTitle,
			PointsUsed: business.VisitGoal,
		}

		err = rewardRepo.Create(ctx, reward)
		switch {
		case err == nil:
			return reward, nil
		case errors.Is(err, repository.ErrClaimCodeTaken):
			srv.log(ctx).Debug("Claim code collision, retrying", slog.Int("attempt", attempt+1))

			continue
		case errors.Is(err, repository.ErrPendingRewardExists):
			// A concurrent issue won the race; return its reward instead.
			pending, findErr := rewardRepo.FindPending(ctx, business.ID, customer.ID)
			if findErr != nil {
				return nil, errors.Wrap(findErr, "failed to load concurrently issued reward")
			}

			return pending, nil
		default:
			return nil, errors.Wrap(err, "failed to create reward")
		}
	}

	return nil, domainerrors.ErrClaimCodeExhausted.WrapMessage("claim code attempts exhausted")
}

// ClaimReward redeems a pending reward by claim code and resets the customer's
// visit counter in the same transaction. The pending check and the state
// transition are one conditional update, so a code can be redeemed exactly once.
func (srv *rewardService) ClaimReward(ctx context.Context, businessID uuid.UUID, claimCode string) (*usecase.ClaimRewardOutput, error) {
	srv.log(ctx).Info("Claiming reward", slog.Any("businessID", businessID))

	var output *usecase.ClaimRewardOutput
	var business *entity.Business

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		customerRepo := repoFactory.NewCustomerRepository()
		rewardRepo := repoFactory.NewRewardRepository()

		reward, err := rewardRepo.Complete(ctx, businessID, claimCode, time.Now())
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrRewardNotFound):
				return domainerrors.ErrRewardNotFound.WrapMessage("no reward matches this claim code")
			case errors.Is(err, repository.ErrRewardNotPending):
				return domainerrors.ErrRewardAlreadyClaimed.WrapMessage("reward already claimed")
			default:
				return errors.Wrap(err, "failed to complete reward")
			}
		}

		if err := customerRepo.ResetVisits(ctx, businessID, reward.CustomerID); err != nil {
			return errors.Wrap(err, "failed to reset visit counter after claim")
		}

		customer, err := customerRepo.FindByID(ctx, businessID, reward.CustomerID)
		if err != nil {
			return errors.Wrap(err, "failed to load customer after claim")
		}

		business, err = businessRepo.FindByID(ctx, businessID)
		if err != nil {
			return errors.Wrap(err, "failed to load business after claim")
		}

		output = &usecase.ClaimRewardOutput{Reward: reward, Customer: customer}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute reward claim transaction", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute reward claim transaction")
	}

	srv.publishEvent(ctx, constants.EventRewardClaimed, business, output.Customer, output.Reward)

	return output, nil
}

// GetClaimPreview looks up the reward behind a claim code for the public claim
// page, without changing any state.
func (srv *rewardService) GetClaimPreview(ctx context.Context, businessID uuid.UUID, claimCode string) (*usecase.ClaimPreview, error) {
	reward, err := srv.rewardRepo.FindByClaimCode(ctx, businessID, claimCode)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return nil, domainerrors.ErrRewardNotFound.WrapMessage("no reward matches this claim code")
		}

		return nil, errors.Wrap(err, "failed to load reward for claim preview")
	}

	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business for claim preview")
	}

	customer, err := srv.customerRepo.FindByID(ctx, businessID, reward.CustomerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer for claim preview")
	}

	return &usecase.ClaimPreview{
		Reward:            reward,
		CustomerName:      customer.Name,
		BusinessName:      business.Name,
		RewardTitle:       reward.Title,
		RewardDescription: business.RewardDescription,
	}, nil
}

// ListRewards retrieves the rewards of a business, optionally filtered by
// status, with pagination.
func (srv *rewardService) ListRewards(ctx context.Context, businessID uuid.UUID, status *entity.RewardStatus, limit, offset int) ([]*entity.Reward, error) {
	rewards, err := srv.rewardRepo.FindByBusiness(ctx, businessID, status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	return rewards, nil
}

// publishEvent sends a reward event for asynchronous notification delivery.
// Publishing is best-effort: the reward state is already committed, so a
// broker outage costs a notification, never a reward.
func (srv *rewardService) publishEvent(ctx context.Context, eventType string, business *entity.Business, customer *entity.Customer, reward *entity.Reward) {
	event := service.RewardEvent{
		Type:          eventType,
		BusinessID:    business.ID,
		BusinessName:  business.Name,
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		RewardID:      reward.ID,
		RewardTitle:   reward.Title,
		ClaimCode:     reward.ClaimCode,
		OccurredAt:    time.Now().UTC(),
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
	}

	if err := srv.publisher.PublishRewardEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish reward event",
			slog.String("eventType", eventType),
			slog.Any("rewardID", reward.ID),
			slog.Any("error", err))
	}
}
