// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"loyallink/config"
	deliverycontext "loyallink/internal/delivery/context"
	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	"loyallink/internal/domain/service"
	"loyallink/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// businessService implements the BusinessUsecase interface.
type businessService struct {
	txManager         repository.TransactionManager
	businessRepo      repository.BusinessRepository
	customerRepo      repository.CustomerRepository
	visitRepo         repository.VisitRepository
	rewardRepo        repository.RewardRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	qrService         service.QRCodeService
	refreshSecret     string
	defaultVisitGoal  int
	maxActiveSessions int
	logger            *slog.Logger
}

// BusinessServiceParams holds dependencies for businessService, injected by Fx.
type BusinessServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	BusinessRepo     repository.BusinessRepository
	CustomerRepo     repository.CustomerRepository
	VisitRepo        repository.VisitRepository
	RewardRepo       repository.RewardRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	QRService        service.QRCodeService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewBusinessService is the constructor for businessService. It receives all dependencies as interfaces.
func NewBusinessService(params BusinessServiceParams) usecase.BusinessUsecase {
	defaultVisitGoal := 0
	if params.Config != nil && params.Config.Loyalty != nil {
		defaultVisitGoal = params.Config.Loyalty.DefaultVisitGoal
	}

	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	refreshSecret := ""
	if params.Config != nil {
		refreshSecret = params.Config.SecretKey.Refresh
	}

	return &businessService{
		txManager:         params.TxManager,
		businessRepo:      params.BusinessRepo,
		customerRepo:      params.CustomerRepo,
		visitRepo:         params.VisitRepo,
		rewardRepo:        params.RewardRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		qrService:         params.QRService,
		refreshSecret:     refreshSecret,
		defaultVisitGoal:  defaultVisitGoal,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *businessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashRefreshToken derives the storage key for a refresh token. Only this hash
// is persisted, so a database leak never exposes usable tokens.
func hashRefreshToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// Register creates a new business account with a validated visit goal.
func (srv *businessService) Register(ctx context.Context, input usecase.RegisterBusinessInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting business registration", slog.String("email", input.Email))

	visitGoal := input.VisitGoal
	if visitGoal == 0 {
		visitGoal = srv.defaultVisitGoal
	}
	if visitGoal < 1 {
		return nil, domainerrors.ErrInvalidVisitGoal.WrapMessage("visit goal must be at least 1")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newBusiness := &entity.Business{
		Email:             input.Email,
		Name:              input.Name,
		PasswordHash:      hashedPassword,
		VisitGoal:         visitGoal,
		RewardTitle:       input.RewardTitle,
		RewardDescription: input.RewardDescription,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		if err := businessRepo.Create(ctx, newBusiness); err != nil {
			if errors.Is(err, repository.ErrDuplicateBusinessEmail) {
				return domainerrors.ErrBusinessAlreadyExists.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create business during registration")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute business registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute business registration transaction")
	}

	srv.log(ctx).Debug("Business registration completed", slog.Any("businessID", newBusiness.ID))

	return &usecase.RegisterOutput{Business: newBusiness}, nil
}

// Login authenticates a business and opens a session.
func (srv *businessService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting business login", slog.String("email", input.Email))

	business, err := srv.businessRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to load business for login")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if err := srv.hasher.Verify(business.PasswordHash, input.Password); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(business.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens during login", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.persistRefreshToken(ctx, business.ID, refreshTokenString); err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Business logged in successfully", slog.Any("businessID", business.ID))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		Business:     business,
	}, nil
}

// persistRefreshToken stores the refresh token, enforcing the active session
// limit inside one transaction when the limit is enabled.
func (srv *businessService) persistRefreshToken(ctx context.Context, businessID uuid.UUID, refreshTokenString string) error {
	if srv.maxActiveSessions > 0 {
		if err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			refreshRepo := repoFactory.NewRefreshTokenRepository()

			activeSessions, err := refreshRepo.CountActiveByBusinessID(ctx, businessID)
			if err != nil {
				return errors.Wrap(err, "failed to count active sessions")
			}
			if activeSessions >= srv.maxActiveSessions {
				return domainerrors.ErrSessionLimitExceeded.WrapMessage("active session limit exceeded")
			}

			return srv.storeRefreshToken(ctx, refreshRepo, businessID, refreshTokenString)
		}); err != nil {
			return errors.Wrap(err, "failed to execute login session transaction")
		}

		return nil
	}

	// No session limit: direct insert avoids unnecessary transaction overhead.
	if err := srv.storeRefreshToken(ctx, srv.refreshTokenRepo, businessID, refreshTokenString); err != nil {
		return errors.Wrap(err, "failed to create refresh token during login")
	}

	return nil
}

func (srv *businessService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, businessID uuid.UUID, refreshTokenString string) error {
	newRefreshToken := &entity.RefreshToken{
		BusinessID: businessID,
		TokenHash:  hashRefreshToken(refreshTokenString),
		ExpiresAt:  time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if err := refreshRepo.Create(ctx, newRefreshToken); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshTokens rotates a refresh token into a new token pair. The presented
// token is revoked in the same transaction that records its replacement, so a
// stolen token stops working the moment the legitimate client rotates.
func (srv *businessService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.TokenPairOutput, error) {
	srv.log(ctx).Debug("Attempting to refresh tokens")

	businessID, err := srv.businessIDFromRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token rejected")
	}

	newAccessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new token pair")
	}

	tokenHash := hashRefreshToken(refreshToken)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.NewRefreshTokenRepository()

		stored, err := refreshRepo.FindByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
			}

			return errors.Wrap(err, "failed to load refresh token")
		}
		if stored.BusinessID != businessID {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token subject mismatch")
		}

		if err := refreshRepo.DeleteByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke rotated refresh token")
		}

		return srv.storeRefreshToken(ctx, refreshRepo, businessID, newRefreshToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute token rotation transaction", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute token rotation transaction")
	}

	srv.log(ctx).Debug("Tokens refreshed", slog.Any("businessID", businessID))

	return &usecase.TokenPairOutput{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// businessIDFromRefreshToken validates the token signature and extracts the
// business ID from the subject claim.
func (srv *businessService) businessIDFromRefreshToken(refreshToken string) (uuid.UUID, error) {
	token, err := srv.tokenService.ValidateToken(refreshToken, srv.refreshSecret)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, errors.New("unexpected refresh token claims")
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return uuid.Nil, errors.New("token is not a refresh token")
	}

	subject, err := claims.GetSubject()
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "refresh token missing subject")
	}

	businessID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "refresh token subject is not a valid id")
	}

	return businessID, nil
}

// Logout ends the session identified by the refresh token. Logging out an
// already-ended session is not an error.
func (srv *businessService) Logout(ctx context.Context, refreshToken string) error {
	srv.log(ctx).Info("Attempting to log out")

	tokenHash := hashRefreshToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			srv.log(ctx).Debug("Logout for unknown session, treating as success")

			return nil
		}

		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	srv.log(ctx).Info("Successfully logged out")

	return nil
}

// GetProfile retrieves the authenticated business's profile.
func (srv *businessService) GetProfile(ctx context.Context, businessID uuid.UUID) (*entity.Business, error) {
	business, err := srv.businessRepo.FindByID(ctx, businessID)
	if err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business profile not found")
		}

		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return business, nil
}

// UpdateSettings applies partial updates to the loyalty settings. Changing the
// visit goal only affects future goal evaluations; existing counters keep running.
func (srv *businessService) UpdateSettings(ctx context.Context, businessID uuid.UUID, input usecase.UpdateSettingsInput) (*entity.Business, error) {
	srv.log(ctx).Info("Updating business settings", slog.Any("businessID", businessID))

	if input.VisitGoal != nil && *input.VisitGoal < 1 {
		return nil, domainerrors.ErrInvalidVisitGoal.WrapMessage("visit goal must be at least 1")
	}

	var updated *entity.Business
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()

		business, err := businessRepo.FindByID(ctx, businessID)
		if err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return domainerrors.ErrBusinessNotFound.WrapMessage("business not found while updating settings")
			}

			return errors.Wrap(err, "failed to load business for settings update")
		}

		if input.Name != nil {
			business.Name = *input.Name
		}
		if input.VisitGoal != nil {
			business.VisitGoal = *input.VisitGoal
		}
		if input.RewardTitle != nil {
			business.RewardTitle = *input.RewardTitle
		}
		if input.RewardDescription != nil {
			business.RewardDescription = *input.RewardDescription
		}
		if input.Plan != nil {
			business.Plan = *input.Plan
		}

		if err := businessRepo.UpdateSettings(ctx, business); err != nil {
			return errors.Wrap(err, "failed to persist business settings")
		}

		updated = business

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute settings update transaction", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute settings update transaction")
	}

	return updated, nil
}

// GenerateCheckInQR renders the PNG QR code customers scan to check in.
func (srv *businessService) GenerateCheckInQR(ctx context.Context, businessID uuid.UUID) ([]byte, error) {
	if _, err := srv.businessRepo.FindByID(ctx, businessID); err != nil {
		if errors.Is(err, repository.ErrBusinessNotFound) {
			return nil, domainerrors.ErrBusinessNotFound.WrapMessage("business not found for QR generation")
		}

		return nil, errors.Wrap(err, "failed to load business for QR generation")
	}

	png, err := srv.qrService.GenerateCheckInQR(businessID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate check-in QR code", slog.Any("businessID", businessID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate check-in QR code")
	}

	return png, nil
}

// GetStats returns the dashboard counters of a business.
func (srv *businessService) GetStats(ctx context.Context, businessID uuid.UUID) (*usecase.BusinessStats, error) {
	totalCustomers, err := srv.customerRepo.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	totalVisits, err := srv.visitRepo.CountByBusiness(ctx, businessID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count visits")
	}

	pendingStatus := entity.RewardStatusPending
	pendingRewards, err := srv.rewardRepo.CountByBusiness(ctx, businessID, &pendingStatus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count pending rewards")
	}

	completedStatus := entity.RewardStatusCompleted
	completedRewards, err := srv.rewardRepo.CountByBusiness(ctx, businessID, &completedStatus)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count completed rewards")
	}

	return &usecase.BusinessStats{
		TotalCustomers:   totalCustomers,
		TotalVisits:      totalVisits,
		PendingRewards:   pendingRewards,
		CompletedRewards: completedRewards,
	}, nil
}
