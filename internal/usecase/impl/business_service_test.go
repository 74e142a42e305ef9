package impl

import (
	"context"
	"testing"
	"time"

	"loyallink/internal/domain/entity"
	domainerrors "loyallink/internal/domain/errors"
	"loyallink/internal/domain/repository"
	mockrepo "loyallink/internal/mocks/repository"
	mocksvc "loyallink/internal/mocks/service"
	"loyallink/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type businessServiceFixture struct {
	txManager        *mockrepo.MockTransactionManager
	factory          *mockrepo.MockRepositoryFactory
	businessRepo     *mockrepo.MockBusinessRepository
	customerRepo     *mockrepo.MockCustomerRepository
	visitRepo        *mockrepo.MockVisitRepository
	rewardRepo       *mockrepo.MockRewardRepository
	refreshTokenRepo *mockrepo.MockRefreshTokenRepository
	hasher           *mocksvc.MockPasswordHasher
	tokenService     *mocksvc.MockTokenService
	qrService        *mocksvc.MockQRCodeService
	service          usecase.BusinessUsecase
}

func newBusinessServiceFixture(t *testing.T, maxActiveSessions int) *businessServiceFixture {
	t.Helper()

	f := &businessServiceFixture{
		txManager:        mockrepo.NewMockTransactionManager(t),
		factory:          mockrepo.NewMockRepositoryFactory(t),
		businessRepo:     mockrepo.NewMockBusinessRepository(t),
		customerRepo:     mockrepo.NewMockCustomerRepository(t),
		visitRepo:        mockrepo.NewMockVisitRepository(t),
		rewardRepo:       mockrepo.NewMockRewardRepository(t),
		refreshTokenRepo: mockrepo.NewMockRefreshTokenRepository(t),
		hasher:           mocksvc.NewMockPasswordHasher(t),
		tokenService:     mocksvc.NewMockTokenService(t),
		qrService:        mocksvc.NewMockQRCodeService(t),
	}

	cfg := newTestConfig()
	cfg.Auth.MaxActiveSessions = maxActiveSessions

	f.service = NewBusinessService(BusinessServiceParams{
		TxManager:        f.txManager,
		BusinessRepo:     f.businessRepo,
		CustomerRepo:     f.customerRepo,
		VisitRepo:        f.visitRepo,
		RewardRepo:       f.rewardRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		QRService:        f.qrService,
		Config:           cfg,
		Logger:           newTestLogger(),
	})

	return f
}

func refreshTokenFor(businessID uuid.UUID) *jwt.Token {
	return &jwt.Token{
		Valid: true,
		Claims: jwt.MapClaims{
			"sub":  businessID.String(),
			"type": "refresh",
		},
	}
}

func TestBusinessService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("creates business and applies default visit goal", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo)

		f.hasher.EXPECT().Hash("hunter2!").Return("hashed", nil)
		f.businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).
			Run(func(_ context.Context, business *entity.Business) {
				business.ID = uuid.New()
			}).
			Return(nil)

		output, err := f.service.Register(ctx, usecase.RegisterBusinessInput{
			Name:        "Espresso Corner",
			Email:       "owner@espresso.test",
			Password:    "hunter2!",
			RewardTitle: "Free coffee",
		})

		require.NoError(t, err)
		require.NotNil(t, output)
		assert.NotEqual(t, uuid.Nil, output.Business.ID)
		assert.Equal(t, 5, output.Business.VisitGoal)
		assert.Equal(t, "hashed", output.Business.PasswordHash)
	})

	t.Run("rejects negative visit goal", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)

		_, err := f.service.Register(ctx, usecase.RegisterBusinessInput{
			Name:      "Espresso Corner",
			Email:     "owner@espresso.test",
			Password:  "hunter2!",
			VisitGoal: -3,
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidVisitGoal)
	})

	t.Run("maps duplicate email to conflict", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo)

		f.hasher.EXPECT().Hash("hunter2!").Return("hashed", nil)
		f.businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).
			Return(repository.ErrDuplicateBusinessEmail)

		_, err := f.service.Register(ctx, usecase.RegisterBusinessInput{
			Name:     "Espresso Corner",
			Email:    "owner@espresso.test",
			Password: "hunter2!",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrBusinessAlreadyExists)
	})

	t.Run("surfaces hashing failure", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		f.hasher.EXPECT().Hash("hunter2!").Return("", errors.New("bcrypt broke"))

		_, err := f.service.Register(ctx, usecase.RegisterBusinessInput{
			Name:     "Espresso Corner",
			Email:    "owner@espresso.test",
			Password: "hunter2!",
		})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	})
}

func TestBusinessService_Login(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns token pair on valid credentials", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		business := testBusiness(t)

		f.businessRepo.EXPECT().FindByEmail(ctx, business.Email).Return(business, nil)
		f.hasher.EXPECT().Verify(business.PasswordHash, "hunter2!").Return(nil)
		f.tokenService.EXPECT().GenerateTokens(business.ID).Return("access", "refresh", nil)
		f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)
		f.refreshTokenRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(_ context.Context, token *entity.RefreshToken) {
				assert.Equal(t, business.ID, token.BusinessID)
				assert.Equal(t, hashRefreshToken("refresh"), token.TokenHash)
				assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), token.ExpiresAt, time.Minute)
			}).
			Return(nil)

		output, err := f.service.Login(ctx, usecase.LoginInput{Email: business.Email, Password: "hunter2!"})

		require.NoError(t, err)
		assert.Equal(t, "access", output.AccessToken)
		assert.Equal(t, "refresh", output.RefreshToken)
		assert.Equal(t, business.ID, output.Business.ID)
	})

	t.Run("hides unknown email behind invalid credentials", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		f.businessRepo.EXPECT().FindByEmail(ctx, "nobody@espresso.test").
			Return(nil, repository.ErrBusinessNotFound)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: "nobody@espresso.test", Password: "x"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		business := testBusiness(t)

		f.businessRepo.EXPECT().FindByEmail(ctx, business.Email).Return(business, nil)
		f.hasher.EXPECT().Verify(business.PasswordHash, "wrong").Return(errors.New("mismatch"))

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: business.Email, Password: "wrong"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("enforces active session limit", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 2)
		business := testBusiness(t)

		f.businessRepo.EXPECT().FindByEmail(ctx, business.Email).Return(business, nil)
		f.hasher.EXPECT().Verify(business.PasswordHash, "hunter2!").Return(nil)
		f.tokenService.EXPECT().GenerateTokens(business.ID).Return("access", "refresh", nil)

		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewRefreshTokenRepository().Return(f.refreshTokenRepo)
		f.refreshTokenRepo.EXPECT().CountActiveByBusinessID(ctx, business.ID).Return(2, nil)

		_, err := f.service.Login(ctx, usecase.LoginInput{Email: business.Email, Password: "hunter2!"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrSessionLimitExceeded)
	})
}

func TestBusinessService_RefreshTokens(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rotates the presented token", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		businessID := uuid.New()
		oldHash := hashRefreshToken("old-refresh")

		f.tokenService.EXPECT().ValidateToken("old-refresh", "test-refresh-secret").
			Return(refreshTokenFor(businessID), nil)
		f.tokenService.EXPECT().GenerateTokens(businessID).Return("new-access", "new-refresh", nil)
		f.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewRefreshTokenRepository().Return(f.refreshTokenRepo)
		f.refreshTokenRepo.EXPECT().FindByHash(ctx, oldHash).
			Return(&entity.RefreshToken{BusinessID: businessID, TokenHash: oldHash}, nil)
		f.refreshTokenRepo.EXPECT().DeleteByHash(ctx, oldHash).Return(nil)
		f.refreshTokenRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(_ context.Context, token *entity.RefreshToken) {
				assert.Equal(t, hashRefreshToken("new-refresh"), token.TokenHash)
			}).
			Return(nil)

		output, err := f.service.RefreshTokens(ctx, "old-refresh")

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
		assert.Equal(t, "new-refresh", output.RefreshToken)
	})

	t.Run("rejects tokens with a bad signature", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		f.tokenService.EXPECT().ValidateToken("forged", "test-refresh-secret").
			Return(nil, errors.New("signature is invalid"))

		_, err := f.service.RefreshTokens(ctx, "forged")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects access tokens presented as refresh tokens", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		token := refreshTokenFor(uuid.New())
		token.Claims.(jwt.MapClaims)["type"] = "access"

		f.tokenService.EXPECT().ValidateToken("access-token", "test-refresh-secret").
			Return(token, nil)

		_, err := f.service.RefreshTokens(ctx, "access-token")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("rejects revoked tokens", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		businessID := uuid.New()

		f.tokenService.EXPECT().ValidateToken("revoked", "test-refresh-secret").
			Return(refreshTokenFor(businessID), nil)
		f.tokenService.EXPECT().GenerateTokens(businessID).Return("a", "r", nil)

		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewRefreshTokenRepository().Return(f.refreshTokenRepo)
		f.refreshTokenRepo.EXPECT().FindByHash(ctx, hashRefreshToken("revoked")).
			Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := f.service.RefreshTokens(ctx, "revoked")

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestBusinessService_Logout(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("deletes the session", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		f.refreshTokenRepo.EXPECT().DeleteByHash(ctx, hashRefreshToken("refresh")).Return(nil)

		require.NoError(t, f.service.Logout(ctx, "refresh"))
	})

	t.Run("treats an unknown session as already logged out", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		f.refreshTokenRepo.EXPECT().DeleteByHash(ctx, hashRefreshToken("gone")).
			Return(repository.ErrRefreshTokenNotFound)

		require.NoError(t, f.service.Logout(ctx, "gone"))
	})
}

func TestBusinessService_UpdateSettings(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("applies only the provided fields", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		business := testBusiness(t)
		newGoal := 8
		newTitle := "Free pastry"

		passthroughTx(f.txManager, f.factory)
		f.factory.EXPECT().NewBusinessRepository().Return(f.businessRepo)
		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.businessRepo.EXPECT().UpdateSettings(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

		updated, err := f.service.UpdateSettings(ctx, business.ID, usecase.UpdateSettingsInput{
			VisitGoal:   &newGoal,
			RewardTitle: &newTitle,
		})

		require.NoError(t, err)
		assert.Equal(t, 8, updated.VisitGoal)
		assert.Equal(t, "Free pastry", updated.RewardTitle)
		assert.Equal(t, "Espresso Corner", updated.Name)
	})

	t.Run("rejects a visit goal below one", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		zero := 0

		_, err := f.service.UpdateSettings(ctx, uuid.New(), usecase.UpdateSettingsInput{VisitGoal: &zero})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidVisitGoal)
	})
}

func TestBusinessService_GenerateCheckInQR(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("returns PNG bytes for an existing business", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		business := testBusiness(t)
		png := []byte{0x89, 0x50, 0x4E, 0x47}

		f.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		f.qrService.EXPECT().GenerateCheckInQR(business.ID).Return(png, nil)

		got, err := f.service.GenerateCheckInQR(ctx, business.ID)

		require.NoError(t, err)
		assert.Equal(t, png, got)
	})

	t.Run("fails for an unknown business", func(t *testing.T) {
		t.Parallel()

		f := newBusinessServiceFixture(t, 0)
		businessID := uuid.New()

		f.businessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)

		_, err := f.service.GenerateCheckInQR(ctx, businessID)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
	})
}

func TestBusinessService_GetStats(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newBusinessServiceFixture(t, 0)
	businessID := uuid.New()

	f.customerRepo.EXPECT().CountByBusiness(ctx, businessID).Return(int64(42), nil)
	f.visitRepo.EXPECT().CountByBusiness(ctx, businessID).Return(int64(310), nil)
	f.rewardRepo.EXPECT().CountByBusiness(ctx, businessID, mock.MatchedBy(func(s *entity.RewardStatus) bool {
		return s != nil && *s == entity.RewardStatusPending
	})).Return(int64(3), nil)
	f.rewardRepo.EXPECT().CountByBusiness(ctx, businessID, mock.MatchedBy(func(s *entity.RewardStatus) bool {
		return s != nil && *s == entity.RewardStatusCompleted
	})).Return(int64(57), nil)

	stats, err := f.service.GetStats(ctx, businessID)

	require.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalCustomers)
	assert.Equal(t, int64(310), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.PendingRewards)
	assert.Equal(t, int64(57), stats.CompletedRewards)
}
