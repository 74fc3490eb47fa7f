package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	mockRepo "reflourish/internal/mocks/repository"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ledgerServiceFixtures holds all test dependencies for ledger service tests.
type ledgerServiceFixtures struct {
	service    usecase.LedgerUsecase
	txManager  *mockRepo.MockTransactionManager
	ledgerRepo *mockRepo.MockLedgerRepository
	rewardRepo *mockRepo.MockRewardRepository
	userRepo   *mockRepo.MockUserRepository
}

func createTestLedgerService(t *testing.T) ledgerServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	ledgerRepo := mockRepo.NewMockLedgerRepository(t)
	rewardRepo := mockRepo.NewMockRewardRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewLedgerService(LedgerServiceParams{
		TxManager:  txManager,
		LedgerRepo: ledgerRepo,
		RewardRepo: rewardRepo,
		UserRepo:   userRepo,
		Logger:     logger,
	})

	return ledgerServiceFixtures{
		service:    service,
		txManager:  txManager,
		ledgerRepo: ledgerRepo,
		rewardRepo: rewardRepo,
		userRepo:   userRepo,
	}
}

func TestLedgerService_GetBalance(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.ledgerRepo.EXPECT().SumPointsByUser(ctx, userID).Return(42, nil)

	balance, err := fx.service.GetBalance(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 42, balance)
}

func TestLedgerService_RedeemReward_Success(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	volunteerID := uuid.New()
	rewardID := uuid.New()
	reward := &entity.Reward{ID: rewardID, Name: "Grocery voucher", PointsCost: 50, IsActive: true}

	fx.rewardRepo.EXPECT().
		FindActiveRewardByID(ctx, rewardID).
		Return(reward, nil)

	// Pre-check balance, then post-transaction balance.
	fx.ledgerRepo.EXPECT().SumPointsByUser(ctx, volunteerID).Return(120, nil).Once()
	fx.ledgerRepo.EXPECT().SumPointsByUser(ctx, volunteerID).Return(70, nil).Once()

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockLedgerRepo := mockRepo.NewMockLedgerRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockFactory.EXPECT().LedgerRepo().Return(mockLedgerRepo)

			mockUserRepo.EXPECT().
				DeductVolunteerPoints(ctx, volunteerID, 50).
				Return(nil)

			mockLedgerRepo.EXPECT().
				AppendEntry(ctx, mock.AnythingOfType("*entity.LedgerEntry")).
				Run(func(ctx context.Context, entry *entity.LedgerEntry) {
					assert.Equal(t, volunteerID, entry.UserID)
					assert.Equal(t, -50, entry.PointsChange)
					assert.Equal(t, entity.KindRewardRedemption, entry.Kind)
					assert.Nil(t, entry.PackageID)
				}).
				Return(nil)

			_ = fn(mockFactory)
		}).
		Return(nil)

	result, err := fx.service.RedeemReward(ctx, volunteerID, rewardID)

	require.NoError(t, err)
	assert.Equal(t, "Grocery voucher", result.RewardName)
	assert.Equal(t, 50, result.PointsSpent)
	assert.Equal(t, 70, result.RemainingPoints)
}

func TestLedgerService_RedeemReward_InsufficientBalance(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	volunteerID := uuid.New()
	rewardID := uuid.New()

	fx.rewardRepo.EXPECT().
		FindActiveRewardByID(ctx, rewardID).
		Return(&entity.Reward{ID: rewardID, Name: "Grocery voucher", PointsCost: 50}, nil)
	fx.ledgerRepo.EXPECT().SumPointsByUser(ctx, volunteerID).Return(49, nil)

	result, err := fx.service.RedeemReward(ctx, volunteerID, rewardID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestLedgerService_RedeemReward_ConcurrentOverdraw(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	volunteerID := uuid.New()
	rewardID := uuid.New()

	// The pre-check saw enough points, but a concurrent redemption drained
	// the balance before the conditional deduction landed.
	fx.rewardRepo.EXPECT().
		FindActiveRewardByID(ctx, rewardID).
		Return(&entity.Reward{ID: rewardID, Name: "Grocery voucher", PointsCost: 50}, nil)
	fx.ledgerRepo.EXPECT().SumPointsByUser(ctx, volunteerID).Return(60, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Run(func(ctx context.Context, fn func(repository.RepositoryFactory) error) {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
			mockUserRepo.EXPECT().
				DeductVolunteerPoints(ctx, volunteerID, 50).
				Return(repository.ErrInsufficientPoints)

			err := fn(mockFactory)
			assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
		}).
		Return(domainerrors.ErrInsufficientBalance)

	result, err := fx.service.RedeemReward(ctx, volunteerID, rewardID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrInsufficientBalance)
}

func TestLedgerService_RedeemReward_NotFound(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	rewardID := uuid.New()

	fx.rewardRepo.EXPECT().
		FindActiveRewardByID(ctx, rewardID).
		Return(nil, repository.ErrRewardNotFound)

	result, err := fx.service.RedeemReward(ctx, uuid.New(), rewardID)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRewardNotFound)
}

func TestLedgerService_GetRedemptions(t *testing.T) {
	fx := createTestLedgerService(t)

	ctx := context.Background()
	userID := uuid.New()
	entries := []*entity.LedgerEntry{
		{ID: uuid.New(), UserID: userID, PointsChange: -50, Kind: entity.KindRewardRedemption},
	}

	fx.ledgerRepo.EXPECT().
		FindEntriesByUserAndKind(ctx, userID, entity.KindRewardRedemption).
		Return(entries, nil)

	result, err := fx.service.GetRedemptions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, entries, result)
}
