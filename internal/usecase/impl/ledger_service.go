package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "reflourish/internal/delivery/context"
	"reflourish/internal/domain/entity"
	domainerrors "reflourish/internal/domain/errors"
	"reflourish/internal/domain/repository"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ledgerService implements the LedgerUsecase interface.
type ledgerService struct {
	txManager  repository.TransactionManager
	ledgerRepo repository.LedgerRepository
	rewardRepo repository.RewardRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// LedgerServiceParams holds dependencies for LedgerService, injected by Fx.
type LedgerServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	LedgerRepo repository.LedgerRepository
	RewardRepo repository.RewardRepository
	UserRepo   repository.UserRepository
	Logger     *slog.Logger
}

// NewLedgerService is the constructor for ledgerService.
func NewLedgerService(params LedgerServiceParams) usecase.LedgerUsecase {
	return &ledgerService{
		txManager:  params.TxManager,
		ledgerRepo: params.LedgerRepo,
		rewardRepo: params.RewardRepo,
		userRepo:   params.UserRepo,
		logger:     params.Logger,
	}
}

func (s *ledgerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// GetBalance sums the user's ledger. The profile counter is only a cache;
// the ledger sum is authoritative.
func (s *ledgerService) GetBalance(ctx context.Context, userID uuid.UUID) (int, error) {
	balance, err := s.ledgerRepo.SumPointsByUser(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to sum ledger for user")
	}

	return balance, nil
}

// GetHistory returns all ledger entries for a user, newest first.
func (s *ledgerService) GetHistory(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntriesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find ledger entries")
	}

	return entries, nil
}

// ListRewards returns the active reward catalog.
func (s *ledgerService) ListRewards(ctx context.Context) ([]*entity.Reward, error) {
	rewards, err := s.rewardRepo.FindActiveRewards(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active rewards")
	}

	return rewards, nil
}

// RedeemReward debits a reward's cost from the volunteer's balance: one
// negative ledger entry plus a conditional deduction of the cached counter,
// committed together. The conditional deduction only succeeds while the
// balance covers the cost, so two concurrent redemptions can never overdraw.
func (s *ledgerService) RedeemReward(ctx context.Context, volunteerID, rewardID uuid.UUID) (*usecase.RedemptionResult, error) {
	reward, err := s.rewardRepo.FindActiveRewardByID(ctx, rewardID)
	if err != nil {
		if errors.Is(err, repository.ErrRewardNotFound) {
			return nil, domainerrors.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by ID")
	}

	balance, err := s.ledgerRepo.SumPointsByUser(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum ledger for user")
	}
	if balance < reward.PointsCost {
		return nil, domainerrors.ErrInsufficientBalance
	}

	now := time.Now()
	err = s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().DeductVolunteerPoints(ctx, volunteerID, reward.PointsCost); err != nil {
			if errors.Is(err, repository.ErrInsufficientPoints) {
				return domainerrors.ErrInsufficientBalance
			}

			return errors.Wrap(err, "failed to deduct volunteer points")
		}

		entry := &entity.LedgerEntry{
			ID:           uuid.New(),
			UserID:       volunteerID,
			PointsChange: -reward.PointsCost,
			Kind:         entity.KindRewardRedemption,
			Description:  fmt.Sprintf("Redeemed reward: %s", reward.Name),
			CreatedAt:    now,
		}
		if err := repoFactory.LedgerRepo().AppendEntry(ctx, entry); err != nil {
			return errors.Wrap(err, "failed to append redemption ledger entry")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	remaining, err := s.ledgerRepo.SumPointsByUser(ctx, volunteerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sum ledger for user")
	}

	s.log(ctx).Info("Reward redeemed",
		slog.Any("volunteerID", volunteerID),
		slog.Any("rewardID", rewardID),
		slog.Int("pointsSpent", reward.PointsCost),
	)

	return &usecase.RedemptionResult{
		RewardName:      reward.Name,
		PointsSpent:     reward.PointsCost,
		RemainingPoints: remaining,
	}, nil
}

// GetRedemptions returns the user's redemption entries, newest first.
func (s *ledgerService) GetRedemptions(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error) {
	entries, err := s.ledgerRepo.FindEntriesByUserAndKind(ctx, userID, entity.KindRewardRedemption)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find redemption entries")
	}

	return entries, nil
}
