package usecase

import (
	"context"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// RedemptionResult reports a completed reward redemption.
type RedemptionResult struct {
	RewardName      string `json:"reward_name"`
	PointsSpent     int    `json:"points_spent"`
	RemainingPoints int    `json:"remaining_points"`
}

// LedgerUsecase exposes the incentive ledger: balances, history and reward
// redemption. All balance changes go through append-only ledger entries.
type LedgerUsecase interface {
	// GetBalance returns a user's point balance by summing the ledger.
	GetBalance(ctx context.Context, userID uuid.UUID) (int, error)

	// GetHistory returns all ledger entries for a user, newest first.
	GetHistory(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error)

	// ListRewards returns the active reward catalog.
	ListRewards(ctx context.Context) ([]*entity.Reward, error)

	// RedeemReward debits the reward's cost from the volunteer's balance.
	// Fails without any state change when the balance cannot cover it.
	RedeemReward(ctx context.Context, volunteerID, rewardID uuid.UUID) (*RedemptionResult, error)

	// GetRedemptions returns a user's redemption entries, newest first.
	GetRedemptions(ctx context.Context, userID uuid.UUID) ([]*entity.LedgerEntry, error)
}
