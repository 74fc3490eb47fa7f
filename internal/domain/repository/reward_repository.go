package repository

import (
	"context"

	"reflourish/internal/domain/entity"
	"reflourish/internal/errors"

	"github.com/google/uuid"
)

// ErrRewardNotFound is returned when a reward does not exist or is inactive.
var ErrRewardNotFound = errors.New("reward not found")

// RewardRepository defines the interface for reward catalog persistence.
type RewardRepository interface {
	// CreateReward persists a new catalog item.
	CreateReward(ctx context.Context, reward *entity.Reward) error

	// FindActiveRewards retrieves all active catalog items.
	FindActiveRewards(ctx context.Context) ([]*entity.Reward, error)

	// FindActiveRewardByID retrieves an active reward by ID.
	// Inactive rewards surface as ErrRewardNotFound.
	FindActiveRewardByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error)
}
