package postgres

import (
	"context"

	"reflourish/internal/domain/entity"
	"reflourish/internal/domain/repository"
	"reflourish/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// rewardRepository implements the domain.RewardRepository interface using GORM.
type rewardRepository struct {
	db *gorm.DB
}

// NewRewardRepository is the constructor for rewardRepository.
func NewRewardRepository(db *gorm.DB) repository.RewardRepository {
	return &rewardRepository{db: db}
}

// CreateReward persists a new catalog item.
func (repo *rewardRepository) CreateReward(ctx context.Context, reward *entity.Reward) error {
	rewardM := fromRewardDomain(reward)

	if err := repo.db.WithContext(ctx).Create(rewardM).Error; err != nil {
		return errors.Wrap(err, "failed to create reward")
	}

	reward.CreatedAt = rewardM.CreatedAt

	return nil
}

// FindActiveRewards retrieves all active catalog items.
func (repo *rewardRepository) FindActiveRewards(ctx context.Context) ([]*entity.Reward, error) {
	var models []*model.RewardModel
	err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("points_cost ASC").
		Find(&models).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active rewards")
	}

	rewards := make([]*entity.Reward, 0, len(models))
	for _, m := range models {
		rewards = append(rewards, toRewardDomain(m))
	}

	return rewards, nil
}

// FindActiveRewardByID retrieves an active reward by ID. Inactive rewards
// surface as ErrRewardNotFound.
func (repo *rewardRepository) FindActiveRewardByID(ctx context.Context, id uuid.UUID) (*entity.Reward, error) {
	var rewardM model.RewardModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&rewardM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRewardNotFound
		}

		return nil, errors.Wrap(err, "failed to find reward by id")
	}

	return toRewardDomain(&rewardM), nil
}

// --- Mapper Functions ---

func toRewardDomain(data *model.RewardModel) *entity.Reward {
	if data == nil {
		return nil
	}

	return &entity.Reward{
		ID:           data.ID,
		Name:         data.Name,
		PointsCost:   data.PointsCost,
		SponsorStore: data.SponsorStore,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}

func fromRewardDomain(data *entity.Reward) *model.RewardModel {
	if data == nil {
		return nil
	}

	return &model.RewardModel{
		ID:           data.ID,
		Name:         data.Name,
		PointsCost:   data.PointsCost,
		SponsorStore: data.SponsorStore,
		Description:  data.Description,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
	}
}
