package postgres

import (
	"context"
	"time"

	"reflourish/internal/domain/entity"
	"reflourish/internal/domain/repository"
	"reflourish/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// rollupRepository implements the domain.RollupRepository interface using GORM.
type rollupRepository struct {
	db *gorm.DB
}

// NewRollupRepository is the constructor for rollupRepository.
func NewRollupRepository(db *gorm.DB) repository.RollupRepository {
	return &rollupRepository{db: db}
}

// UpsertRollup inserts or replaces the rollup row for (store, day) via
// ON CONFLICT, so re-running a day never duplicates rows.
func (repo *rollupRepository) UpsertRollup(ctx context.Context, rollup *entity.DailyRollup) error {
	rollupM := fromRollupDomain(rollup)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "store_id"}, {Name: "day"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"packages_count", "total_weight_kg", "total_points", "total_hours", "computed_at",
			}),
		}).
		Create(rollupM).Error
	if err != nil {
		return errors.Wrap(err, "failed to upsert daily rollup")
	}

	return nil
}

// FindRollups retrieves rollups within [from, to], optionally filtered by
// store, ordered by day ascending.
func (repo *rollupRepository) FindRollups(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]*entity.DailyRollup, error) {
	query := repo.db.WithContext(ctx).
		Where("day >= ? AND day <= ?", from, to)
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var models []*model.DailyRollupModel
	if err := query.Order("day ASC").Find(&models).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find daily rollups")
	}

	rollups := make([]*entity.DailyRollup, 0, len(models))
	for _, m := range models {
		rollups = append(rollups, toRollupDomain(m))
	}

	return rollups, nil
}

// --- Mapper Functions ---

func toRollupDomain(data *model.DailyRollupModel) *entity.DailyRollup {
	if data == nil {
		return nil
	}

	return &entity.DailyRollup{
		ID:            data.ID,
		StoreID:       data.StoreID,
		Day:           data.Day,
		PackagesCount: data.PackagesCount,
		TotalWeightKg: data.TotalWeightKg,
		TotalPoints:   data.TotalPoints,
		TotalHours:    data.TotalHours,
		ComputedAt:    data.ComputedAt,
	}
}

func fromRollupDomain(data *entity.DailyRollup) *model.DailyRollupModel {
	if data == nil {
		return nil
	}

	return &model.DailyRollupModel{
		ID:            data.ID,
		StoreID:       data.StoreID,
		Day:           data.Day,
		PackagesCount: data.PackagesCount,
		TotalWeightKg: data.TotalWeightKg,
		TotalPoints:   data.TotalPoints,
		TotalHours:    data.TotalHours,
		ComputedAt:    data.ComputedAt,
	}
}
