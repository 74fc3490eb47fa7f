package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "reflourish/internal/delivery/context"
	"reflourish/internal/domain/entity"
	"reflourish/internal/domain/repository"
	"reflourish/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// metricsService implements the MetricsUsecase interface.
type metricsService struct {
	packageRepo repository.PackageRepository
	rollupRepo  repository.RollupRepository
	logger      *slog.Logger
}

// MetricsServiceParams holds dependencies for MetricsService, injected by Fx.
type MetricsServiceParams struct {
	fx.In

	PackageRepo repository.PackageRepository
	RollupRepo  repository.RollupRepository
	Logger      *slog.Logger
}

// NewMetricsService is the constructor for metricsService.
func NewMetricsService(params MetricsServiceParams) usecase.MetricsUsecase {
	return &metricsService{
		packageRepo: params.PackageRepo,
		rollupRepo:  params.RollupRepo,
		logger:      params.Logger,
	}
}

// RunDailyRollup folds one UTC day's completed deliveries into per-store
// rollup rows. The caller (an external timer or an operator) picks the day;
// re-running upserts, so the operation is idempotent.
func (s *metricsService) RunDailyRollup(ctx context.Context, day time.Time) (*usecase.RollupSummary, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	completed, err := s.packageRepo.FindCompletedBetween(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find completed packages")
	}

	now := time.Now()
	rollups := make(map[uuid.UUID]*entity.DailyRollup)
	for _, pkg := range completed {
		rollup, ok := rollups[pkg.StoreID]
		if !ok {
			rollup = &entity.DailyRollup{
				ID:         uuid.New(),
				StoreID:    pkg.StoreID,
				Day:        dayStart,
				ComputedAt: now,
			}
			rollups[pkg.StoreID] = rollup
		}

		rollup.PackagesCount++
		rollup.TotalWeightKg += pkg.WeightKg
		rollup.TotalPoints += pkg.PointsValue
		rollup.TotalHours += pkg.EstimatedHrs
	}

	for _, rollup := range rollups {
		if err := s.rollupRepo.UpsertRollup(ctx, rollup); err != nil {
			return nil, errors.Wrap(err, "failed to upsert daily rollup")
		}
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	logger.Info("Daily rollup completed",
		slog.Time("day", dayStart),
		slog.Int("stores", len(rollups)),
		slog.Int("packages", len(completed)),
	)

	return &usecase.RollupSummary{
		Day:      dayStart,
		Stores:   len(rollups),
		Packages: len(completed),
	}, nil
}

// GetRollups retrieves rollups in [from, to], optionally for one store.
func (s *metricsService) GetRollups(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]*entity.DailyRollup, error) {
	rollups, err := s.rollupRepo.FindRollups(ctx, storeID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find rollups")
	}

	return rollups, nil
}
