package repository

import (
	"context"
	"time"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// RollupRepository defines the interface for daily metrics rollup persistence.
type RollupRepository interface {
	// UpsertRollup inserts or replaces the rollup row for (store, day).
	// Re-running a day must not create duplicate rows.
	UpsertRollup(ctx context.Context, rollup *entity.DailyRollup) error

	// FindRollups retrieves rollups within [from, to], optionally
	// filtered by store, ordered by day ascending.
	FindRollups(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]*entity.DailyRollup, error)
}
