package usecase

import (
	"context"
	"encoding/json"
	"time"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// RollupSummary reports one externally-triggered rollup run.
type RollupSummary struct {
	Day      time.Time `json:"day"`
	Stores   int       `json:"stores"`
	Packages int       `json:"packages"`
}

// MetricsUsecase materializes and serves per-store daily rollups.
// Runs are invoked by an external timer (or an operator), never by an
// in-process scheduler.
type MetricsUsecase interface {
	// RunDailyRollup folds the day's completed deliveries into per-store
	// rollup rows. Re-running the same day replaces its rows.
	RunDailyRollup(ctx context.Context, day time.Time) (*RollupSummary, error)

	// GetRollups retrieves rollups in [from, to], optionally for one store.
	GetRollups(ctx context.Context, storeID *uuid.UUID, from, to time.Time) ([]*entity.DailyRollup, error)
}

// InsightUsecase produces LLM-backed reports over the metrics rollups.
// The report wording is entirely the provider's; this layer only builds
// the prompt and relays the structured response.
type InsightUsecase interface {
	// WeeklyReport summarizes the last seven days of rollups via the
	// external LLM provider and returns its JSON verbatim.
	WeeklyReport(ctx context.Context) (json.RawMessage, error)
}
