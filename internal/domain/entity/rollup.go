// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DailyRollup is a per-store, per-day aggregate of completed deliveries.
// Rollups are materialized by an externally-triggered batch run and consumed
// by reporting; re-running a day replaces that day's row rather than
// appending a duplicate.
type DailyRollup struct {
	ID            uuid.UUID `json:"id"`
	StoreID       uuid.UUID `json:"store_id"`
	Day           time.Time `json:"day"` // Midnight UTC of the aggregated day.
	PackagesCount int       `json:"packages_count"`
	TotalWeightKg float64   `json:"total_weight_kg"`
	TotalPoints   int       `json:"total_points"`
	TotalHours    float64   `json:"total_hours"`
	ComputedAt    time.Time `json:"computed_at"`
}
