package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyRollupModel mirrors the 'daily_rollups' table. The (store_id, day)
// pair is unique so re-running a day's rollup upserts instead of duplicating.
type DailyRollupModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	StoreID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_rollup_store_day"`
	Day           time.Time `gorm:"not null;uniqueIndex:idx_rollup_store_day"`
	PackagesCount int       `gorm:"not null;default:0"`
	TotalWeightKg float64   `gorm:"not null;default:0"`
	TotalPoints   int       `gorm:"not null;default:0"`
	TotalHours    float64   `gorm:"not null;default:0"`
	ComputedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (DailyRollupModel) TableName() string {
	return "daily_rollups"
}
