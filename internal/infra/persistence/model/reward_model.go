package model

import (
	"time"

	"github.com/google/uuid"
)

// RewardModel mirrors the 'rewards' table.
type RewardModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PointsCost   int       `gorm:"not null"`
	SponsorStore string    `gorm:"type:varchar(100)"`
	Description  string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (RewardModel) TableName() string {
	return "rewards"
}
