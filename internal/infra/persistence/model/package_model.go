package model

import (
	"time"

	"github.com/google/uuid"
)

// PackageModel mirrors the 'packages' table. Status carries the lifecycle
// state; every transition is written as a conditional update against it.
type PackageModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	StoreID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	VolunteerID  *uuid.UUID `gorm:"type:uuid;index"`
	FoodBankID   *uuid.UUID `gorm:"type:uuid"`
	Status       string     `gorm:"type:varchar(20);not null;index"`
	PickupPIN    string     `gorm:"type:varchar(4);not null"`
	WeightKg     float64    `gorm:"not null"`
	Category     string     `gorm:"type:varchar(50);not null"`
	WindowStart  time.Time  `gorm:"not null"`
	WindowEnd    time.Time  `gorm:"not null"`
	Instructions string     `gorm:"type:text"`
	PointsValue  int        `gorm:"not null;default:0"`
	EstimatedHrs float64    `gorm:"not null;default:0"`
	HandoffData  string     `gorm:"type:text"`
	CreatedAt    time.Time
	ClaimedAt    *time.Time
	PickedUpAt   *time.Time
	DeliveredAt  *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (PackageModel) TableName() string {
	return "packages"
}
