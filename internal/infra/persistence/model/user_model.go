// Package model contains the GORM persistence models mirroring the
// database tables. Mapping to and from domain entities happens in the
// repositories; nothing outside the persistence layer imports this package.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	StoreProfile     *StoreProfileModel     `gorm:"foreignKey:UserID"`
	VolunteerProfile *VolunteerProfileModel `gorm:"foreignKey:UserID"`
	FoodBankProfile  *FoodBankProfileModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StoreProfileModel mirrors the 'store_profiles' table.
type StoreProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreProfileModel) TableName() string {
	return "store_profiles"
}

// VolunteerProfileModel mirrors the 'volunteer_profiles' table. Points and
// TotalHours are materialized counters maintained alongside ledger appends.
type VolunteerProfileModel struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Points     int       `gorm:"not null;default:0"`
	TotalHours float64   `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (VolunteerProfileModel) TableName() string {
	return "volunteer_profiles"
}

// FoodBankProfileModel mirrors the 'foodbank_profiles' table.
type FoodBankProfileModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Address   string    `gorm:"type:text;not null"`
	Latitude  float64   `gorm:"not null"`
	Longitude float64   `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodBankProfileModel) TableName() string {
	return "foodbank_profiles"
}
