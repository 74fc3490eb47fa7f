package model

import (
	"time"

	"github.com/google/uuid"
)

// LedgerEntryModel mirrors the 'ledger_entries' table. Rows are append-only:
// no repository exposes an update or delete on them.
type LedgerEntryModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index"`
	PackageID    *uuid.UUID `gorm:"type:uuid;index"`
	PointsChange int        `gorm:"not null"`
	Kind         string     `gorm:"type:varchar(30);not null"`
	Description  string     `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "ledger_entries"
}
