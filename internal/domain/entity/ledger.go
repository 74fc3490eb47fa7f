// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionKind classifies a ledger entry.
type TransactionKind string

const (
	// KindDelivery credits a volunteer for a confirmed delivery.
	KindDelivery TransactionKind = "delivery"
	// KindBonus credits a volunteer outside the delivery flow.
	KindBonus TransactionKind = "bonus"
	// KindRewardRedemption debits a volunteer for a redeemed reward.
	KindRewardRedemption TransactionKind = "reward_redemption"
)

// String returns the string representation of the TransactionKind.
func (k TransactionKind) String() string {
	return string(k)
}

// IsValid checks if the TransactionKind is a valid value.
func (k TransactionKind) IsValid() bool {
	switch k {
	case KindDelivery, KindBonus, KindRewardRedemption:
		return true
	default:
		return false
	}
}

// LedgerEntry is an immutable record of a point balance change. Entries are
// append-only; the sum of a user's entries always equals that user's point
// balance, which is merely a materialized view of this ledger.
type LedgerEntry struct {
	ID           uuid.UUID       `json:"id"`                   // The Global Unique Identifier (GUID) for the entry.
	UserID       uuid.UUID       `json:"user_id"`              // The volunteer whose balance changed.
	PackageID    *uuid.UUID      `json:"package_id,omitempty"` // The related package; nil for non-delivery adjustments.
	PointsChange int             `json:"points_change"`        // Signed delta: positive for earning, negative for spending.
	Kind         TransactionKind `json:"kind"`                 // What caused the change.
	Description  string          `json:"description"`          // Free-text reason, e.g. "Delivered package <id>".
	CreatedAt    time.Time       `json:"created_at"`
}
