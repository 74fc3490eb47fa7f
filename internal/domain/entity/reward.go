// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reward is a redeemable catalog item with a fixed point cost.
type Reward struct {
	ID           uuid.UUID `json:"id"`            // The Global Unique Identifier (GUID) for the reward.
	Name         string    `json:"name"`          // Display name of the reward.
	PointsCost   int       `json:"points_cost"`   // Points debited from the volunteer on redemption.
	SponsorStore string    `json:"sponsor_store"` // Optional sponsoring store name.
	Description  string    `json:"description"`   // Free-text description.
	IsActive     bool      `json:"is_active"`     // Inactive rewards are hidden and cannot be redeemed.
	CreatedAt    time.Time `json:"created_at"`
}
