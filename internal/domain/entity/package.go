// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// PackageStatus represents the lifecycle state of a surplus food package.
type PackageStatus string

const (
	// StatusPending means the package is offered and visible to volunteers.
	StatusPending PackageStatus = "pending"
	// StatusAssigned means a volunteer has claimed the package.
	StatusAssigned PackageStatus = "assigned"
	// StatusPickedUp means the volunteer confirmed pickup at the store.
	StatusPickedUp PackageStatus = "picked_up"
	// StatusCompleted means a food bank operator confirmed delivery.
	StatusCompleted PackageStatus = "completed"
	// StatusCancelled means the store withdrew the package before it was claimed.
	StatusCancelled PackageStatus = "cancelled"
)

// String returns the string representation of the PackageStatus.
func (s PackageStatus) String() string {
	return string(s)
}

// IsValid checks if the PackageStatus is a valid value.
func (s PackageStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusAssigned, StatusPickedUp, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible from this status.
func (s PackageStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// The lifecycle is strictly forward: pending → assigned → picked_up →
// completed, with cancelled reachable only from pending.
func (s PackageStatus) CanTransitionTo(next PackageStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAssigned || next == StatusCancelled
	case StatusAssigned:
		return next == StatusPickedUp
	case StatusPickedUp:
		return next == StatusCompleted
	default:
		return false
	}
}

// Package is a unit of surplus food offered for redistribution.
// It is created by a store, claimed and transported by a volunteer, and
// received by a food bank; every status change goes through the lifecycle
// engine, never through direct field mutation.
type Package struct {
	ID           uuid.UUID     `json:"id"`                     // The Global Unique Identifier (GUID) for the package.
	StoreID      uuid.UUID     `json:"store_id"`               // The store (user) that offered this package.
	VolunteerID  *uuid.UUID    `json:"volunteer_id,omitempty"` // The claiming volunteer; nil while pending or cancelled.
	FoodBankID   *uuid.UUID    `json:"food_bank_id,omitempty"` // The food bank that confirmed delivery; nil until completed.
	Status       PackageStatus `json:"status"`                 // Current lifecycle status.
	PickupPIN    string        `json:"-"`                      // 4-digit handoff secret, fixed at creation. Checked at pickup AND delivery.
	WeightKg     float64       `json:"weight_kg"`              // Estimated weight in kilograms. Always > 0.
	Category     string        `json:"category"`               // Food type label, e.g. "produce", "bakery".
	WindowStart  time.Time     `json:"window_start"`           // Start of the pickup time window.
	WindowEnd    time.Time     `json:"window_end"`             // End of the pickup time window. Always after WindowStart.
	Instructions string        `json:"instructions,omitempty"` // Free-text handling instructions from the store.
	PointsValue  int           `json:"points_value"`           // Reward points, persisted at claim from the claimant's distance.
	EstimatedHrs float64       `json:"estimated_hours"`        // Estimated transport hours, persisted at claim.
	HandoffData  string        `json:"-"`                      // JSON handoff payload encoded into the QR code at claim.
	CreatedAt    time.Time     `json:"created_at"`
	ClaimedAt    *time.Time    `json:"claimed_at,omitempty"`
	PickedUpAt   *time.Time    `json:"picked_up_at,omitempty"`
	DeliveredAt  *time.Time    `json:"delivered_at,omitempty"`
}

// VerifyPIN checks an entered PIN against the package's handoff secret.
// The same PIN gates both the pickup and the delivery confirmation; a
// separate delivery secret would plug in here if that ever changes.
func (p *Package) VerifyPIN(entered string) bool {
	return p.PickupPIN != "" && p.PickupPIN == entered
}

// IsAssignedTo reports whether the package is currently assigned to the given volunteer.
func (p *Package) IsAssignedTo(volunteerID uuid.UUID) bool {
	return p.VolunteerID != nil && *p.VolunteerID == volunteerID
}
