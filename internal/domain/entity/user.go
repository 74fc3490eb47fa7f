// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity entity, representing one account on the platform.
// Exactly one of the role profiles is non-nil, matching the user's fixed Role.
type User struct {
	ID               uuid.UUID         `json:"id"`                          // The Global Unique Identifier (GUID) for the user.
	Email            string            `json:"email"`                       // The user's login identifier.
	Name             string            `json:"name"`                        // The user's display name (store name for stores).
	PasswordHash     string            `json:"-"`                           // The bcrypt hash of the user's password. Never serialized.
	Role             Role              `json:"role"`                        // The user's fixed role. Immutable after registration.
	StoreProfile     *StoreProfile     `json:"store_profile,omitempty"`     // Non-nil when Role == RoleStore.
	VolunteerProfile *VolunteerProfile `json:"volunteer_profile,omitempty"` // Non-nil when Role == RoleVolunteer.
	FoodBankProfile  *FoodBankProfile  `json:"foodbank_profile,omitempty"`  // Non-nil when Role == RoleFoodBank.
	CreatedAt        time.Time         `json:"created_at"`                  // Timestamp of when this account was created.
	UpdatedAt        time.Time         `json:"updated_at"`                  // Timestamp of the last modification to this account.
}

// StoreProfile holds data specific to the "store" role.
// The store's coordinates anchor every distance calculation for its packages.
type StoreProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	Address   string    // The physical address of the store.
	Latitude  float64   // Store latitude in decimal degrees.
	Longitude float64   // Store longitude in decimal degrees.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}

// VolunteerProfile holds data specific to the "volunteer" role.
// Points is a materialized view of the volunteer's ledger entries; it is
// only ever mutated together with a ledger append, never directly.
type VolunteerProfile struct {
	UserID     uuid.UUID // Foreign Key that links this profile to a core User entity.
	Points     int       // Current point balance, reconcilable by re-summing the ledger.
	TotalHours float64   // Cumulative estimated hours across completed deliveries.
	UpdatedAt  time.Time // Timestamp of the last modification to this profile.
}

// FoodBankProfile holds data specific to the "foodbank" role.
type FoodBankProfile struct {
	UserID    uuid.UUID // Foreign Key that links this profile to a core User entity.
	Address   string    // The physical address of the food bank.
	Latitude  float64   // Food bank latitude in decimal degrees.
	Longitude float64   // Food bank longitude in decimal degrees.
	UpdatedAt time.Time // Timestamp of the last modification to this profile.
}
