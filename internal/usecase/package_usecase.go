// Package usecase defines the application's business-logic interfaces and
// their input/output types.
package usecase

import (
	"context"
	"time"

	"reflourish/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePackageInput carries the store-supplied fields for a new package.
type CreatePackageInput struct {
	WeightKg     float64   `json:"weight_kg" validate:"required,gt=0"`
	Category     string    `json:"category" validate:"required"`
	WindowStart  time.Time `json:"window_start" validate:"required"`
	WindowEnd    time.Time `json:"window_end" validate:"required"`
	Instructions string    `json:"instructions"`
}

// AvailableFilter narrows the availability query. Latitude/Longitude are the
// querying volunteer's current position; when nil, no distance filter is
// applied and no advisory figures are computed.
type AvailableFilter struct {
	Latitude  *float64
	Longitude *float64
	RadiusKm  float64
	Category  string
	MinPoints int
}

// AvailablePackage is one availability result. Points and hours here are
// advisory: computed on the fly from the querying location, never persisted.
// The binding figures are fixed at claim time from the claimant's location.
type AvailablePackage struct {
	Package        *entity.Package `json:"package"`
	StoreName      string          `json:"store_name"`
	StoreAddress   string          `json:"store_address"`
	DistanceKm     float64         `json:"distance_km"`
	AdvisoryPoints int             `json:"advisory_points"`
	AdvisoryHours  float64         `json:"advisory_hours"`
}

// DeliveryResult reports a confirmed delivery and its ledger effect.
type DeliveryResult struct {
	Package       *entity.Package `json:"package"`
	VolunteerID   uuid.UUID       `json:"volunteer_id"`
	PointsAwarded int             `json:"points_awarded"`
	HoursAccrued  float64         `json:"hours_accrued"`
	NewBalance    int             `json:"new_balance"`
}

// PackageUsecase is the lifecycle engine: it owns every status transition
// of a package from creation through delivery or cancellation.
type PackageUsecase interface {
	// CreatePackage validates and persists a new pending package for a store,
	// generating its id and handoff PIN.
	CreatePackage(ctx context.Context, storeID uuid.UUID, input *CreatePackageInput) (*entity.Package, error)

	// GetPackage retrieves one package by ID.
	GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error)

	// ListAvailable returns pending packages matching the filter, with
	// advisory points/hours computed against the caller's location.
	ListAvailable(ctx context.Context, filter *AvailableFilter) ([]*AvailablePackage, error)

	// ListMine returns the caller's packages: a store sees what it offered,
	// a volunteer what it claimed, a food bank everything.
	ListMine(ctx context.Context, userID uuid.UUID) ([]*entity.Package, error)

	// Claim atomically reserves a pending package for a volunteer,
	// persisting points and hours computed from the volunteer's location.
	// Exactly one of several concurrent claimants succeeds.
	Claim(ctx context.Context, packageID, volunteerID uuid.UUID, lat, lng float64) (*entity.Package, error)

	// ConfirmPickup advances assigned → picked_up after PIN verification
	// by the assigned volunteer at the store.
	ConfirmPickup(ctx context.Context, packageID, volunteerID uuid.UUID, pin string) (*entity.Package, error)

	// ConfirmDelivery advances picked_up → completed after PIN verification
	// by a food bank operator, crediting the volunteer's ledger exactly once.
	ConfirmDelivery(ctx context.Context, packageID, operatorID uuid.UUID, pin string) (*DeliveryResult, error)

	// ConfirmDeliveryScan is ConfirmDelivery for operators scanning the
	// volunteer's handoff QR instead of typing a package ID: the package is
	// resolved from the scanned payload, then the same PIN check applies.
	ConfirmDeliveryScan(ctx context.Context, operatorID uuid.UUID, scannedData, pin string) (*DeliveryResult, error)

	// Cancel withdraws a still-pending package. Claimed packages cannot be
	// cancelled: a volunteer may already be en route.
	Cancel(ctx context.Context, packageID, storeID uuid.UUID) error

	// HandoffQR renders the package's handoff QR code as a PNG.
	// Only issued once the package has been claimed.
	HandoffQR(ctx context.Context, packageID uuid.UUID) ([]byte, error)
}
