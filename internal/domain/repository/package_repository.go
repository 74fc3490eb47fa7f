// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"reflourish/internal/domain/entity"
	"reflourish/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for package persistence.
var (
	// ErrPackageNotFound is returned when a package does not exist.
	ErrPackageNotFound = errors.New("package not found")
	// ErrPackageNotPending is returned when a conditional claim or cancel
	// finds the package no longer pending. For claim this is the signal of
	// a lost race: another volunteer's write already succeeded.
	ErrPackageNotPending = errors.New("package is not pending")
	// ErrPackageStateConflict is returned when a conditional status
	// transition finds the package in a state that does not permit it.
	ErrPackageStateConflict = errors.New("package state does not permit this transition")
)

// ClaimUpdate carries the values persisted when a volunteer claims a
// package. Points and hours are computed from the claiming volunteer's
// location at claim time; advisory list-time figures are never stored.
type ClaimUpdate struct {
	PackageID    uuid.UUID
	VolunteerID  uuid.UUID
	PointsValue  int
	EstimatedHrs float64
	HandoffData  string
	ClaimedAt    time.Time
}

// PackageRepository defines the interface for package-related database operations.
//
// All state-changing operations are conditional single writes: the WHERE
// clause re-checks the expected pre-state so that two concurrent writers
// can never both observe it. Exactly one writer succeeds; the others get
// the matching conflict error.
type PackageRepository interface {
	// CreatePackage persists a new package with status pending.
	CreatePackage(ctx context.Context, pkg *entity.Package) error

	// FindPackageByID retrieves a package by its unique ID.
	FindPackageByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)

	// FindPendingPackages retrieves all packages currently visible to volunteers.
	FindPendingPackages(ctx context.Context) ([]*entity.Package, error)

	// FindPackagesByStore retrieves all packages offered by a store.
	FindPackagesByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Package, error)

	// FindPackagesByVolunteer retrieves all packages ever claimed by a volunteer.
	FindPackagesByVolunteer(ctx context.Context, volunteerID uuid.UUID) ([]*entity.Package, error)

	// ClaimPackage atomically assigns a pending package to a volunteer:
	// a single conditional update that only succeeds while the stored
	// status is still pending. Returns ErrPackageNotPending when the
	// package exists but was already taken, ErrPackageNotFound when it
	// does not exist.
	ClaimPackage(ctx context.Context, update *ClaimUpdate) error

	// MarkPickedUp transitions assigned → picked_up with the given timestamp.
	// Returns ErrPackageStateConflict if the package is not assigned.
	MarkPickedUp(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkDelivered transitions picked_up → completed, recording the
	// receiving food bank and the delivery timestamp.
	// Returns ErrPackageStateConflict if the package is not picked_up.
	MarkDelivered(ctx context.Context, id uuid.UUID, foodBankID uuid.UUID, at time.Time) error

	// CancelPackage transitions pending → cancelled. Returns
	// ErrPackageNotPending if the package was already claimed; packages
	// are never removed once a volunteer is involved.
	CancelPackage(ctx context.Context, id uuid.UUID) error

	// CountByVolunteerAndStatuses counts a volunteer's packages in any of the given statuses.
	CountByVolunteerAndStatuses(ctx context.Context, volunteerID uuid.UUID, statuses ...entity.PackageStatus) (int64, error)

	// FindCompletedBetween retrieves packages delivered within [from, to).
	// Used by the daily metrics rollup.
	FindCompletedBetween(ctx context.Context, from, to time.Time) ([]*entity.Package, error)
}
