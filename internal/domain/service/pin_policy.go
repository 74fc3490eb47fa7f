package service

import "github.com/google/uuid"

// PINAttemptPolicy is an optional guard consulted before PIN verification.
// The 4-digit PIN space is small, so deployments can cap guesses per
// package per actor; the default policy allows everything, preserving the
// core state machine's contract unchanged.
type PINAttemptPolicy interface {
	// Allow reports whether the actor may attempt a PIN entry for the package.
	Allow(packageID, actorID uuid.UUID) bool

	// RecordFailure notes a failed PIN entry for the package/actor pair.
	RecordFailure(packageID, actorID uuid.UUID)

	// Reset clears recorded failures after a successful verification.
	Reset(packageID, actorID uuid.UUID)
}
